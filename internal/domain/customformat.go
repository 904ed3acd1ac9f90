package domain

import "time"

// CustomFormat is a user-authored output template using scaffold slot
// placeholders. A format is unusable for rendering until Valid is true;
// correctness-critical callers re-validate rather than trusting the
// stored flag.
type CustomFormat struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Template  string    `json:"template"`
	Valid     bool      `json:"valid"`
	Slots     []SlotKey `json:"slots"`
	CreatedAt time.Time `json:"created_at"`
}
