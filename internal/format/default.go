package format

import (
	"time"

	"github.com/google/uuid"
	"github.com/kravitexx/promptforge/internal/domain"
)

// DefaultTemplate is the canonical comma-joined short-token template.
const DefaultTemplate = "{S}, {C}, {St}, {Co}, {L}, {A}, {Q}"

// DefaultCustomFormat returns a ready-to-use format built from the
// canonical template. It always passes validation and serves as a
// regression fixture for the validator.
func DefaultCustomFormat() domain.CustomFormat {
	slots := make([]domain.SlotKey, len(domain.SlotOrder))
	copy(slots, domain.SlotOrder)
	return domain.CustomFormat{
		ID:        uuid.New().String(),
		Name:      "Default",
		Template:  DefaultTemplate,
		Valid:     true,
		Slots:     slots,
		CreatedAt: time.Now().UTC(),
	}
}
