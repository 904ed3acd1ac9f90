package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/kravitexx/promptforge/internal/domain"
)

// NewTestFormat builds a valid custom format with sensible defaults.
func NewTestFormat(name string, opts ...FormatOption) *domain.CustomFormat {
	f := &domain.CustomFormat{
		ID:        uuid.NewString(),
		Name:      name,
		Template:  "{S}, {C}, {St}, {Co}, {L}, {A}, {Q}",
		Valid:     true,
		Slots:     append([]domain.SlotKey(nil), domain.SlotOrder...),
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FormatOption customizes a test format.
type FormatOption func(*domain.CustomFormat)

// WithTemplate overrides the format template.
func WithTemplate(tpl string) FormatOption {
	return func(f *domain.CustomFormat) {
		f.Template = tpl
	}
}

// WithValid overrides the validity flag.
func WithValid(valid bool) FormatOption {
	return func(f *domain.CustomFormat) {
		f.Valid = valid
	}
}

// NewTestScaffold builds a scaffold with the given slot contents.
// Panics on invalid keys, which is a test authoring bug.
func NewTestScaffold(contents map[domain.SlotKey]string) domain.Scaffold {
	sc := domain.NewScaffold()
	for key, content := range contents {
		updated, err := sc.UpdateSlot(key, content)
		if err != nil {
			panic(err)
		}
		sc = updated
	}
	return sc
}

// NewTestPrompt builds a version-1 prompt around a minimal valid scaffold.
func NewTestPrompt(rawText string) *domain.GeneratedPrompt {
	return &domain.GeneratedPrompt{
		ID: uuid.NewString(),
		Scaffold: NewTestScaffold(map[domain.SlotKey]string{
			domain.SlotSubject: "a dragon",
			domain.SlotStyle:   "digital art",
		}),
		RawText:          rawText,
		FormattedOutputs: map[string]string{},
		CreatedAt:        time.Now().UTC(),
		Version:          1,
	}
}
