package builder

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kravitexx/promptforge/internal/domain"
	"github.com/kravitexx/promptforge/internal/format"
)

// ErrInvalidScaffold signals a build attempt with required slots blank.
var ErrInvalidScaffold = fmt.Errorf("scaffold is invalid: required slots (Subject, Style) must be filled")

// ErrUnknownTemplate signals a format request for an unregistered
// template ID.
type ErrUnknownTemplate struct {
	TemplateID string
}

func (e *ErrUnknownTemplate) Error() string {
	return fmt.Sprintf("unknown model template %q", e.TemplateID)
}

// CreatePrompt builds a versioned GeneratedPrompt from a scaffold.
// The scaffold must validate; the prompt owns its own copy of it.
// Formatted outputs are rendered for every registered model template
// plus any supplied custom formats. Version starts at 1.
func CreatePrompt(sc domain.Scaffold, rawText string, customFormats ...domain.CustomFormat) (domain.GeneratedPrompt, error) {
	if !sc.Validate() {
		return domain.GeneratedPrompt{}, ErrInvalidScaffold
	}

	owned := sc.Clone()
	return domain.GeneratedPrompt{
		ID:               uuid.New().String(),
		Scaffold:         owned,
		RawText:          rawText,
		FormattedOutputs: renderOutputs(owned, customFormats),
		CreatedAt:        time.Now().UTC(),
		Version:          1,
	}, nil
}

// UpdatePrompt produces the next version of a prompt with a new
// scaffold and fully recomputed outputs. ID, RawText, and CreatedAt
// carry over unchanged; CreatedAt reflects first creation, not the
// update.
func UpdatePrompt(p domain.GeneratedPrompt, sc domain.Scaffold, customFormats ...domain.CustomFormat) (domain.GeneratedPrompt, error) {
	if !sc.Validate() {
		return domain.GeneratedPrompt{}, ErrInvalidScaffold
	}

	owned := sc.Clone()
	next := p.Clone()
	next.Scaffold = owned
	next.FormattedOutputs = renderOutputs(owned, customFormats)
	next.Version = p.Version + 1
	return next, nil
}

// FormatPrompt renders the prompt for one template on demand; the ID
// does not have to be present in the precomputed output map. The
// negative prompt segment is appended only when the template declares
// support for it.
func FormatPrompt(p domain.GeneratedPrompt, templateID, negativePrompt string) (string, error) {
	tmpl, ok := TemplateByID(templateID)
	if !ok {
		return "", &ErrUnknownTemplate{TemplateID: templateID}
	}

	out := format.RenderScaffold(tmpl.Template, p.Scaffold)
	if negativePrompt != "" && tmpl.SupportsNegative {
		out += "\n" + fmt.Sprintf(tmpl.NegativeTemplate, negativePrompt)
	}
	return out, nil
}

// renderOutputs produces the formatted-output map for every builtin
// template plus any valid custom formats.
func renderOutputs(sc domain.Scaffold, customFormats []domain.CustomFormat) map[string]string {
	outputs := make(map[string]string, len(builtinTemplates)+len(customFormats))
	for _, tmpl := range builtinTemplates {
		outputs[tmpl.ID] = format.RenderScaffold(tmpl.Template, sc)
	}
	for _, cf := range customFormats {
		// Invalid formats must never render output.
		if !format.Validate(cf.Template).IsValid {
			continue
		}
		outputs[cf.ID] = format.RenderScaffold(cf.Template, sc)
	}
	return outputs
}
