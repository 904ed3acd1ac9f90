package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kravitexx/promptforge/internal/domain"
)

// FormatPromptList renders the prompt overview table.
func FormatPromptList(prompts []*domain.GeneratedPrompt) string {
	rows := make([][]string, 0, len(prompts))
	for _, p := range prompts {
		subject := ""
		if slot, ok := p.Scaffold.Slot(domain.SlotSubject); ok {
			subject = slot.Content
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			fmt.Sprintf("v%d", p.Version),
			Truncate(subject, 40),
			HumanDate(p.CreatedAt),
		})
	}
	return RenderTable([]string{"ID", "VER", "SUBJECT", "CREATED"}, rows)
}

// FormatPromptInspect renders the full detail view of one prompt.
func FormatPromptInspect(p *domain.GeneratedPrompt) string {
	var b strings.Builder

	b.WriteString(Header("Prompt"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("ID:"), p.ID))
	b.WriteString(fmt.Sprintf("%s v%d\n", Dim("Version:"), p.Version))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Created:"), HumanDate(p.CreatedAt)))
	if p.RawText != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Raw:"), p.RawText))
	}
	if p.NegativePrompt != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Negative:"), p.NegativePrompt))
	}

	b.WriteString("\n")
	b.WriteString(Header("Scaffold"))
	b.WriteString("\n")
	rows := make([][]string, 0, len(p.Scaffold.Slots))
	for _, slot := range p.Scaffold.Slots {
		content := slot.Content
		if slot.Blank() {
			content = Dim("(empty)")
		}
		name := slot.Name
		if slot.Required {
			name += StyleRed.Render("*")
		}
		rows = append(rows, []string{name, content})
	}
	b.WriteString(RenderTable([]string{"SLOT", "CONTENT"}, rows))

	if len(p.FormattedOutputs) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Outputs"))
		b.WriteString("\n")
		ids := make([]string, 0, len(p.FormattedOutputs))
		for id := range p.FormattedOutputs {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			b.WriteString(fmt.Sprintf("%s\n  %s\n", Bold(id), p.FormattedOutputs[id]))
		}
	}

	return b.String()
}

// FormatVersionList renders the version history of one prompt.
func FormatVersionList(versions []*domain.GeneratedPrompt) string {
	rows := make([][]string, 0, len(versions))
	for _, p := range versions {
		filled := len(p.Scaffold.FilledSlots())
		rows = append(rows, []string{
			fmt.Sprintf("v%d", p.Version),
			fmt.Sprintf("%d/%d slots", filled, len(p.Scaffold.Slots)),
			Truncate(p.NegativePrompt, 30),
		})
	}
	return RenderTable([]string{"VERSION", "FILLED", "NEGATIVE"}, rows)
}
