package formatter

import (
	"fmt"
	"strings"

	"github.com/kravitexx/promptforge/internal/domain"
	"github.com/kravitexx/promptforge/internal/format"
)

// FormatFormatList renders the custom-format overview table.
func FormatFormatList(formats []*domain.CustomFormat) string {
	rows := make([][]string, 0, len(formats))
	for _, f := range formats {
		rows = append(rows, []string{
			TruncID(f.ID),
			f.Name,
			ValidBadge(f.Valid),
			Truncate(f.Template, 50),
		})
	}
	return RenderTable([]string{"ID", "NAME", "VALID", "TEMPLATE"}, rows)
}

// FormatFormatInspect renders one custom format with a fresh
// validation result.
func FormatFormatInspect(f *domain.CustomFormat, validation format.ValidationResult) string {
	var b strings.Builder
	b.WriteString(Header(f.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("ID:"), f.ID))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Template:"), f.Template))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Status:"), ValidBadge(validation.IsValid)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Created:"), HumanDate(f.CreatedAt)))
	if len(validation.Errors) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatValidation(validation))
	}
	return b.String()
}

// FormatValidation renders a validation result for display.
func FormatValidation(result format.ValidationResult) string {
	var b strings.Builder
	if result.IsValid {
		b.WriteString(StyleGreen.Render("Template is valid."))
		b.WriteString("\n")
		return b.String()
	}
	for _, msg := range result.Errors {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleRed.Render("✗"), msg))
	}
	return b.String()
}

// FormatImportResult renders the outcome of a format import.
func FormatImportResult(result format.ImportResult) string {
	var b strings.Builder
	if result.Success {
		b.WriteString(StyleGreen.Render(fmt.Sprintf("Imported %d format(s).", result.Imported)))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(StyleYellow.Render(fmt.Sprintf("Imported %d format(s), rejected %d.", result.Imported, len(result.Errors))))
	b.WriteString("\n")
	for _, msg := range result.Errors {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleRed.Render("✗"), msg))
	}
	return b.String()
}

// FormatFormatStats renders stored-format statistics.
func FormatFormatStats(total, valid, invalid int) string {
	var b strings.Builder
	b.WriteString(Header("Format Stats"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d\n", Dim("Total:"), total))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Valid:"), StyleGreen.Render(fmt.Sprintf("%d", valid))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Invalid:"), StyleRed.Render(fmt.Sprintf("%d", invalid))))
	return b.String()
}
