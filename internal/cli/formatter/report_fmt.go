package formatter

import (
	"fmt"
	"strings"

	"github.com/kravitexx/promptforge/internal/analysis"
	"github.com/kravitexx/promptforge/internal/builder"
	"github.com/kravitexx/promptforge/internal/domain"
	"github.com/kravitexx/promptforge/internal/matching"
)

// FormatQualityReport renders the completeness score with its per-slot
// breakdown.
func FormatQualityReport(report builder.QualityReport) string {
	var b strings.Builder
	b.WriteString(Header("Quality"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("Overall:"), ScoreBadge(report.Score)))

	rows := make([][]string, 0, len(domain.SlotOrder))
	for _, key := range domain.SlotOrder {
		score, ok := report.SlotScores[key]
		if !ok {
			continue
		}
		rows = append(rows, []string{
			domain.SlotNames[key],
			ScoreStyle(score).Render(fmt.Sprintf("%d", score)),
			scoreBar(score),
		})
	}
	b.WriteString(RenderTable([]string{"SLOT", "SCORE", ""}, rows))

	if len(report.Recommendations) > 0 {
		b.WriteString("\n")
		for _, rec := range report.Recommendations {
			b.WriteString(fmt.Sprintf("%s %s\n", StyleYellow.Render("→"), rec))
		}
	}
	return b.String()
}

// scoreBar renders a 10-cell bar for a 0-100 score.
func scoreBar(score int) string {
	filled := score / 10
	if filled > 10 {
		filled = 10
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	return ScoreStyle(score).Render(bar)
}

// FormatAlignment renders token comparisons and the aggregate report.
func FormatAlignment(comparisons []matching.TokenComparison, report matching.AlignmentReport) string {
	var b strings.Builder

	b.WriteString(Header("Token Alignment"))
	b.WriteString("\n")
	rows := make([][]string, 0, len(comparisons))
	for _, c := range comparisons {
		found := StyleRed.Render("✗")
		if c.Present {
			found = StyleGreen.Render("✓")
		}
		conf := Dim("--")
		if c.Present {
			conf = Confidence(c.Confidence)
		}
		rows = append(rows, []string{c.Token, c.Category, found, conf})
	}
	b.WriteString(RenderTable([]string{"TOKEN", "CATEGORY", "FOUND", "CONF"}, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Alignment score:"), ScoreBadge(report.OverallScore)))

	writeSection := func(title string, style func(string) string, entries []string) {
		if len(entries) == 0 {
			return
		}
		b.WriteString("\n")
		b.WriteString(Bold(title))
		b.WriteString("\n")
		for _, e := range entries {
			b.WriteString(fmt.Sprintf("  %s %s\n", style("•"), e))
		}
	}
	writeSection("Strengths", func(s string) string { return StyleGreen.Render(s) }, report.Strengths)
	writeSection("Weaknesses", func(s string) string { return StyleRed.Render(s) }, report.Weaknesses)
	writeSection("Recommendations", func(s string) string { return StyleYellow.Render(s) }, report.Recommendations)

	return b.String()
}

// FormatImprovement renders the gap analysis shown before the wizard.
func FormatImprovement(a analysis.ImprovementAnalysis, potential analysis.ImprovementPotential) string {
	var b strings.Builder
	b.WriteString(Header("Improvement"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Quality:"), ScoreBadge(a.QualityScore)))
	b.WriteString(fmt.Sprintf("%s %s %s\n", Dim("Potential:"), ScoreBadge(potential.Score), priorityPill(potential.Priority)))

	if len(a.EmptySlots) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Empty slots:"), slotNames(a.EmptySlots)))
	}
	if len(a.WeakSlots) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Weak slots:"), slotNames(a.WeakSlots)))
	}
	for _, area := range potential.Areas {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleYellow.Render("→"), area))
	}
	return b.String()
}

func priorityPill(priority string) string {
	switch priority {
	case "high":
		return StyleRed.Render("▲ HIGH")
	case "medium":
		return StyleYellow.Render("● MEDIUM")
	default:
		return StyleGreen.Render("○ LOW")
	}
}

func slotNames(keys []domain.SlotKey) string {
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, domain.SlotNames[key])
	}
	return strings.Join(names, ", ")
}
