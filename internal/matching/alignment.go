package matching

import (
	"fmt"
	"math"
)

// AlignmentReport summarizes how well a prompt's tokens are reflected
// in an external image description.
type AlignmentReport struct {
	OverallScore    int      `json:"overall_score"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

const maxReportEntries = 5

// AnalyzeAlignment derives an overall score plus strengths, weaknesses,
// and recommendations from token comparisons. Zero comparisons yield a
// zero score with guidance rather than an error.
func AnalyzeAlignment(comparisons []TokenComparison) AlignmentReport {
	report := AlignmentReport{}

	if len(comparisons) == 0 {
		report.Recommendations = append(report.Recommendations,
			"No comparable tokens found; fill in more scaffold slots before analyzing alignment")
		return report
	}

	present := 0
	highConfidence := 0
	for _, c := range comparisons {
		if c.Present {
			present++
		}
		if c.Confidence >= ConfidenceSynonym {
			highConfidence++
		}
	}
	report.OverallScore = int(math.Round(100 * float64(present) / float64(len(comparisons))))

	// Global strengths.
	if report.OverallScore >= 80 {
		report.Strengths = append(report.Strengths,
			"Excellent alignment: the image reflects nearly all prompt elements")
	}
	if float64(highConfidence)/float64(len(comparisons)) > 0.6 {
		report.Strengths = append(report.Strengths,
			"Most matches are high-confidence, indicating strong prompt wording")
	}

	// Per-category scores.
	categoryTotals := map[string]int{}
	categoryPresent := map[string]int{}
	categoryOrder := []string{}
	for _, c := range comparisons {
		if c.Category == "" {
			continue
		}
		if _, seen := categoryTotals[c.Category]; !seen {
			categoryOrder = append(categoryOrder, c.Category)
		}
		categoryTotals[c.Category]++
		if c.Present {
			categoryPresent[c.Category]++
		}
	}
	for _, cat := range categoryOrder {
		score := 100 * categoryPresent[cat] / categoryTotals[cat]
		switch {
		case score > 80:
			report.Strengths = append(report.Strengths,
				fmt.Sprintf("%s elements are well represented in the image", cat))
		case score < 50:
			report.Weaknesses = append(report.Weaknesses,
				fmt.Sprintf("%s elements are largely missing from the image", cat))
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("Strengthen the %s slot with more concrete descriptors", cat))
		}
	}

	// Global weakness.
	if report.OverallScore < 60 {
		report.Weaknesses = append(report.Weaknesses,
			"Overall alignment is low: the image diverges from the prompt")
	}

	// Individual suggestions for up to the first three missing tokens.
	missing := 0
	for _, c := range comparisons {
		if c.Present || c.Suggestion == "" {
			continue
		}
		report.Recommendations = append(report.Recommendations, c.Suggestion)
		missing++
		if missing == 3 {
			break
		}
	}

	report.Strengths = capEntries(report.Strengths)
	report.Weaknesses = capEntries(report.Weaknesses)
	report.Recommendations = capEntries(report.Recommendations)
	return report
}

func capEntries(entries []string) []string {
	if len(entries) > maxReportEntries {
		return entries[:maxReportEntries]
	}
	return entries
}
