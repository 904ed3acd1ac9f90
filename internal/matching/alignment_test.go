package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeAlignment_NoComparisons(t *testing.T) {
	report := AnalyzeAlignment(nil)

	assert.Zero(t, report.OverallScore)
	assert.NotEmpty(t, report.Recommendations)
}

func TestAnalyzeAlignment_PerfectAlignment(t *testing.T) {
	comparisons := []TokenComparison{
		{Token: "dragon", Present: true, Confidence: ConfidenceExact, Category: "Subject"},
		{Token: "castle", Present: true, Confidence: ConfidenceExact, Category: "Context"},
		{Token: "golden", Present: true, Confidence: ConfidenceSynonym, Category: "Lighting"},
	}

	report := AnalyzeAlignment(comparisons)

	assert.Equal(t, 100, report.OverallScore)
	assert.NotEmpty(t, report.Strengths)
	assert.Empty(t, report.Weaknesses)
}

func TestAnalyzeAlignment_RoundsScore(t *testing.T) {
	comparisons := []TokenComparison{
		{Token: "a", Present: true},
		{Token: "b", Present: true},
		{Token: "c", Present: false, Suggestion: "add c"},
	}

	report := AnalyzeAlignment(comparisons)
	assert.Equal(t, 67, report.OverallScore)
}

func TestAnalyzeAlignment_LowScoreWeakness(t *testing.T) {
	comparisons := []TokenComparison{
		{Token: "dragon", Present: true, Confidence: ConfidenceExact, Category: "Subject"},
		{Token: "castle", Present: false, Suggestion: "add the castle", Category: "Context"},
		{Token: "sunset", Present: false, Suggestion: "add the sunset", Category: "Lighting"},
	}

	report := AnalyzeAlignment(comparisons)

	assert.Equal(t, 33, report.OverallScore)
	assert.NotEmpty(t, report.Weaknesses)
	// Individual suggestions for missing tokens surface as recommendations.
	assert.Contains(t, report.Recommendations, "add the castle")
	assert.Contains(t, report.Recommendations, "add the sunset")
}

func TestAnalyzeAlignment_CategoryBreakdown(t *testing.T) {
	comparisons := []TokenComparison{
		{Token: "dragon", Present: true, Confidence: ConfidenceExact, Category: "Subject"},
		{Token: "majestic", Present: true, Confidence: ConfidenceExact, Category: "Subject"},
		{Token: "castle", Present: false, Category: "Context"},
		{Token: "moat", Present: false, Category: "Context"},
		{Token: "towers", Present: true, Confidence: ConfidenceExact, Category: "Context"},
	}

	report := AnalyzeAlignment(comparisons)

	found := false
	for _, s := range report.Strengths {
		if s == "Subject elements are well represented in the image" {
			found = true
		}
	}
	assert.True(t, found, "expected a Subject category strength")

	foundWeak := false
	for _, w := range report.Weaknesses {
		if w == "Context elements are largely missing from the image" {
			foundWeak = true
		}
	}
	assert.True(t, foundWeak, "expected a Context category weakness")
}

func TestAnalyzeAlignment_CapsAtFive(t *testing.T) {
	var comparisons []TokenComparison
	categories := []string{"Subject", "Context", "Style", "Composition", "Lighting", "Atmosphere", "Quality"}
	for _, cat := range categories {
		comparisons = append(comparisons,
			TokenComparison{Token: "miss-" + cat, Present: false, Suggestion: "fix " + cat, Category: cat})
	}

	report := AnalyzeAlignment(comparisons)

	require.NotEmpty(t, report.Recommendations)
	assert.LessOrEqual(t, len(report.Strengths), 5)
	assert.LessOrEqual(t, len(report.Weaknesses), 5)
	assert.LessOrEqual(t, len(report.Recommendations), 5)
}

func TestAnalyzeAlignment_HighConfidenceStrength(t *testing.T) {
	comparisons := []TokenComparison{
		{Token: "a", Present: true, Confidence: ConfidenceExact},
		{Token: "b", Present: true, Confidence: ConfidenceExact},
		{Token: "c", Present: true, Confidence: ConfidenceSynonym},
		{Token: "d", Present: false},
	}

	report := AnalyzeAlignment(comparisons)

	found := false
	for _, s := range report.Strengths {
		if s == "Most matches are high-confidence, indicating strong prompt wording" {
			found = true
		}
	}
	assert.True(t, found)
}
