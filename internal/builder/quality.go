package builder

import (
	"fmt"
	"strings"

	"github.com/kravitexx/promptforge/internal/domain"
)

// qualityKeywords earn a slot a bonus when present (case-insensitive).
var qualityKeywords = []string{
	"4k", "8k", "hd", "uhd", "high quality", "highly detailed",
	"masterpiece", "sharp focus", "professional", "award winning",
	"best quality", "ultra detailed",
}

// QualityReport is the per-prompt completeness score with per-slot
// breakdown and one recommendation per blank slot.
type QualityReport struct {
	Score           int                    `json:"score"`
	SlotScores      map[domain.SlotKey]int `json:"slot_scores"`
	Recommendations []string               `json:"recommendations"`
}

// CalculateQuality scores prompt completeness. Per slot: 0 when blank;
// otherwise base 50, +20 for more than 2 words, +20 for more than 4
// words, +10 for containing a known quality keyword, capped at 100.
// Overall score is the unweighted mean.
func CalculateQuality(p domain.GeneratedPrompt) QualityReport {
	report := QualityReport{
		SlotScores: make(map[domain.SlotKey]int, len(p.Scaffold.Slots)),
	}

	total := 0
	for _, slot := range p.Scaffold.Slots {
		score := scoreSlot(slot)
		report.SlotScores[slot.Key] = score
		total += score
		if slot.Blank() {
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("Fill in the %s slot: %s", slot.Name, strings.ToLower(slot.Description)))
		}
	}

	report.Score = total / len(p.Scaffold.Slots)
	return report
}

func scoreSlot(slot domain.ScaffoldSlot) int {
	if slot.Blank() {
		return 0
	}

	score := 50
	words := slot.WordCount()
	if words > 2 {
		score += 20
	}
	if words > 4 {
		score += 20
	}
	if containsQualityKeyword(slot.Content) {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return score
}

func containsQualityKeyword(content string) bool {
	lower := strings.ToLower(content)
	for _, kw := range qualityKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
