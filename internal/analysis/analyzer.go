package analysis

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/kravitexx/promptforge/internal/builder"
	"github.com/kravitexx/promptforge/internal/domain"
)

// weakSlotWordLimit: a filled slot with at most this many words is
// considered weak.
const weakSlotWordLimit = 2

const (
	maxQuestions  = 5
	minCandidates = 3
)

// ImprovementAnalysis is the outcome of analyzing a prompt for gaps.
type ImprovementAnalysis struct {
	EmptySlots   []domain.SlotKey
	WeakSlots    []domain.SlotKey
	QualityScore int
	Questions    []domain.ClarifyingQuestion
}

// ImprovementPotential quantifies how much a prompt could gain from the
// clarifying-question loop.
type ImprovementPotential struct {
	Score    int
	Priority string
	Areas    []string
}

// Analyzer selects clarifying questions for weak prompts. The random
// source only affects padding draws and is injectable for tests.
type Analyzer struct {
	rng *rand.Rand
}

// NewAnalyzer creates an analyzer. A nil rng gets a time-seeded
// default.
func NewAnalyzer(rng *rand.Rand) *Analyzer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Analyzer{rng: rng}
}

// AnalyzeForImprovement computes empty slots, weak slots, the quality
// score, and a deduplicated candidate question list capped at 5.
func (a *Analyzer) AnalyzeForImprovement(p domain.GeneratedPrompt) ImprovementAnalysis {
	analysis := ImprovementAnalysis{
		QualityScore: builder.CalculateQuality(p).Score,
	}
	for _, slot := range p.Scaffold.Slots {
		switch {
		case slot.Blank():
			analysis.EmptySlots = append(analysis.EmptySlots, slot.Key)
		case slot.WordCount() <= weakSlotWordLimit:
			analysis.WeakSlots = append(analysis.WeakSlots, slot.Key)
		}
	}

	analysis.Questions = a.selectQuestions(analysis.EmptySlots, analysis.WeakSlots)
	return analysis
}

// selectQuestions builds the candidate list: all category questions for
// each missing slot, one per weak slot, padded with random bank
// questions when fewer than 3 remain.
func (a *Analyzer) selectQuestions(empty, weak []domain.SlotKey) []domain.ClarifyingQuestion {
	seen := make(map[string]bool)
	var candidates []domain.ClarifyingQuestion

	add := func(q domain.ClarifyingQuestion) {
		if seen[q.ID] {
			return
		}
		seen[q.ID] = true
		candidates = append(candidates, q)
	}

	for _, key := range empty {
		for _, q := range QuestionsByCategory(domain.CategoryForSlot(key)) {
			add(q)
		}
	}
	for _, key := range weak {
		if qs := QuestionsByCategory(domain.CategoryForSlot(key)); len(qs) > 0 {
			add(qs[0])
		}
	}
	if len(candidates) < minCandidates {
		for _, q := range SampleQuestions(len(questionBank), a.rng) {
			if len(candidates) >= minCandidates {
				break
			}
			add(q)
		}
	}

	if len(candidates) > maxQuestions {
		candidates = candidates[:maxQuestions]
	}
	return candidates
}

// CalculateImprovementPotential scores how much the prompt stands to
// gain: 20 per missing slot, 10 per weak slot, plus a quality penalty
// (30 below 50, 15 below 75), capped at 100.
func (a *Analyzer) CalculateImprovementPotential(p domain.GeneratedPrompt) ImprovementPotential {
	analysis := a.AnalyzeForImprovement(p)

	score := 20*len(analysis.EmptySlots) + 10*len(analysis.WeakSlots)
	switch {
	case analysis.QualityScore < 50:
		score += 30
	case analysis.QualityScore < 75:
		score += 15
	}
	if score > 100 {
		score = 100
	}

	priority := "low"
	switch {
	case score >= 50:
		priority = "high"
	case score >= 25:
		priority = "medium"
	}

	var areas []string
	for _, key := range analysis.EmptySlots {
		if len(areas) == 3 {
			break
		}
		areas = append(areas, fmt.Sprintf("Add %s", domain.SlotNames[key]))
	}
	for _, key := range analysis.WeakSlots {
		if len(areas) == 3 {
			break
		}
		areas = append(areas, fmt.Sprintf("Enhance %s", domain.SlotNames[key]))
	}
	if len(areas) < 3 && analysis.QualityScore < 75 {
		areas = append(areas, "Raise overall prompt quality with richer descriptions")
	}

	return ImprovementPotential{Score: score, Priority: priority, Areas: areas}
}

// ShouldShowClarifyingQuestions is the gate for offering the
// improvement dialog: quality below 75, or any empty or weak slot. A
// pure function of the prompt's current scaffold.
func ShouldShowClarifyingQuestions(p domain.GeneratedPrompt) bool {
	if builder.CalculateQuality(p).Score < 75 {
		return true
	}
	for _, slot := range p.Scaffold.Slots {
		if slot.Blank() || slot.WordCount() <= weakSlotWordLimit {
			return true
		}
	}
	return false
}
