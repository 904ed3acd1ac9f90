package analysis

import (
	"strings"

	"github.com/kravitexx/promptforge/internal/domain"
)

// categorySlots routes answered question categories to the scaffold
// slot they enrich.
var categorySlots = map[domain.QuestionCategory]domain.SlotKey{
	domain.CategoryStyle:       domain.SlotStyle,
	domain.CategoryLighting:    domain.SlotLighting,
	domain.CategoryComposition: domain.SlotComposition,
	domain.CategoryTechnical:   domain.SlotQuality,
}

// AppliedAnswers is the result of folding question answers back into a
// scaffold. NegativePrompt carries the answer to the negative-keywords
// question, which routes to the prompt's negative field rather than a
// slot.
type AppliedAnswers struct {
	Scaffold       domain.Scaffold
	NegativePrompt string
}

// ApplyAnswers appends each answer to the slot mapped from its
// question's category, joined with ", ". Existing content is never
// overwritten. Unknown question IDs and blank answers are skipped.
// The caller feeds the returned scaffold into the prompt builder to
// produce the next version.
func ApplyAnswers(sc domain.Scaffold, answers []domain.QuestionAnswer) AppliedAnswers {
	applied := AppliedAnswers{Scaffold: sc.Clone()}

	for _, ans := range answers {
		text := strings.TrimSpace(ans.Answer)
		if text == "" {
			continue
		}
		question, ok := QuestionByID(ans.QuestionID)
		if !ok {
			continue
		}

		if question.ID == NegativeKeywordsQuestionID {
			applied.NegativePrompt = appendWithComma(applied.NegativePrompt, text)
			continue
		}

		key, ok := categorySlots[question.Category]
		if !ok {
			continue
		}
		slot, _ := applied.Scaffold.Slot(key)
		updated, err := applied.Scaffold.UpdateSlot(key, appendWithComma(slot.Content, text))
		if err != nil {
			continue
		}
		applied.Scaffold = updated
	}

	return applied
}

func appendWithComma(existing, addition string) string {
	existing = strings.TrimSpace(existing)
	if existing == "" {
		return addition
	}
	return existing + ", " + addition
}
