package analysis

import (
	"testing"

	"github.com/kravitexx/promptforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyAnswers_RoutesByCategory(t *testing.T) {
	sc := domain.NewScaffold()

	applied := ApplyAnswers(sc, []domain.QuestionAnswer{
		{QuestionID: "style-medium", Answer: "Oil painting"},
		{QuestionID: "lighting-source", Answer: "Golden hour"},
		{QuestionID: "composition-shot", Answer: "Wide shot"},
		{QuestionID: "technical-quality", Answer: "8k, Highly detailed"},
	})

	style, _ := applied.Scaffold.Slot(domain.SlotStyle)
	lighting, _ := applied.Scaffold.Slot(domain.SlotLighting)
	composition, _ := applied.Scaffold.Slot(domain.SlotComposition)
	quality, _ := applied.Scaffold.Slot(domain.SlotQuality)

	assert.Equal(t, "Oil painting", style.Content)
	assert.Equal(t, "Golden hour", lighting.Content)
	assert.Equal(t, "Wide shot", composition.Content)
	assert.Equal(t, "8k, Highly detailed", quality.Content)
}

func TestApplyAnswers_AppendsNeverOverwrites(t *testing.T) {
	sc := domain.NewScaffold()
	sc, err := sc.UpdateSlot(domain.SlotStyle, "digital art")
	require.NoError(t, err)

	applied := ApplyAnswers(sc, []domain.QuestionAnswer{
		{QuestionID: "style-medium", Answer: "Oil painting"},
	})

	style, _ := applied.Scaffold.Slot(domain.SlotStyle)
	assert.Equal(t, "digital art, Oil painting", style.Content)
}

func TestApplyAnswers_NegativeKeywordsRouteToNegativePrompt(t *testing.T) {
	sc := domain.NewScaffold()

	applied := ApplyAnswers(sc, []domain.QuestionAnswer{
		{QuestionID: NegativeKeywordsQuestionID, Answer: "blurry, watermark"},
	})

	assert.Equal(t, "blurry, watermark", applied.NegativePrompt)

	// No slot received the negative keywords.
	for _, slot := range applied.Scaffold.Slots {
		assert.Empty(t, slot.Content)
	}
}

func TestApplyAnswers_SkipsUnknownAndBlank(t *testing.T) {
	sc := domain.NewScaffold()

	applied := ApplyAnswers(sc, []domain.QuestionAnswer{
		{QuestionID: "no-such-question", Answer: "ignored"},
		{QuestionID: "style-medium", Answer: "   "},
	})

	for _, slot := range applied.Scaffold.Slots {
		assert.Empty(t, slot.Content)
	}
}

func TestApplyAnswers_DoesNotMutateInput(t *testing.T) {
	sc := domain.NewScaffold()

	_ = ApplyAnswers(sc, []domain.QuestionAnswer{
		{QuestionID: "style-medium", Answer: "Oil painting"},
	})

	style, _ := sc.Slot(domain.SlotStyle)
	assert.Empty(t, style.Content)
}
