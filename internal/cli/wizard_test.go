package cli

import (
	"testing"

	"github.com/kravitexx/promptforge/internal/analysis"
	"github.com/kravitexx/promptforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionAnswers_CollectSkipsBlanksAndJoinsMultis(t *testing.T) {
	questions := []domain.ClarifyingQuestion{
		{ID: "q-text", Text: "Describe", Type: domain.AnswerText},
		{ID: "q-select", Text: "Pick one", Type: domain.AnswerSelect, Options: []string{"a", "b"}},
		{ID: "q-multi", Text: "Pick many", Type: domain.AnswerMultiSelect, Options: []string{"x", "y", "z"}},
	}

	_, qa := newQuestionForm(questions)
	qa.texts[0] = "   "
	qa.texts[1] = "b"
	qa.multis[2] = []string{"x", "z"}

	answers := qa.collect()
	require.Len(t, answers, 2)
	assert.Equal(t, domain.QuestionAnswer{QuestionID: "q-select", Answer: "b"}, answers[0])
	assert.Equal(t, domain.QuestionAnswer{QuestionID: "q-multi", Answer: "x, z"}, answers[1])
}

func TestParseAnswerFlags(t *testing.T) {
	answers, err := parseAnswerFlags([]string{
		"lighting-source=Golden hour",
		"technical-negative=blurry, watermark",
	})
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "Golden hour", answers[0].Answer)
	assert.Equal(t, analysis.NegativeKeywordsQuestionID, answers[1].QuestionID)

	_, err = parseAnswerFlags([]string{"missing-separator"})
	assert.Error(t, err)

	_, err = parseAnswerFlags([]string{"no-such-question=value"})
	assert.Error(t, err)
}
