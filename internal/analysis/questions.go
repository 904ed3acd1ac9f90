package analysis

import (
	"math/rand"

	"github.com/kravitexx/promptforge/internal/domain"
)

// questionBank is the static catalog of clarifying questions. IDs are
// stable and referenced by answer-routing code; do not rename or remove
// existing IDs without a migration note.
var questionBank = []domain.ClarifyingQuestion{
	{
		ID:       "style-medium",
		Text:     "What artistic medium should the image use?",
		Type:     domain.AnswerSelect,
		Options:  []string{"Digital art", "Oil painting", "Watercolor", "Photography", "3D render", "Pencil sketch"},
		Category: domain.CategoryStyle,
	},
	{
		ID:       "style-era",
		Text:     "Should the image evoke a particular era or movement?",
		Type:     domain.AnswerSelect,
		Options:  []string{"Renaissance", "Art Nouveau", "Retro-futurism", "Cyberpunk", "Contemporary"},
		Category: domain.CategoryStyle,
	},
	{
		ID:       "style-mood",
		Text:     "What overall mood should the image convey?",
		Type:     domain.AnswerText,
		Category: domain.CategoryStyle,
	},
	{
		ID:       "style-palette",
		Text:     "Which color palette fits best?",
		Type:     domain.AnswerMultiSelect,
		Options:  []string{"Warm tones", "Cool tones", "Monochrome", "Pastel", "Vibrant", "Earthy"},
		Category: domain.CategoryStyle,
	},
	{
		ID:       "lighting-source",
		Text:     "What is the main light source?",
		Type:     domain.AnswerSelect,
		Options:  []string{"Natural sunlight", "Golden hour", "Moonlight", "Neon lights", "Candlelight", "Studio lighting"},
		Category: domain.CategoryLighting,
	},
	{
		ID:       "lighting-quality",
		Text:     "How should the light feel?",
		Type:     domain.AnswerSelect,
		Options:  []string{"Soft and diffused", "Harsh and dramatic", "Dim and moody", "Bright and even"},
		Category: domain.CategoryLighting,
	},
	{
		ID:       "lighting-direction",
		Text:     "Where should the light come from?",
		Type:     domain.AnswerSelect,
		Options:  []string{"Front", "Side", "Backlit", "Overhead", "Below"},
		Category: domain.CategoryLighting,
	},
	{
		ID:       "composition-shot",
		Text:     "What shot type should frame the subject?",
		Type:     domain.AnswerSelect,
		Options:  []string{"Close-up", "Medium shot", "Wide shot", "Extreme wide shot", "Aerial view"},
		Category: domain.CategoryComposition,
	},
	{
		ID:       "composition-angle",
		Text:     "From which angle should the viewer see the scene?",
		Type:     domain.AnswerSelect,
		Options:  []string{"Eye level", "Low angle", "High angle", "Dutch angle", "Bird's eye"},
		Category: domain.CategoryComposition,
	},
	{
		ID:       "composition-focus",
		Text:     "What should be in sharp focus, and what can blur?",
		Type:     domain.AnswerText,
		Category: domain.CategoryComposition,
	},
	{
		ID:       "technical-quality",
		Text:     "Which quality boosters should be included?",
		Type:     domain.AnswerMultiSelect,
		Options:  []string{"8k", "Highly detailed", "Sharp focus", "Masterpiece", "Professional", "Award winning"},
		Category: domain.CategoryTechnical,
	},
	{
		ID:       "technical-negative",
		Text:     "Anything the image must avoid (negative keywords)?",
		Type:     domain.AnswerText,
		Category: domain.CategoryTechnical,
	},
	{
		ID:       "technical-aspect",
		Text:     "What aspect ratio or orientation do you need?",
		Type:     domain.AnswerSelect,
		Options:  []string{"Square", "Portrait", "Landscape", "Ultrawide"},
		Category: domain.CategoryTechnical,
	},
}

// NegativeKeywordsQuestionID is the bank question whose answer routes
// to the prompt's negative-prompt field instead of a scaffold slot.
const NegativeKeywordsQuestionID = "technical-negative"

// QuestionBank returns the full catalog in declaration order. The
// returned slice is a copy; the bank is immutable.
func QuestionBank() []domain.ClarifyingQuestion {
	out := make([]domain.ClarifyingQuestion, len(questionBank))
	copy(out, questionBank)
	return out
}

// QuestionByID looks up a bank question.
func QuestionByID(id string) (domain.ClarifyingQuestion, bool) {
	for _, q := range questionBank {
		if q.ID == id {
			return q, true
		}
	}
	return domain.ClarifyingQuestion{}, false
}

// QuestionsByCategory returns all bank questions in the given category,
// in declaration order.
func QuestionsByCategory(category domain.QuestionCategory) []domain.ClarifyingQuestion {
	var out []domain.ClarifyingQuestion
	for _, q := range questionBank {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

// SampleQuestions returns up to n random questions without replacement.
// The random source is injected so callers can pin the draw in tests.
func SampleQuestions(n int, rng *rand.Rand) []domain.ClarifyingQuestion {
	if n <= 0 {
		return nil
	}
	perm := rng.Perm(len(questionBank))
	if n > len(perm) {
		n = len(perm)
	}
	out := make([]domain.ClarifyingQuestion, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, questionBank[idx])
	}
	return out
}
