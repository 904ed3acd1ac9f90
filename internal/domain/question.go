package domain

// QuestionCategory groups clarifying questions by the aspect of the
// prompt they improve.
type QuestionCategory string

const (
	CategoryStyle       QuestionCategory = "style"
	CategoryLighting    QuestionCategory = "lighting"
	CategoryComposition QuestionCategory = "composition"
	CategoryTechnical   QuestionCategory = "technical"
)

// AnswerType describes how a clarifying question is answered.
type AnswerType string

const (
	AnswerText        AnswerType = "text"
	AnswerSelect      AnswerType = "select"
	AnswerMultiSelect AnswerType = "multiselect"
)

// ClarifyingQuestion is one entry of the static question bank. IDs are
// stable: answer-routing code references them, so existing IDs must not
// be renamed or removed without a migration note.
type ClarifyingQuestion struct {
	ID       string
	Text     string
	Type     AnswerType
	Options  []string
	Category QuestionCategory
}

// QuestionAnswer pairs a bank question ID with the user's answer text.
// Multi-select answers are pre-joined with ", " by the collecting UI.
type QuestionAnswer struct {
	QuestionID string
	Answer     string
}

// CategoryForSlot maps a scaffold slot to the question category that
// best improves it.
func CategoryForSlot(key SlotKey) QuestionCategory {
	switch key {
	case SlotSubject, SlotAtmosphere:
		return CategoryStyle
	case SlotContext, SlotComposition:
		return CategoryComposition
	case SlotLighting:
		return CategoryLighting
	case SlotQuality:
		return CategoryTechnical
	}
	return CategoryStyle
}
