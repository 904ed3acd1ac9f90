package cli

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/kravitexx/promptforge/internal/cli/formatter"
	"github.com/kravitexx/promptforge/internal/domain"
)

// forgeHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func forgeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// skipLabel is the select option that leaves a question unanswered.
const skipLabel = "(skip)"

// questionAnswers accumulates wizard input per question. Text and
// select answers land in texts; multiselect answers land in multis and
// are joined on collect.
type questionAnswers struct {
	questions []domain.ClarifyingQuestion
	texts     []string
	multis    [][]string
}

// newQuestionForm builds one huh form covering all given questions.
// Question answer types map directly onto huh field kinds.
func newQuestionForm(questions []domain.ClarifyingQuestion) (*huh.Form, *questionAnswers) {
	qa := &questionAnswers{
		questions: questions,
		texts:     make([]string, len(questions)),
		multis:    make([][]string, len(questions)),
	}

	fields := make([]huh.Field, 0, len(questions))
	for i, q := range questions {
		switch q.Type {
		case domain.AnswerSelect:
			options := make([]huh.Option[string], 0, len(q.Options)+1)
			options = append(options, huh.NewOption(skipLabel, ""))
			for _, opt := range q.Options {
				options = append(options, huh.NewOption(opt, opt))
			}
			fields = append(fields, huh.NewSelect[string]().
				Title(q.Text).
				Options(options...).
				Value(&qa.texts[i]))
		case domain.AnswerMultiSelect:
			options := make([]huh.Option[string], 0, len(q.Options))
			for _, opt := range q.Options {
				options = append(options, huh.NewOption(opt, opt))
			}
			fields = append(fields, huh.NewMultiSelect[string]().
				Title(q.Text).
				Options(options...).
				Value(&qa.multis[i]))
		default:
			fields = append(fields, huh.NewInput().
				Title(q.Text).
				Placeholder("leave blank to skip").
				Value(&qa.texts[i]))
		}
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(forgeHuhTheme()).
		WithShowHelp(false)
	return form, qa
}

// collect turns the accumulated input into answers, dropping skipped
// questions. Multi-select choices are joined with ", ".
func (qa *questionAnswers) collect() []domain.QuestionAnswer {
	var out []domain.QuestionAnswer
	for i, q := range qa.questions {
		answer := strings.TrimSpace(qa.texts[i])
		if q.Type == domain.AnswerMultiSelect {
			answer = strings.Join(qa.multis[i], ", ")
		}
		if answer == "" {
			continue
		}
		out = append(out, domain.QuestionAnswer{QuestionID: q.ID, Answer: answer})
	}
	return out
}
