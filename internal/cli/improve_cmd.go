package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/kravitexx/promptforge/internal/analysis"
	"github.com/kravitexx/promptforge/internal/cli/formatter"
	"github.com/kravitexx/promptforge/internal/domain"
	"github.com/spf13/cobra"
)

func newImproveCmd(app *App) *cobra.Command {
	var answerFlags []string

	cmd := &cobra.Command{
		Use:   "improve ID",
		Short: "Analyze a prompt and fold in clarifying answers",
		Long: "Shows the gap analysis for a prompt, then collects clarifying\n" +
			"answers (interactively, or via --answer) and persists them as a\n" +
			"new prompt version.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePromptID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Prompts.Get(ctx, id)
			if err != nil {
				return err
			}

			gaps, err := app.Prompts.Analyze(ctx, id)
			if err != nil {
				return err
			}
			potential := analysis.NewAnalyzer(nil).CalculateImprovementPotential(*p)
			fmt.Printf("%s\n", formatter.FormatImprovement(gaps, potential))

			if !analysis.ShouldShowClarifyingQuestions(*p) {
				fmt.Println("Prompt is already strong; nothing to improve.")
				return nil
			}

			answers, err := collectAnswers(app, gaps.Questions, answerFlags)
			if err != nil {
				return err
			}
			if len(answers) == 0 {
				fmt.Println("No answers given; prompt unchanged.")
				return nil
			}

			next, err := app.Prompts.Apply(ctx, id, answers)
			if err != nil {
				return err
			}
			fmt.Printf("Saved version %d.\n\n%s\n", next.Version, formatter.FormatPromptInspect(next))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&answerFlags, "answer", nil, "Answer a question directly (question-id=value, repeatable)")

	return cmd
}

// collectAnswers prefers explicit --answer flags; otherwise it runs the
// interactive wizard when a terminal is attached.
func collectAnswers(app *App, questions []domain.ClarifyingQuestion, answerFlags []string) ([]domain.QuestionAnswer, error) {
	if len(answerFlags) > 0 {
		return parseAnswerFlags(answerFlags)
	}

	if !app.interactive() {
		return nil, fmt.Errorf("no terminal attached; pass answers with --answer question-id=value")
	}
	if len(questions) == 0 {
		return nil, nil
	}

	form, qa := newQuestionForm(questions)
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("running question form: %w", err)
	}
	return qa.collect(), nil
}

func parseAnswerFlags(answerFlags []string) ([]domain.QuestionAnswer, error) {
	answers := make([]domain.QuestionAnswer, 0, len(answerFlags))
	for _, raw := range answerFlags {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid --answer format %q, expected question-id=value", raw)
		}
		id := strings.TrimSpace(parts[0])
		if _, ok := analysis.QuestionByID(id); !ok {
			return nil, fmt.Errorf("unknown question ID %q (see `promptforge questions`)", id)
		}
		answers = append(answers, domain.QuestionAnswer{QuestionID: id, Answer: parts[1]})
	}
	return answers, nil
}
