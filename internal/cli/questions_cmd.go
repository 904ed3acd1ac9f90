package cli

import (
	"fmt"
	"strings"

	"github.com/kravitexx/promptforge/internal/analysis"
	"github.com/kravitexx/promptforge/internal/cli/formatter"
	"github.com/kravitexx/promptforge/internal/domain"
	"github.com/spf13/cobra"
)

func newQuestionsCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the clarifying-question bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			var questions []domain.ClarifyingQuestion
			if category == "" {
				questions = analysis.QuestionBank()
			} else {
				questions = analysis.QuestionsByCategory(domain.QuestionCategory(category))
				if len(questions) == 0 {
					return fmt.Errorf("unknown category %q (style, lighting, composition, technical)", category)
				}
			}

			rows := make([][]string, 0, len(questions))
			for _, q := range questions {
				options := formatter.Dim("free text")
				if len(q.Options) > 0 {
					options = formatter.Truncate(strings.Join(q.Options, ", "), 50)
				}
				rows = append(rows, []string{q.ID, string(q.Category), q.Text, options})
			}
			fmt.Printf("%s\n", formatter.RenderTable([]string{"ID", "CATEGORY", "QUESTION", "OPTIONS"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category (style|lighting|composition|technical)")

	return cmd
}
