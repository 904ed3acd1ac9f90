package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kravitexx/promptforge/internal/builder"
	"github.com/kravitexx/promptforge/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newModelCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Inspect built-in model templates",
	}

	cmd.AddCommand(newModelListCmd(app))

	return cmd
}

func newModelListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in model templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := builder.Templates()
			rows := make([][]string, 0, len(templates))
			for _, t := range templates {
				negative := formatter.Dim("--")
				if t.SupportsNegative {
					negative = formatter.StyleGreen.Render("yes")
				}
				rows = append(rows, []string{t.ID, t.Name, negative, renderParameters(t.Parameters)})
			}
			fmt.Printf("%s\n", formatter.RenderTable([]string{"ID", "NAME", "NEGATIVE", "PARAMETERS"}, rows))
			return nil
		},
	}
}

func renderParameters(params map[string]string) string {
	if len(params) == 0 {
		return formatter.Dim("--")
	}
	pairs := make([]string, 0, len(params))
	for k, v := range params {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, " ")
}
