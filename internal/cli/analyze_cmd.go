package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kravitexx/promptforge/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compare prompts against generated-image descriptions",
	}

	cmd.AddCommand(newAnalyzeAlignmentCmd(app))

	return cmd
}

func newAnalyzeAlignmentCmd(app *App) *cobra.Command {
	var description, file string

	cmd := &cobra.Command{
		Use:   "alignment ID",
		Short: "Score how well an image description reflects the prompt",
		Long: "Reads the image description from --description, --file, or stdin,\n" +
			"matches it token-by-token against the prompt scaffold, and prints\n" +
			"the alignment report.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePromptID(ctx, app, args[0])
			if err != nil {
				return err
			}

			text, err := readDescription(description, file)
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("image description is empty")
			}

			report, err := app.Prompts.Feedback(ctx, id, text)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatAlignment(report.Comparisons, report.Alignment))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Image description text")
	cmd.Flags().StringVar(&file, "file", "", "Read the description from a file")
	cmd.MarkFlagsMutuallyExclusive("description", "file")

	return cmd
}

func readDescription(description, file string) (string, error) {
	if description != "" {
		return description, nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading description file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading description from stdin: %w", err)
	}
	return string(data), nil
}
