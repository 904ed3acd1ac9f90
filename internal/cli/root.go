package cli

import (
	"github.com/kravitexx/promptforge/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Prompts service.PromptService
	Formats service.FormatService

	// IsInteractive gates wizard-style flows on a real terminal.
	IsInteractive func() bool

	// NoColor disables lipgloss styling.
	NoColor bool
}

// NewRootCmd creates the top-level "promptforge" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "promptforge",
		Short: "Structured image-prompt builder and feedback analyzer",
	}

	root.AddCommand(
		newPromptCmd(app),
		newFormatCmd(app),
		newModelCmd(app),
		newAnalyzeCmd(app),
		newImproveCmd(app),
		newQuestionsCmd(app),
	)

	return root
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}
