package cli

import (
	"context"
	"fmt"

	"github.com/kravitexx/promptforge/internal/cli/formatter"
	"github.com/kravitexx/promptforge/internal/domain"
	"github.com/spf13/cobra"
)

func newPromptCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Build and inspect structured prompts",
	}

	cmd.AddCommand(
		newPromptBuildCmd(app),
		newPromptListCmd(app),
		newPromptShowCmd(app),
		newPromptFormatCmd(app),
		newPromptVersionsCmd(app),
		newPromptQualityCmd(app),
		newPromptRemoveCmd(app),
	)

	return cmd
}

// slotFlags maps flag names to scaffold slot keys, in canonical order.
var slotFlags = []struct {
	Flag string
	Key  domain.SlotKey
}{
	{"subject", domain.SlotSubject},
	{"context", domain.SlotContext},
	{"style", domain.SlotStyle},
	{"composition", domain.SlotComposition},
	{"lighting", domain.SlotLighting},
	{"atmosphere", domain.SlotAtmosphere},
	{"quality", domain.SlotQuality},
}

func newPromptBuildCmd(app *App) *cobra.Command {
	values := make(map[domain.SlotKey]*string, len(slotFlags))
	var raw string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a prompt from scaffold slot values",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := domain.NewScaffold()
			var err error
			for _, sf := range slotFlags {
				if content := *values[sf.Key]; content != "" {
					sc, err = sc.UpdateSlot(sf.Key, content)
					if err != nil {
						return err
					}
				}
			}

			p, err := app.Prompts.Build(context.Background(), sc, raw)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatPromptInspect(p))
			return nil
		},
	}

	for _, sf := range slotFlags {
		values[sf.Key] = cmd.Flags().String(sf.Flag, "", fmt.Sprintf("%s slot content", domain.SlotNames[sf.Key]))
	}
	cmd.Flags().StringVar(&raw, "raw", "", "Original free-form prompt text")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("style")

	return cmd
}

func newPromptListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored prompts (latest versions)",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompts, err := app.Prompts.List(context.Background())
			if err != nil {
				return err
			}
			if len(prompts) == 0 {
				fmt.Println("No prompts found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatPromptList(prompts))
			return nil
		},
	}
}

func newPromptShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show prompt details",
		Args:  cobra.ExactArgs(1),
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
			fmt.Printf("%s\n", formatter.FormatPromptInspect(p))
			return nil
		},
	}
}

func newPromptFormatCmd(app *App) *cobra.Command {
	var negative string

	cmd := &cobra.Command{
		Use:   "format ID MODEL",
		Short: "Render a prompt for one model template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePromptID(ctx, app, args[0])
			if err != nil {
				return err
			}
			tmpl, err := resolveModelTemplate(args[1])
			if err != nil {
				return err
			}

			out, err := app.Prompts.Format(ctx, id, tmpl.ID, negative)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&negative, "negative", "", "Negative prompt override")

	return cmd
}

func newPromptVersionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "versions ID",
		Short: "Show a prompt's version history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePromptID(ctx, app, args[0])
			if err != nil {
				return err
			}
			versions, err := app.Prompts.Versions(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatVersionList(versions))
			return nil
		},
	}
}

func newPromptQualityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quality ID",
		Short: "Score prompt completeness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePromptID(ctx, app, args[0])
			if err != nil {
				return err
			}
			report, err := app.Prompts.Quality(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatQualityReport(report))
			return nil
		},
	}
}

func newPromptRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a prompt and all its versions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePromptID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Prompts.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed prompt %s\n", id)
			return nil
		},
	}
}
