package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/kravitexx/promptforge/internal/cli/formatter"
	"github.com/kravitexx/promptforge/internal/format"
	"github.com/kravitexx/promptforge/internal/service"
	"github.com/spf13/cobra"
)

func newFormatCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Manage custom output formats",
	}

	cmd.AddCommand(
		newFormatAddCmd(app),
		newFormatListCmd(app),
		newFormatShowCmd(app),
		newFormatValidateCmd(app),
		newFormatRemoveCmd(app),
		newFormatExportCmd(app),
		newFormatImportCmd(app),
		newFormatStatsCmd(app),
	)

	return cmd
}

func newFormatAddCmd(app *App) *cobra.Command {
	var name, template string
	var draft bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a custom format template",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			save := app.Formats.Save
			if draft {
				save = app.Formats.SaveDraft
			}
			f, err := save(ctx, name, template)

			var invalid *service.ErrInvalidTemplate
			if errors.As(err, &invalid) {
				fmt.Printf("%s", formatter.FormatValidation(invalid.Result))
				return fmt.Errorf("template rejected (use --draft to save anyway)")
			}
			if err != nil {
				return err
			}

			fmt.Printf("Saved format %s %s\n", f.Name, formatter.ValidBadge(f.Valid))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Format name")
	cmd.Flags().StringVar(&template, "template", "", "Template string, e.g. \"{S}, {St} --ar 16:9\"")
	cmd.Flags().BoolVar(&draft, "draft", false, "Save even when validation fails")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}

func newFormatListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List custom formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := app.Formats.List(context.Background())
			if err != nil {
				return err
			}
			if len(formats) == 0 {
				fmt.Println("No custom formats found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatFormatList(formats))
			return nil
		},
	}
}

func newFormatShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a custom format with a fresh validation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatFormatInspect(f, format.Validate(f.Template)))
			return nil
		},
	}
}

func newFormatValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate TEMPLATE",
		Short: "Validate a template string without saving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%s", formatter.FormatValidation(format.Validate(args[0])))
			return nil
		},
	}
}

func newFormatRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a custom format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			f, err := resolveFormat(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Formats.Delete(ctx, f.ID); err != nil {
				return err
			}
			fmt.Printf("Removed format %s\n", f.Name)
			return nil
		},
	}
}

func newFormatExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export custom formats as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Formats.Export(context.Background())
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing export file: %w", err)
			}
			fmt.Printf("Exported formats to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default: stdout)")

	return cmd
}

func newFormatImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import custom formats from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading import file: %w", err)
			}

			result, err := app.Formats.Import(context.Background(), data)
			if err != nil {
				return err
			}
			fmt.Printf("%s", formatter.FormatImportResult(result))
			return nil
		},
	}
}

func newFormatStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show stored-format statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Formats.Stats(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatFormatStats(stats.TotalFormats, stats.ValidFormats, stats.InvalidFormats))
			return nil
		},
	}
}
