package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/kravitexx/promptforge/internal/cli"
	"github.com/kravitexx/promptforge/internal/config"
	"github.com/kravitexx/promptforge/internal/db"
	"github.com/kravitexx/promptforge/internal/repository"
	"github.com/kravitexx/promptforge/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("PROMPTFORGE_CONFIG"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	formatRepo := repository.NewSQLiteFormatRepo(database)
	promptRepo := repository.NewSQLitePromptRepo(database)

	var observers []service.UseCaseObserver
	if cfg.Debug {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Prompts: service.NewPromptService(promptRepo, formatRepo, observers...),
		Formats: service.NewFormatService(formatRepo, observers...),
		NoColor: cfg.NoColor,
	}
	app.IsInteractive = func() bool {
		return cfg.Interactive &&
			(isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
