package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitual/internal/cli"
	apperrors "github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path or PostgreSQL connection string." type:"string" default:"~/.config/habitual/habitual.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init      cli.InitCmd      `cmd:"" help:"Initialize habitual storage."`
	Menu      cli.MenuCmd      `cmd:"" help:"Run the interactive menu." default:"1"`
	User      cli.UserCmd      `cmd:"" help:"Manage accounts."`
	Habit     cli.HabitCmd     `cmd:"" help:"Manage habits and check-offs."`
	Analytics cli.AnalyticsCmd `cmd:"" help:"Analyse habit streaks."`
	Seed      cli.SeedCmd      `cmd:"" help:"Load the predefined demo habits."`
	Remind    cli.RemindCmd    `cmd:"" help:"Print periodic reminders for a habit."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitual"),
		kong.Description("Habit tracker with streaks, periodicity rules, and analytics"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	// Pick the backend based on config format
	var store storage.Provider
	if strings.HasPrefix(CLI.Config, "postgres://") || strings.HasPrefix(CLI.Config, "postgresql://") {
		store = storage.NewPostgresStore(CLI.Config)
		if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: defaultConfigDir()}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
		}
	} else {
		path := expandHome(CLI.Config)
		store = storage.NewSQLiteStore(path)
		if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(path)}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
		}
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		apperrors.Fatal(store.Load())
	}

	apperrors.Fatal(ctx.Run(appCtx))
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "habitual")
}
