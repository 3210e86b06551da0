// Package ui implements the command line interface.
package ui

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/DaraJKong/my-todos/internal/config"
	"github.com/DaraJKong/my-todos/internal/db"
	"github.com/DaraJKong/my-todos/internal/task"
	"github.com/DaraJKong/my-todos/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   task.Repository
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repo is opened lazily from the configured database path.
func NewApp(repo task.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "todos",
		Short: "A todo list for your terminal",
		Long: `Todos is a terminal todo list with statuses and priorities.

Running it without arguments opens the interactive TUI. The subcommands
cover scripting and quick one-off changes.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.RunWithDebug(a.repo, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.doneCmd())
	a.root.AddCommand(a.startCmd())
	a.root.AddCommand(a.reopenCmd())
	a.root.AddCommand(a.priorityCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.statsCmd())
	a.root.AddCommand(a.suggestCmd())
	a.root.AddCommand(a.migrateCmd())

	return a
}

// ensureRepo opens the configured database on first use.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}

	repo, err := db.New(a.config.Storage.Path)
	if err != nil {
		return err
	}
	a.repo = repo
	return nil
}

// Close releases the repository if one was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("todos %s (commit: %s)\n", Version, Commit)
		},
	}
}

// parseTaskID parses a numeric task id argument.
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID: %w", err)
	}
	return id, nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
