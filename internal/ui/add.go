package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DaraJKong/my-todos/internal/task"
)

func (a *App) addCmd() *cobra.Command {
	var priority string

	cmd := &cobra.Command{
		Use:   "add [description]...",
		Short: "Add a new task",
		Long: `Add a new task to the list.

Example:
  todos add "Write documentation" --priority=high
  todos add buy milk`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			p, err := task.ParsePriority(priority)
			if err != nil {
				return err
			}

			description := strings.Join(args, " ")
			created, err := a.repo.CreateTask(cmd.Context(), description, p)
			if err != nil {
				return fmt.Errorf("creating task: %w", err)
			}

			fmt.Printf("Created task #%d: %s [%s]\n",
				created.ID, created.Description, formatPriority(created.Priority))
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "low", "Priority: low, medium or high")

	return cmd
}
