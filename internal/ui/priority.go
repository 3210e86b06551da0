package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DaraJKong/my-todos/internal/task"
)

func (a *App) priorityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "priority [task-id] [level]",
		Short: "Set a task's priority",
		Long: `Set a task's priority to low, medium or high.

Example:
  todos priority 42 high`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			p, err := task.ParsePriority(args[1])
			if err != nil {
				return err
			}

			if err := a.repo.SetPriority(cmd.Context(), id, p); err != nil {
				return fmt.Errorf("updating task %d: %w", id, err)
			}

			fmt.Printf("Set task #%d priority to %s\n", id, formatPriority(p))
			return nil
		},
	}
}
