package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [task-id] [description]...",
		Short: "Rewrite a task's description",
		Long: `Replace a task's description.

Example:
  todos edit 42 buy oat milk instead`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			description := strings.Join(args[1:], " ")
			if err := a.repo.UpdateDescription(cmd.Context(), id, description); err != nil {
				return fmt.Errorf("updating task %d: %w", id, err)
			}

			fmt.Printf("Updated task #%d: %s\n", id, strings.TrimSpace(description))
			return nil
		},
	}
}
