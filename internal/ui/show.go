package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [task-id]",
		Short: "Show one task in detail",
		Long: `Show a single task by its ID.

Example:
  todos show 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			t, err := a.repo.GetTask(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("fetching task: %w", err)
			}

			fmt.Println(formatHeader(fmt.Sprintf("Task #%d", t.ID)))
			fmt.Printf("  Description: %s\n", t.Description)
			fmt.Printf("  Status:      %s %s\n", statusSymbol(t.Status), formatStatus(t.Status))
			fmt.Printf("  Priority:    %s\n", formatPriority(t.Priority))
			return nil
		},
	}
}
