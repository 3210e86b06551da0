package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DaraJKong/my-todos/internal/task"
)

func (a *App) listCmd() *cobra.Command {
	var (
		all       bool
		completed bool
		sortBy    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks filtered by state.

Without flags the active tasks are shown (to do and in progress), or
whatever default_filter is configured.`,
		Example: `  todos list
  todos list --all
  todos list --completed --sort priority`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			f, err := task.ParseFilter(a.config.UI.DefaultFilter)
			if err != nil {
				f = task.DefaultFilter
			}
			switch {
			case all:
				f = task.FilterAll
			case completed:
				f = task.FilterCompleted
			}

			so, err := task.ParseSort(sortBy)
			if err != nil {
				return err
			}

			tasks, err := a.repo.ListTasks(cmd.Context(), f, so)
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}

			if len(tasks) == 0 {
				fmt.Println(emptyListMessage(f))
				return nil
			}

			for _, t := range tasks {
				PrintTaskRow(t)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show all tasks regardless of status")
	cmd.Flags().BoolVarP(&completed, "completed", "c", false, "Show only completed tasks")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "", "Sort order: status or priority")
	cmd.MarkFlagsMutuallyExclusive("all", "completed")

	return cmd
}
