package ui

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DaraJKong/my-todos/internal/llm"
	"github.com/DaraJKong/my-todos/internal/planner"
	"github.com/DaraJKong/my-todos/internal/task"
)

func (a *App) suggestCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the configured LLM what to work on next",
		Long: `Send the active tasks to the configured LLM and print its picks.

The provider, model and base URL come from the [llm] config section.

Example:
  todos suggest
  todos suggest -n 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			tasks, err := a.repo.ListTasks(cmd.Context(), task.FilterActive, task.SortStatus)
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}

			client, err := llm.NewClient(a.config.LLM.Provider, a.config.LLM.Model, a.config.LLM.BaseURL)
			if err != nil {
				return fmt.Errorf("creating LLM client: %w", err)
			}

			fmt.Println("Picking next tasks...")
			plan, err := planner.New(client).Suggest(cmd.Context(), tasks, count)
			if errors.Is(err, planner.ErrNoActiveTasks) {
				fmt.Println("Nothing to suggest: every task is done.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("suggesting tasks: %w", err)
			}

			byID := make(map[int64]task.Task, len(tasks))
			for _, t := range tasks {
				byID[t.ID] = t
			}

			fmt.Println()
			for _, item := range plan.Items {
				t := byID[item.TaskID]
				fmt.Printf("  %s %s %s\n",
					formatHeader(fmt.Sprintf("#%d", t.ID)), priorityLabel(t.Priority), t.Description)
				fmt.Printf("     %s\n", formatMuted(item.Reason))
			}
			if plan.Summary != "" {
				fmt.Printf("\n%s\n", plan.Summary)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 3, "Maximum number of suggestions")

	return cmd
}
