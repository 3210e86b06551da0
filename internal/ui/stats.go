package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task counts by status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			counts, err := a.repo.CountByStatus(cmd.Context())
			if err != nil {
				return fmt.Errorf("counting tasks: %w", err)
			}

			if counts.Total() == 0 {
				fmt.Println("No tasks yet. Add one with 'todos add'.")
				return nil
			}

			PrintCounts(counts)
			fmt.Printf("\n%s\n", ProgressBar(counts.Done, counts.Total(), 20))
			return nil
		},
	}
}
