package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DaraJKong/my-todos/internal/task"
)

func (a *App) doneCmd() *cobra.Command {
	return a.setStatusCmd("done", "Mark tasks as done", task.StatusDone, "Done")
}

func (a *App) startCmd() *cobra.Command {
	return a.setStatusCmd("start", "Mark tasks as in progress", task.StatusInProgress, "Started")
}

func (a *App) reopenCmd() *cobra.Command {
	return a.setStatusCmd("reopen", "Mark tasks as to do again", task.StatusToDo, "Reopened")
}

// setStatusCmd builds a command that sets the given status on every id argument.
func (a *App) setStatusCmd(use, short string, st task.Status, verb string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [task-id]...",
		Short: short,
		Long: fmt.Sprintf(`%s.

Example:
  todos %s 42
  todos %s 3 7 12`, short, use, use),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			for _, arg := range args {
				id, err := parseTaskID(arg)
				if err != nil {
					return err
				}
				if err := a.repo.SetStatus(cmd.Context(), id, st); err != nil {
					return fmt.Errorf("updating task %d: %w", id, err)
				}
				fmt.Printf("%s task #%d\n", verb, id)
			}
			return nil
		},
	}
}
