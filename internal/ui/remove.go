package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (a *App) removeCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "rm [task-id]...",
		Aliases: []string{"remove"},
		Short:   "Delete tasks",
		Long: `Delete tasks permanently.

Example:
  todos rm 42
  todos rm 3 7 12 --force`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			if !force {
				if !term.IsTerminal(int(os.Stdin.Fd())) {
					return errors.New("refusing to delete without --force on a non-interactive terminal")
				}
				question := fmt.Sprintf("Delete task #%s?", args[0])
				if len(args) > 1 {
					question = fmt.Sprintf("Delete %d tasks?", len(args))
				}
				if !promptYesNo(question) {
					fmt.Println("Aborted.")
					return nil
				}
			}

			for _, arg := range args {
				id, err := parseTaskID(arg)
				if err != nil {
					return err
				}
				if err := a.repo.DeleteTask(cmd.Context(), id); err != nil {
					return fmt.Errorf("deleting task %d: %w", id, err)
				}
				fmt.Printf("Deleted task #%d\n", id)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete without confirmation")

	return cmd
}
