// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaraJKong/my-todos/internal/task"
)

// TasksLoadedMsg is sent when the task list is loaded.
type TasksLoadedMsg struct {
	Tasks []task.Task
}

// TaskSavedMsg is sent when a mutation succeeded and the list needs a reload.
type TaskSavedMsg struct {
	Status string // Status line describing what happened
}

// TaskDeletedMsg is sent when a task was deleted.
type TaskDeletedMsg struct {
	Description string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadTasks loads the task list for the given filter and sort order.
func LoadTasks(repo task.Repository, f task.Filter, s task.Sort) tea.Cmd {
	return func() tea.Msg {
		tasks, err := repo.ListTasks(context.Background(), f, s)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return TasksLoadedMsg{Tasks: tasks}
	}
}

// CreateTask creates a task with the default priority.
func CreateTask(repo task.Repository, description string) tea.Cmd {
	return func() tea.Msg {
		created, err := repo.CreateTask(context.Background(), description, task.PriorityLow)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return TaskSavedMsg{Status: fmt.Sprintf("Created: %s", created.Description)}
	}
}

// UpdateDescription rewrites a task description.
func UpdateDescription(repo task.Repository, id int64, description string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := repo.UpdateDescription(ctx, id, description); err != nil {
			return ErrMsg{Err: err}
		}
		updated, err := repo.GetTask(ctx, id)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return TaskSavedMsg{Status: fmt.Sprintf("Updated: %s", updated.Description)}
	}
}

// CycleStatus advances a task to the next status in its cycle.
func CycleStatus(repo task.Repository, t task.Task) tea.Cmd {
	return func() tea.Msg {
		next := t.Status.Next()
		if err := repo.SetStatus(context.Background(), t.ID, next); err != nil {
			return ErrMsg{Err: err}
		}
		return TaskSavedMsg{Status: fmt.Sprintf("Marked %s: %s", next, t.Description)}
	}
}

// CyclePriority advances a task to the next priority in its cycle.
func CyclePriority(repo task.Repository, t task.Task) tea.Cmd {
	return func() tea.Msg {
		next := t.Priority.Next()
		if err := repo.SetPriority(context.Background(), t.ID, next); err != nil {
			return ErrMsg{Err: err}
		}
		return TaskSavedMsg{Status: fmt.Sprintf("Priority %s: %s", next, t.Description)}
	}
}

// DeleteTask removes a task permanently.
func DeleteTask(repo task.Repository, t task.Task) tea.Cmd {
	return func() tea.Msg {
		if err := repo.DeleteTask(context.Background(), t.ID); err != nil {
			return ErrMsg{Err: err}
		}
		return TaskDeletedMsg{Description: t.Description}
	}
}

// ClearStatusAfter schedules a status message clear.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
