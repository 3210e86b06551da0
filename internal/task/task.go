// Package task defines the core domain types for my-todos.
package task

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrEmptyDescription = errors.New("description cannot be empty")
)

// Domain errors.
var (
	ErrTaskNotFound = errors.New("task not found")
)

// Task represents a single todo item.
// The fields mirror the todos table columns exactly.
type Task struct {
	ID          int64
	Description string
	Status      Status
	Priority    Priority
}

// New creates a new Task with validation.
// New tasks start as to-do with low priority, matching the column defaults.
func New(description string) (Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Task{}, ErrEmptyDescription
	}
	return Task{Description: description}, nil
}

// Validate checks that the task fields hold permitted values.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("invalid status: %d", t.Status)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %d", t.Priority)
	}
	return nil
}

// Active reports whether the task still needs attention.
func (t Task) Active() bool {
	return t.Status != StatusDone
}
