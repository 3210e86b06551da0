package task

import (
	"fmt"
	"strings"
)

// Status represents the progress state of a task.
//
// The integer values are the storage encoding and must not be reordered:
// the schema defaults new rows to 0 and the done-flag backfill wrote 2
// for completed tasks.
type Status int

const (
	StatusToDo Status = iota
	StatusInProgress
	StatusDone
)

// String returns the human-readable form.
func (s Status) String() string {
	switch s {
	case StatusToDo:
		return "to do"
	case StatusInProgress:
		return "in progress"
	case StatusDone:
		return "done"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Next returns the following status in the to do -> in progress -> done cycle.
func (s Status) Next() Status {
	switch s {
	case StatusToDo:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	default:
		return StatusToDo
	}
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	return s >= StatusToDo && s <= StatusDone
}

// ParseStatus converts user input into a Status.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "todo", "to do", "to-do", "open":
		return StatusToDo, nil
	case "in progress", "in-progress", "inprogress", "doing", "started":
		return StatusInProgress, nil
	case "done", "complete", "completed", "closed":
		return StatusDone, nil
	default:
		return StatusToDo, fmt.Errorf("unknown status: %q", s)
	}
}
