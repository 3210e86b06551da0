package task

import (
	"fmt"
	"strings"
)

// Priority represents how urgent a task is.
//
// Like Status, the integer values are the storage encoding. Every row
// that predates the priority column carries the default, low.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// String returns the human-readable form.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// Next returns the following level in the low -> medium -> high cycle.
func (p Priority) Next() Priority {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	default:
		return PriorityLow
	}
}

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// ParsePriority converts user input into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l", "0":
		return PriorityLow, nil
	case "medium", "med", "m", "1":
		return PriorityMedium, nil
	case "high", "h", "2":
		return PriorityHigh, nil
	default:
		return PriorityLow, fmt.Errorf("unknown priority: %q", s)
	}
}
