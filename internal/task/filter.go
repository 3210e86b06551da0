package task

import (
	"fmt"
	"strings"
)

// Filter selects which tasks are visible in a listing.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

// DefaultFilter is what listings use when nothing else is configured.
// Completed tasks are hidden by default.
const DefaultFilter = FilterActive

// String returns the human-readable form.
func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterCompleted:
		return "completed"
	default:
		return "all"
	}
}

// Matches reports whether the task passes the filter.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterActive:
		return t.Status != StatusDone
	case FilterCompleted:
		return t.Status == StatusDone
	default:
		return true
	}
}

// Next returns the following filter in the all -> active -> completed cycle.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Apply returns the tasks that pass the filter, preserving order.
func (f Filter) Apply(tasks []Task) []Task {
	if f == FilterAll {
		return tasks
	}
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// ParseFilter converts user input into a Filter.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return FilterAll, nil
	case "active", "open", "pending":
		return FilterActive, nil
	case "completed", "complete", "done":
		return FilterCompleted, nil
	default:
		return FilterAll, fmt.Errorf("unknown filter: %q", s)
	}
}
