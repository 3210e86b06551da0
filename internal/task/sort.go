package task

import (
	"fmt"
	"sort"
	"strings"
)

// Sort determines the ordering of a task listing.
type Sort int

const (
	// SortStatus orders by status first: to do, then in progress, then done.
	SortStatus Sort = iota
	// SortPriority orders by priority first, highest on top.
	SortPriority
)

// String returns the human-readable form.
func (s Sort) String() string {
	if s == SortPriority {
		return "priority"
	}
	return "status"
}

// Toggle switches between the two orderings.
func (s Sort) Toggle() Sort {
	if s == SortStatus {
		return SortPriority
	}
	return SortStatus
}

// Less reports whether a orders before b.
//
// Status ascends (work not yet started floats up), priority descends
// (high first), and ties break on id descending so the newest task of
// equal rank comes first.
func (s Sort) Less(a, b Task) bool {
	switch s {
	case SortPriority:
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.Status != b.Status {
			return a.Status < b.Status
		}
	default:
		if a.Status != b.Status {
			return a.Status < b.Status
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
	}
	return a.ID > b.ID
}

// SortTasks sorts tasks in place using the given ordering.
func SortTasks(tasks []Task, s Sort) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return s.Less(tasks[i], tasks[j])
	})
}

// ParseSort converts user input into a Sort.
func ParseSort(s string) (Sort, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "status":
		return SortStatus, nil
	case "priority", "prio":
		return SortPriority, nil
	default:
		return SortStatus, fmt.Errorf("unknown sort order: %q", s)
	}
}
