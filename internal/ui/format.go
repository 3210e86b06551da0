package ui

import (
	"fmt"
	"strings"

	"github.com/DaraJKong/my-todos/internal/task"
)

// statusSymbol returns the status indicator for a task.
func statusSymbol(s task.Status) string {
	switch s {
	case task.StatusToDo:
		return "○"
	case task.StatusInProgress:
		return "◐"
	case task.StatusDone:
		return "✓"
	default:
		return "?"
	}
}

// formatStatus renders a status name with its color.
func formatStatus(s task.Status) string {
	switch s {
	case task.StatusInProgress:
		return colorInProgress.Sprint(s.String())
	case task.StatusDone:
		return colorDone.Sprint(s.String())
	default:
		return s.String()
	}
}

// formatPriority renders a priority name with its color.
func formatPriority(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return colorHigh.Sprint(p.String())
	case task.PriorityMedium:
		return colorMedium.Sprint(p.String())
	default:
		return colorLow.Sprint(p.String())
	}
}

// priorityLabel renders a bracketed priority marker padded for row alignment.
// Padding happens before coloring so ANSI codes do not skew the columns.
func priorityLabel(p task.Priority) string {
	label := fmt.Sprintf("%-8s", "["+p.String()+"]")
	switch p {
	case task.PriorityHigh:
		return colorHigh.Sprint(label)
	case task.PriorityMedium:
		return colorMedium.Sprint(label)
	default:
		return colorLow.Sprint(label)
	}
}

// renderTaskRow renders one task line fitted to the given width.
func renderTaskRow(t task.Task, width int) string {
	symbol := statusSymbol(t.Status)
	switch t.Status {
	case task.StatusInProgress:
		symbol = colorInProgress.Sprint(symbol)
	case task.StatusDone:
		symbol = colorDone.Sprint(symbol)
	}

	// Overhead: "  ○ #1234  [medium]  " before the description starts.
	desc := t.Description
	if maxDesc := width - 21; maxDesc >= 10 && len(desc) > maxDesc {
		desc = desc[:maxDesc-3] + "..."
	}
	if t.Status == task.StatusDone {
		desc = formatMuted(desc)
	}

	return fmt.Sprintf("  %s #%-4d %s %s", symbol, t.ID, priorityLabel(t.Priority), desc)
}

// PrintTaskRow prints a single task row truncated to the terminal width.
func PrintTaskRow(t task.Task) {
	fmt.Println(renderTaskRow(t, termWidth()))
}

// PrintCounts prints task totals per status.
func PrintCounts(c task.Counts) {
	fmt.Printf("  To do:       %d\n", c.ToDo)
	fmt.Printf("  In progress: %d\n", c.InProgress)
	fmt.Printf("  Done:        %s\n", formatStats(fmt.Sprintf("%d", c.Done)))
}

// ProgressBar renders completion as an ASCII bar.
func ProgressBar(done, total, width int) string {
	if total == 0 {
		return "[" + strings.Repeat("░", width) + "] (0% done)"
	}

	pct := (done * 100) / total
	filled := (done * width) / total

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", colorDone.Sprint(bar), formatStats(fmt.Sprintf("(%d%% done)", pct)))
}

// emptyListMessage tells the user why the list came back empty.
func emptyListMessage(f task.Filter) string {
	switch f {
	case task.FilterCompleted:
		return "No completed tasks."
	case task.FilterAll:
		return "No tasks yet. Add one with 'todos add'."
	default:
		return "No active tasks. Add one with 'todos add'."
	}
}
