package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/DaraJKong/my-todos/internal/task"
)

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderTasks())
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	return m.styles.App.Render(b.String())
}

// renderHeader renders the title line with the active filter and sort order.
func (m Model) renderHeader() string {
	title := m.styles.Title.Render("todos")
	meta := m.styles.HeaderMeta.Render(fmt.Sprintf("%s · by %s", m.filter, m.sort))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", meta)
}

// renderTasks renders the task list with the input line woven in.
func (m Model) renderTasks() string {
	if m.loading {
		return m.styles.Muted.Render("Loading...")
	}

	var lines []string

	if m.mode == ModeInsert {
		lines = append(lines, "  "+m.input.View())
	}

	for i, t := range m.tasks {
		if m.mode == ModeEdit && t.ID == m.editingID {
			// The input replaces the row being edited
			lines = append(lines, "  "+m.input.View())
			continue
		}
		lines = append(lines, m.renderTaskRow(t, i == m.cursor))
	}

	if len(lines) == 0 {
		return m.styles.Muted.Render(emptyMessage(m.filter))
	}

	return strings.Join(lines, "\n")
}

// renderTaskRow renders one task line fitted to the terminal width.
func (m Model) renderTaskRow(t task.Task, selected bool) string {
	cursor := "  "
	if selected && m.mode != ModeInsert {
		cursor = m.styles.CursorBar.Render("> ")
	}

	symbol := m.styles.StatusStyle(t.Status).Render(statusSymbol(t.Status))
	priority := m.styles.PriorityStyle(t.Priority).Render(fmt.Sprintf("%-8s", "["+t.Priority.String()+"]"))

	desc := t.Description
	if t.Status == task.StatusDone {
		desc = m.styles.RowDone.Render(desc)
	} else if selected && m.mode != ModeInsert {
		desc = m.styles.RowSelected.Render(desc)
	} else {
		desc = m.styles.Row.Render(desc)
	}

	line := fmt.Sprintf("%s%s #%-4d %s %s", cursor, symbol, t.ID, priority, desc)
	if m.width > 4 {
		line = ansi.Truncate(line, m.width-4, "…")
	}
	return line
}

// renderFooter renders counts, the transient status line, and key help.
func (m Model) renderFooter() string {
	var b strings.Builder

	label := fmt.Sprintf("%d tasks", len(m.tasks))
	if len(m.tasks) == 1 {
		label = "1 task"
	}
	b.WriteString(m.styles.Muted.Render(label))
	b.WriteString("\n")

	switch {
	case m.mode == ModeConfirmDelete:
		t := m.selectedTask()
		if t != nil {
			b.WriteString(m.styles.Warning.Render(fmt.Sprintf("Delete %q? (y/n)", t.Description)))
			b.WriteString("\n")
		}
	case m.statusMsg != "":
		b.WriteString(m.styles.Status.Render(m.statusMsg))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.helpText()))
	return b.String()
}

// helpText returns the key hints for the current mode.
func (m Model) helpText() string {
	switch m.mode {
	case ModeInsert:
		return "enter save · esc cancel"
	case ModeEdit:
		return "enter save · esc cancel"
	case ModeConfirmDelete:
		return "y confirm · n cancel"
	default:
		return "a add · e edit · space status · p priority · d delete · f filter · s sort · q quit"
	}
}

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

// emptyMessage tells the user why the list came back empty.
func emptyMessage(f task.Filter) string {
	switch f {
	case task.FilterCompleted:
		return "No completed tasks."
	case task.FilterAll:
		return "No tasks yet. Press a to add one."
	default:
		return "No active tasks. Press a to add one."
	}
}
