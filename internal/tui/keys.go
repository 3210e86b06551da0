package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaraJKong/my-todos/internal/task"
	"github.com/DaraJKong/my-todos/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Log keystroke
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// Mode-specific handling
	switch m.mode {
	case ModeInsert, ModeEdit:
		return m.handleInputKeys(msg)
	case ModeConfirmDelete:
		return m.handleConfirmKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "j", "down":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		if len(m.tasks) > 0 {
			m.cursor = len(m.tasks) - 1
		}

	// Add a task
	case "a":
		LogModeChange(m.mode, ModeInsert, "add_task")
		m.mode = ModeInsert
		m.editingID = 0
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	// Edit the selected task
	case "e", "enter":
		t := m.selectedTask()
		if t == nil {
			m.statusMsg = "No task selected"
			return m, nil
		}
		LogModeChange(m.mode, ModeEdit, "edit_task")
		m.mode = ModeEdit
		m.editingID = t.ID
		m.input.SetValue(t.Description)
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	// Cycle status
	case " ":
		t := m.selectedTask()
		if t == nil {
			m.statusMsg = "No task selected"
			return m, nil
		}
		return m, commands.CycleStatus(m.repo, *t)

	// Cycle priority
	case "p":
		t := m.selectedTask()
		if t == nil {
			m.statusMsg = "No task selected"
			return m, nil
		}
		return m, commands.CyclePriority(m.repo, *t)

	// Delete (with confirmation)
	case "d", "x":
		if m.selectedTask() == nil {
			m.statusMsg = "No task selected"
			return m, nil
		}
		LogModeChange(m.mode, ModeConfirmDelete, "delete_task")
		m.mode = ModeConfirmDelete
		return m, nil

	// Copy description to clipboard
	case "y":
		t := m.selectedTask()
		if t == nil {
			m.statusMsg = "No task selected"
			return m, nil
		}
		if err := clipboard.WriteAll(t.Description); err != nil {
			m.statusMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.statusMsg = "Copied task description"
		return m, nil

	// Cycle filter
	case "f", "tab":
		m.filter = m.filter.Next()
		m.cursor = 0
		m.loading = true
		return m, commands.LoadTasks(m.repo, m.filter, m.sort)

	// Toggle sort order
	case "s":
		m.sort = m.sort.Toggle()
		m.loading = true
		return m, commands.LoadTasks(m.repo, m.filter, m.sort)

	// Reload
	case "r":
		m.loading = true
		return m, commands.LoadTasks(m.repo, m.filter, m.sort)
	}

	return m, nil
}

// handleInputKeys handles keys while typing a description.
func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		LogModeChange(m.mode, ModeNormal, "input_cancelled")
		m.mode = ModeNormal
		m.editingID = 0
		m.input.Blur()
		m.input.SetValue("")
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			m.statusMsg = "Description is required"
			return m, nil
		}

		var cmd tea.Cmd
		if m.mode == ModeEdit {
			cmd = commands.UpdateDescription(m.repo, m.editingID, value)
		} else {
			cmd = commands.CreateTask(m.repo, value)
		}

		LogModeChange(m.mode, ModeNormal, "input_submitted")
		m.mode = ModeNormal
		m.editingID = 0
		m.input.Blur()
		m.input.SetValue("")
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleConfirmKeys handles keys in the delete confirmation.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		t := m.selectedTask()
		LogModeChange(m.mode, ModeNormal, "delete_confirmed")
		m.mode = ModeNormal
		if t == nil {
			return m, nil
		}
		return m, commands.DeleteTask(m.repo, *t)

	case "n", "esc":
		LogModeChange(m.mode, ModeNormal, "delete_cancelled")
		m.mode = ModeNormal
		m.statusMsg = "Delete cancelled"
		return m, nil
	}
	return m, nil
}

// selectedTask returns the task under the cursor, or nil when the list is empty.
func (m Model) selectedTask() *task.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return &m.tasks[m.cursor]
}
