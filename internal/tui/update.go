package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaraJKong/my-todos/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.TasksLoadedMsg:
		m.tasks = msg.Tasks
		m.loading = false
		// Keep the cursor on a real row after the list shrinks
		if m.cursor >= len(m.tasks) {
			m.cursor = len(m.tasks) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case commands.TaskSavedMsg:
		m.statusMsg = msg.Status
		m.statusTime = time.Now().Add(statusMsgTTL)
		return m, tea.Batch(
			commands.LoadTasks(m.repo, m.filter, m.sort),
			commands.ClearStatusAfter(statusMsgTTL),
		)

	case commands.TaskDeletedMsg:
		m.statusMsg = fmt.Sprintf("Deleted: %s", msg.Description)
		m.statusTime = time.Now().Add(statusMsgTTL)
		return m, tea.Batch(
			commands.LoadTasks(m.repo, m.filter, m.sort),
			commands.ClearStatusAfter(statusMsgTTL),
		)

	case commands.ErrMsg:
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(statusMsgTTL)
		return m, commands.ClearStatusAfter(statusMsgTTL)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Forward everything else to the input so its cursor keeps blinking
	if m.mode == ModeInsert || m.mode == ModeEdit {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}
