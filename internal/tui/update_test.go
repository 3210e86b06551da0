package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaraJKong/my-todos/internal/task"
	"github.com/DaraJKong/my-todos/internal/tui/commands"
)

func TestTasksLoadedStoresTasks(t *testing.T) {
	m := testModel(&stubRepo{})
	m.loading = true

	updated, _ := m.Update(commands.TasksLoadedMsg{Tasks: sampleTasks()})
	model := updated.(Model)

	if model.loading {
		t.Error("loading = true, want false after load")
	}
	if len(model.tasks) != 3 {
		t.Fatalf("tasks = %d, want 3", len(model.tasks))
	}
}

func TestTasksLoadedClampsCursor(t *testing.T) {
	m := testModel(&stubRepo{tasks: sampleTasks()})
	m.cursor = 2

	// The list shrinks to one task, the cursor must follow
	updated, _ := m.Update(commands.TasksLoadedMsg{Tasks: sampleTasks()[:1]})
	model := updated.(Model)

	if model.cursor != 0 {
		t.Errorf("cursor = %d, want 0", model.cursor)
	}
}

func TestTasksLoadedEmptyListResetsCursor(t *testing.T) {
	m := testModel(&stubRepo{tasks: sampleTasks()})
	m.cursor = 1

	updated, _ := m.Update(commands.TasksLoadedMsg{Tasks: nil})
	model := updated.(Model)

	if model.cursor != 0 {
		t.Errorf("cursor = %d, want 0", model.cursor)
	}
}

func TestTaskSavedSetsStatusAndReloads(t *testing.T) {
	m := testModel(&stubRepo{tasks: sampleTasks()})

	updated, cmd := m.Update(commands.TaskSavedMsg{Status: "Created: buy milk"})
	model := updated.(Model)

	if model.statusMsg != "Created: buy milk" {
		t.Errorf("statusMsg = %q, want %q", model.statusMsg, "Created: buy milk")
	}
	if cmd == nil {
		t.Error("cmd = nil, want reload batch")
	}
}

func TestTaskDeletedSetsStatus(t *testing.T) {
	m := testModel(&stubRepo{tasks: sampleTasks()})

	updated, cmd := m.Update(commands.TaskDeletedMsg{Description: "old chore"})
	model := updated.(Model)

	if model.statusMsg != "Deleted: old chore" {
		t.Errorf("statusMsg = %q, want %q", model.statusMsg, "Deleted: old chore")
	}
	if cmd == nil {
		t.Error("cmd = nil, want reload batch")
	}
}

func TestErrMsgSetsStatus(t *testing.T) {
	m := testModel(&stubRepo{})

	updated, _ := m.Update(commands.ErrMsg{Err: errors.New("boom")})
	model := updated.(Model)

	if model.statusMsg != "Error: boom" {
		t.Errorf("statusMsg = %q, want %q", model.statusMsg, "Error: boom")
	}
	if model.err == nil {
		t.Error("err = nil, want stored error")
	}
}

func TestClearStatusMsgRespectsDeadline(t *testing.T) {
	m := testModel(&stubRepo{})
	m.statusMsg = "Created: buy milk"

	// Deadline still in the future: the message stays
	m.statusTime = time.Now().Add(time.Minute)
	updated, _ := m.Update(commands.ClearStatusMsg{})
	model := updated.(Model)
	if model.statusMsg == "" {
		t.Error("statusMsg cleared before its deadline")
	}

	// Deadline passed: the message clears
	model.statusTime = time.Now().Add(-time.Second)
	updated, _ = model.Update(commands.ClearStatusMsg{})
	model = updated.(Model)
	if model.statusMsg != "" {
		t.Errorf("statusMsg = %q, want cleared", model.statusMsg)
	}
}

func TestWindowSizeStored(t *testing.T) {
	m := testModel(&stubRepo{})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model := updated.(Model)

	if model.width != 120 || model.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", model.width, model.height)
	}
}

func TestErrMsgKeepsTasks(t *testing.T) {
	repo := &stubRepo{tasks: sampleTasks()}
	m := testModel(repo)

	updated, _ := m.Update(commands.ErrMsg{Err: task.ErrTaskNotFound})
	model := updated.(Model)

	if len(model.tasks) != len(repo.tasks) {
		t.Errorf("tasks = %d, want %d", len(model.tasks), len(repo.tasks))
	}
}
