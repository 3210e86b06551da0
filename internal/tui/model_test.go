package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaraJKong/my-todos/internal/config"
	"github.com/DaraJKong/my-todos/internal/task"
	"github.com/DaraJKong/my-todos/internal/tui/commands"
)

// stubRepo is an in-memory Repository for model tests.
type stubRepo struct {
	tasks      []task.Task
	created    []string
	statuses   map[int64]task.Status
	priorities map[int64]task.Priority
	updated    map[int64]string
	deleted    []int64
	listErr    error
}

func (r *stubRepo) CreateTask(ctx context.Context, description string, priority task.Priority) (task.Task, error) {
	t, err := task.New(description)
	if err != nil {
		return task.Task{}, err
	}
	t.ID = int64(len(r.created) + 1)
	t.Priority = priority
	r.created = append(r.created, t.Description)
	return t, nil
}

func (r *stubRepo) GetTask(ctx context.Context, id int64) (task.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			if desc, ok := r.updated[id]; ok {
				t.Description = desc
			}
			return t, nil
		}
	}
	return task.Task{}, task.ErrTaskNotFound
}

func (r *stubRepo) ListTasks(ctx context.Context, f task.Filter, s task.Sort) ([]task.Task, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return f.Apply(r.tasks), nil
}

func (r *stubRepo) UpdateDescription(ctx context.Context, id int64, description string) error {
	if r.updated == nil {
		r.updated = map[int64]string{}
	}
	r.updated[id] = description
	return nil
}

func (r *stubRepo) SetStatus(ctx context.Context, id int64, st task.Status) error {
	if r.statuses == nil {
		r.statuses = map[int64]task.Status{}
	}
	r.statuses[id] = st
	return nil
}

func (r *stubRepo) SetPriority(ctx context.Context, id int64, p task.Priority) error {
	if r.priorities == nil {
		r.priorities = map[int64]task.Priority{}
	}
	r.priorities[id] = p
	return nil
}

func (r *stubRepo) DeleteTask(ctx context.Context, id int64) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubRepo) CountByStatus(ctx context.Context) (task.Counts, error) {
	return task.Counts{}, errors.New("not implemented")
}

func (r *stubRepo) Close() error {
	return nil
}

// sampleTasks returns a small list in display order.
func sampleTasks() []task.Task {
	return []task.Task{
		{ID: 1, Description: "buy milk", Status: task.StatusToDo, Priority: task.PriorityLow},
		{ID: 2, Description: "write report", Status: task.StatusInProgress, Priority: task.PriorityHigh},
		{ID: 3, Description: "ship release", Status: task.StatusDone, Priority: task.PriorityMedium},
	}
}

// testModel builds a ready model with the given tasks already loaded.
func testModel(repo *stubRepo) Model {
	m := New(repo, config.Default())
	m.tasks = repo.tasks
	m.loading = false
	m.width = 80
	m.height = 24
	return m
}

// pressKey runs one key message through Update.
func pressKey(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()

	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}

	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return model, cmd
}

func TestNewDefaults(t *testing.T) {
	m := New(&stubRepo{}, config.Default())

	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want ModeNormal", m.mode)
	}
	if m.filter != task.FilterActive {
		t.Errorf("filter = %v, want %v", m.filter, task.FilterActive)
	}
	if m.sort != task.SortStatus {
		t.Errorf("sort = %v, want %v", m.sort, task.SortStatus)
	}
	if !m.loading {
		t.Error("loading = false, want true before the first load")
	}
}

func TestNewRespectsConfigFilter(t *testing.T) {
	cfg := config.Default()
	cfg.UI.DefaultFilter = "all"

	m := New(&stubRepo{}, cfg)

	if m.filter != task.FilterAll {
		t.Errorf("filter = %v, want %v", m.filter, task.FilterAll)
	}
}

func TestNewFallsBackToMochaTheme(t *testing.T) {
	cfg := config.Default()
	cfg.UI.Theme = "nonexistent"

	m := New(&stubRepo{}, cfg)

	if m.theme.Name != "mocha" {
		t.Errorf("theme = %q, want %q", m.theme.Name, "mocha")
	}
}

func TestInitLoadsTasks(t *testing.T) {
	repo := &stubRepo{tasks: sampleTasks()}
	m := New(repo, config.Default())

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init() returned nil cmd")
	}

	msg := cmd()
	loaded, ok := msg.(commands.TasksLoadedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want TasksLoadedMsg", msg)
	}
	// Default filter hides the done task
	if len(loaded.Tasks) != 2 {
		t.Fatalf("tasks = %d, want 2", len(loaded.Tasks))
	}
}
