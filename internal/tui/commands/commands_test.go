package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/DaraJKong/my-todos/internal/task"
)

type fakeRepo struct {
	listTasks   func(f task.Filter, s task.Sort) ([]task.Task, error)
	created     []string
	statuses    map[int64]task.Status
	priorities  map[int64]task.Priority
	deleted     []int64
	getResult   task.Task
	failSet     error
	description map[int64]string
}

func (f *fakeRepo) CreateTask(ctx context.Context, description string, priority task.Priority) (task.Task, error) {
	t, err := task.New(description)
	if err != nil {
		return task.Task{}, err
	}
	t.ID = int64(len(f.created) + 1)
	t.Priority = priority
	f.created = append(f.created, t.Description)
	return t, nil
}

func (f *fakeRepo) GetTask(ctx context.Context, id int64) (task.Task, error) {
	return f.getResult, nil
}

func (f *fakeRepo) ListTasks(ctx context.Context, fl task.Filter, s task.Sort) ([]task.Task, error) {
	if f.listTasks == nil {
		return nil, errors.New("not implemented")
	}
	return f.listTasks(fl, s)
}

func (f *fakeRepo) UpdateDescription(ctx context.Context, id int64, description string) error {
	if f.description == nil {
		f.description = map[int64]string{}
	}
	f.description[id] = description
	return nil
}

func (f *fakeRepo) SetStatus(ctx context.Context, id int64, st task.Status) error {
	if f.failSet != nil {
		return f.failSet
	}
	if f.statuses == nil {
		f.statuses = map[int64]task.Status{}
	}
	f.statuses[id] = st
	return nil
}

func (f *fakeRepo) SetPriority(ctx context.Context, id int64, p task.Priority) error {
	if f.priorities == nil {
		f.priorities = map[int64]task.Priority{}
	}
	f.priorities[id] = p
	return nil
}

func (f *fakeRepo) DeleteTask(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepo) CountByStatus(ctx context.Context) (task.Counts, error) {
	return task.Counts{}, errors.New("not implemented")
}

func (f *fakeRepo) Close() error {
	return nil
}

func TestLoadTasksReturnsTasksLoadedMsg(t *testing.T) {
	repo := &fakeRepo{
		listTasks: func(f task.Filter, s task.Sort) ([]task.Task, error) {
			if f != task.FilterActive {
				t.Errorf("filter = %v, want %v", f, task.FilterActive)
			}
			if s != task.SortPriority {
				t.Errorf("sort = %v, want %v", s, task.SortPriority)
			}
			return []task.Task{{ID: 1, Description: "buy milk"}}, nil
		},
	}

	msg := LoadTasks(repo, task.FilterActive, task.SortPriority)()

	loaded, ok := msg.(TasksLoadedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want TasksLoadedMsg", msg)
	}
	if len(loaded.Tasks) != 1 {
		t.Fatalf("tasks = %d, want 1", len(loaded.Tasks))
	}
	if loaded.Tasks[0].Description != "buy milk" {
		t.Fatalf("task description = %q, want %q", loaded.Tasks[0].Description, "buy milk")
	}
}

func TestLoadTasksReturnsErrMsg(t *testing.T) {
	boom := errors.New("boom")
	repo := &fakeRepo{
		listTasks: func(f task.Filter, s task.Sort) ([]task.Task, error) {
			return nil, boom
		},
	}

	msg := LoadTasks(repo, task.FilterAll, task.SortStatus)()

	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("msg type = %T, want ErrMsg", msg)
	}
	if !errors.Is(errMsg.Err, boom) {
		t.Fatalf("err = %v, want %v", errMsg.Err, boom)
	}
}

func TestCreateTaskReturnsTaskSavedMsg(t *testing.T) {
	repo := &fakeRepo{}

	msg := CreateTask(repo, "walk the dog")()

	saved, ok := msg.(TaskSavedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want TaskSavedMsg", msg)
	}
	if saved.Status != "Created: walk the dog" {
		t.Fatalf("status = %q, want %q", saved.Status, "Created: walk the dog")
	}
	if len(repo.created) != 1 {
		t.Fatalf("created = %d, want 1", len(repo.created))
	}
}

func TestCreateTaskEmptyDescription(t *testing.T) {
	repo := &fakeRepo{}

	msg := CreateTask(repo, "   ")()

	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("msg type = %T, want ErrMsg", msg)
	}
	if !errors.Is(errMsg.Err, task.ErrEmptyDescription) {
		t.Fatalf("err = %v, want %v", errMsg.Err, task.ErrEmptyDescription)
	}
}

func TestUpdateDescriptionReturnsTaskSavedMsg(t *testing.T) {
	repo := &fakeRepo{getResult: task.Task{ID: 4, Description: "buy oat milk"}}

	msg := UpdateDescription(repo, 4, "buy oat milk")()

	saved, ok := msg.(TaskSavedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want TaskSavedMsg", msg)
	}
	if saved.Status != "Updated: buy oat milk" {
		t.Fatalf("status = %q, want %q", saved.Status, "Updated: buy oat milk")
	}
	if repo.description[4] != "buy oat milk" {
		t.Fatalf("stored description = %q, want %q", repo.description[4], "buy oat milk")
	}
}

func TestCycleStatusAdvancesStatus(t *testing.T) {
	repo := &fakeRepo{}
	tk := task.Task{ID: 2, Description: "write report", Status: task.StatusToDo}

	msg := CycleStatus(repo, tk)()

	saved, ok := msg.(TaskSavedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want TaskSavedMsg", msg)
	}
	if repo.statuses[2] != task.StatusInProgress {
		t.Fatalf("status = %v, want %v", repo.statuses[2], task.StatusInProgress)
	}
	if saved.Status != "Marked in progress: write report" {
		t.Fatalf("status line = %q, want %q", saved.Status, "Marked in progress: write report")
	}
}

func TestCycleStatusWrapsFromDone(t *testing.T) {
	repo := &fakeRepo{}
	tk := task.Task{ID: 2, Description: "write report", Status: task.StatusDone}

	if _, ok := CycleStatus(repo, tk)().(TaskSavedMsg); !ok {
		t.Fatal("expected TaskSavedMsg")
	}
	if repo.statuses[2] != task.StatusToDo {
		t.Fatalf("status = %v, want %v", repo.statuses[2], task.StatusToDo)
	}
}

func TestCycleStatusReturnsErrMsg(t *testing.T) {
	boom := errors.New("boom")
	repo := &fakeRepo{failSet: boom}

	msg := CycleStatus(repo, task.Task{ID: 1})()

	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("msg type = %T, want ErrMsg", msg)
	}
	if !errors.Is(errMsg.Err, boom) {
		t.Fatalf("err = %v, want %v", errMsg.Err, boom)
	}
}

func TestCyclePriorityAdvancesPriority(t *testing.T) {
	repo := &fakeRepo{}
	tk := task.Task{ID: 3, Description: "review code", Priority: task.PriorityMedium}

	msg := CyclePriority(repo, tk)()

	if _, ok := msg.(TaskSavedMsg); !ok {
		t.Fatalf("msg type = %T, want TaskSavedMsg", msg)
	}
	if repo.priorities[3] != task.PriorityHigh {
		t.Fatalf("priority = %v, want %v", repo.priorities[3], task.PriorityHigh)
	}
}

func TestDeleteTaskReturnsTaskDeletedMsg(t *testing.T) {
	repo := &fakeRepo{}
	tk := task.Task{ID: 9, Description: "old chore"}

	msg := DeleteTask(repo, tk)()

	deleted, ok := msg.(TaskDeletedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want TaskDeletedMsg", msg)
	}
	if deleted.Description != "old chore" {
		t.Fatalf("description = %q, want %q", deleted.Description, "old chore")
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 9 {
		t.Fatalf("deleted ids = %v, want [9]", repo.deleted)
	}
}
