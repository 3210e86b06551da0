// Package db provides SQLite storage and schema migrations for tasks.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/DaraJKong/my-todos/internal/task"
)

// Store implements task.Repository using SQLite.
type Store struct {
	db *sql.DB
}

// Open opens the database at path without touching the schema.
// The migrate commands need to see the database exactly as it is on disk.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Single connection: SQLite allows one writer and the pragmas above
	// apply per connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return &Store{db: db}, nil
}

// New opens the database at path and applies any pending migrations.
func New(path string) (*Store, error) {
	s, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := Migrate(s.db); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Migrate applies every pending migration.
func (s *Store) Migrate() error {
	return Migrate(s.db)
}

// Rollback reverts the most recently applied migration.
func (s *Store) Rollback() error {
	return Rollback(s.db)
}

// SchemaVersion returns the highest applied migration version.
func (s *Store) SchemaVersion() (int, error) {
	return SchemaVersion(s.db)
}

// MigrationRecords returns every registered migration with its applied state.
func (s *Store) MigrationRecords() ([]MigrationRecord, error) {
	return MigrationRecords(s.db)
}

// CreateTask inserts a new task and returns it with its assigned ID.
func (s *Store) CreateTask(ctx context.Context, description string, priority task.Priority) (task.Task, error) {
	t, err := task.New(description)
	if err != nil {
		return task.Task{}, err
	}
	if !priority.IsValid() {
		return task.Task{}, fmt.Errorf("invalid priority: %d", priority)
	}
	t.Priority = priority

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO todos (description, status, priority) VALUES (?, ?, ?)`,
		t.Description, t.Status, t.Priority,
	)
	if err != nil {
		return task.Task{}, fmt.Errorf("inserting task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return task.Task{}, fmt.Errorf("getting last insert id: %w", err)
	}
	t.ID = id

	return t, nil
}

// GetTask retrieves a task by ID.
func (s *Store) GetTask(ctx context.Context, id int64) (task.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, description, status, priority FROM todos WHERE id = ?`, id)

	var t task.Task
	if err := row.Scan(&t.ID, &t.Description, &t.Status, &t.Priority); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("scanning task: %w", err)
	}
	return t, nil
}

// ListTasks returns the tasks passing the filter in the given order.
// Filtering and ordering both happen in SQL.
func (s *Store) ListTasks(ctx context.Context, f task.Filter, so task.Sort) ([]task.Task, error) {
	query := `SELECT id, description, status, priority FROM todos`
	var args []any

	switch f {
	case task.FilterActive:
		query += ` WHERE status != ?`
		args = append(args, task.StatusDone)
	case task.FilterCompleted:
		query += ` WHERE status = ?`
		args = append(args, task.StatusDone)
	}

	// Mirrors task.Sort.Less: status ascends, priority descends, newest
	// id first among equals.
	switch so {
	case task.SortPriority:
		query += ` ORDER BY priority DESC, status ASC, id DESC`
	default:
		query += ` ORDER BY status ASC, priority DESC, id DESC`
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(&t.ID, &t.Description, &t.Status, &t.Priority); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// UpdateDescription rewrites a task description in place.
func (s *Store) UpdateDescription(ctx context.Context, id int64, description string) error {
	t, err := task.New(description)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE todos SET description = ? WHERE id = ?`, t.Description, id)
	if err != nil {
		return fmt.Errorf("updating description: %w", err)
	}
	return ensureFound(result)
}

// SetStatus updates a task's status.
func (s *Store) SetStatus(ctx context.Context, id int64, st task.Status) error {
	if !st.IsValid() {
		return fmt.Errorf("invalid status: %d", st)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE todos SET status = ? WHERE id = ?`, st, id)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	return ensureFound(result)
}

// SetPriority updates a task's priority.
func (s *Store) SetPriority(ctx context.Context, id int64, p task.Priority) error {
	if !p.IsValid() {
		return fmt.Errorf("invalid priority: %d", p)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE todos SET priority = ? WHERE id = ?`, p, id)
	if err != nil {
		return fmt.Errorf("updating priority: %w", err)
	}
	return ensureFound(result)
}

// DeleteTask removes a task permanently.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return ensureFound(result)
}

// CountByStatus returns task totals per status.
func (s *Store) CountByStatus(ctx context.Context) (task.Counts, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM todos GROUP BY status`)
	if err != nil {
		return task.Counts{}, fmt.Errorf("counting tasks: %w", err)
	}
	defer rows.Close()

	var c task.Counts
	for rows.Next() {
		var (
			st task.Status
			n  int
		)
		if err := rows.Scan(&st, &n); err != nil {
			return task.Counts{}, fmt.Errorf("scanning count: %w", err)
		}
		switch st {
		case task.StatusToDo:
			c.ToDo = n
		case task.StatusInProgress:
			c.InProgress = n
		case task.StatusDone:
			c.Done = n
		}
	}
	if err := rows.Err(); err != nil {
		return task.Counts{}, fmt.Errorf("iterating counts: %w", err)
	}
	return c, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ensureFound translates a zero-row update into ErrTaskNotFound.
func ensureFound(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}
