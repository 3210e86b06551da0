package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNoAppliedMigrations is returned by Rollback when the ledger is empty.
var ErrNoAppliedMigrations = errors.New("no applied migrations to roll back")

// migration is one versioned schema change. The up and down steps are
// deliberately unguarded: running them against the wrong schema version
// must fail loudly, and the schema_migrations ledger is what guarantees
// each migration executes exactly once.
type migration struct {
	version int
	name    string
	up      func(*sql.Tx) error
	down    func(*sql.Tx) error
}

// migrations lists every schema migration in apply order.
var migrations = []migration{
	{version: 1, name: "create_todos", up: upCreateTodos, down: downCreateTodos},
	{version: 2, name: "task_status_and_priority", up: upTaskStatusAndPriority, down: downTaskStatusAndPriority},
}

// MigrationRecord describes one known migration and its applied state.
type MigrationRecord struct {
	Version   int
	Name      string
	Applied   bool
	AppliedAt time.Time
}

// Migrate applies every pending migration in version order.
//
// Each migration runs in its own transaction together with its ledger
// INSERT, so a failure leaves the database at the version it had before
// that migration. Calling Migrate on an up-to-date database is a no-op.
func Migrate(db *sql.DB) error {
	if err := ensureLedger(db); err != nil {
		return err
	}
	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}
	for _, m := range migrations {
		if _, ok := applied[m.version]; ok {
			continue
		}
		if err := apply(db, m); err != nil {
			return err
		}
	}
	return nil
}

// Rollback reverts the single most recently applied migration.
// Returns ErrNoAppliedMigrations when there is nothing to revert.
func Rollback(db *sql.DB) error {
	if err := ensureLedger(db); err != nil {
		return err
	}
	version, err := SchemaVersion(db)
	if err != nil {
		return err
	}
	if version == 0 {
		return ErrNoAppliedMigrations
	}

	m, ok := migrationByVersion(version)
	if !ok {
		return fmt.Errorf("no registered migration for applied version %d", version)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := m.down(tx); err != nil {
		return fmt.Errorf("rolling back migration %03d_%s: %w", m.version, m.name, err)
	}
	if _, err := tx.Exec(`DELETE FROM schema_migrations WHERE version = ?`, m.version); err != nil {
		return fmt.Errorf("clearing ledger for migration %03d_%s: %w", m.version, m.name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing rollback of %03d_%s: %w", m.version, m.name, err)
	}
	return nil
}

// SchemaVersion returns the highest applied migration version, 0 when none.
func SchemaVersion(db *sql.DB) (int, error) {
	if err := ensureLedger(db); err != nil {
		return 0, err
	}
	var v sql.NullInt64
	if err := db.QueryRow(`SELECT MAX(version) FROM schema_migrations`).Scan(&v); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return int(v.Int64), nil
}

// LatestVersion returns the highest version the registry knows about.
func LatestVersion() int {
	return migrations[len(migrations)-1].version
}

// MigrationRecords returns every registered migration with its applied state,
// in version order.
func MigrationRecords(db *sql.DB) ([]MigrationRecord, error) {
	if err := ensureLedger(db); err != nil {
		return nil, err
	}
	applied, err := appliedVersions(db)
	if err != nil {
		return nil, err
	}

	records := make([]MigrationRecord, 0, len(migrations))
	for _, m := range migrations {
		rec := MigrationRecord{Version: m.version, Name: m.name}
		if at, ok := applied[m.version]; ok {
			rec.Applied = true
			rec.AppliedAt = at
		}
		records = append(records, rec)
	}
	return records, nil
}

func apply(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := m.up(tx); err != nil {
		return fmt.Errorf("applying migration %03d_%s: %w", m.version, m.name, err)
	}
	appliedAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.Exec(
		`INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)`,
		m.version, m.name, appliedAt,
	); err != nil {
		return fmt.Errorf("recording migration %03d_%s: %w", m.version, m.name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration %03d_%s: %w", m.version, m.name, err)
	}
	return nil
}

func ensureLedger(db *sql.DB) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		name       TEXT NOT NULL,
		applied_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}
	return nil
}

func appliedVersions(db *sql.DB) (map[int]time.Time, error) {
	rows, err := db.Query(`SELECT version, applied_at FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("reading schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]time.Time)
	for rows.Next() {
		var (
			version   int
			appliedAt string
		)
		if err := rows.Scan(&version, &appliedAt); err != nil {
			return nil, fmt.Errorf("scanning schema_migrations row: %w", err)
		}
		at, err := time.Parse(time.RFC3339, appliedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing applied_at for version %d: %w", version, err)
		}
		applied[version] = at
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schema_migrations: %w", err)
	}
	return applied, nil
}

func migrationByVersion(version int) (migration, bool) {
	for _, m := range migrations {
		if m.version == version {
			return m, true
		}
	}
	return migration{}, false
}
