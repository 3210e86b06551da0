package db

import (
	"database/sql"
	"fmt"
)

// upTaskStatusAndPriority replaces the boolean done flag with a
// three-state status column and adds a priority column.
//
// Status encoding: 0 = to do, 1 = in progress, 2 = done. Only done rows
// carry information worth keeping, so done=TRUE backfills to 2 and both
// done=FALSE and done=NULL land on the default 0. Priority has no source
// data; every existing row gets the default 0 (low).
func upTaskStatusAndPriority(tx *sql.Tx) error {
	if _, err := tx.Exec(`ALTER TABLE todos ADD COLUMN status INTEGER NOT NULL DEFAULT 0`); err != nil {
		return fmt.Errorf("adding status column: %w", err)
	}
	if _, err := tx.Exec(`UPDATE todos SET status = 2 WHERE done = TRUE`); err != nil {
		return fmt.Errorf("backfilling status from done: %w", err)
	}
	if _, err := tx.Exec(`ALTER TABLE todos DROP COLUMN done`); err != nil {
		return fmt.Errorf("dropping done column: %w", err)
	}
	if _, err := tx.Exec(`ALTER TABLE todos ADD COLUMN priority INTEGER NOT NULL DEFAULT 0`); err != nil {
		return fmt.Errorf("adding priority column: %w", err)
	}
	if _, err := tx.Exec(`CREATE INDEX idx_todos_status ON todos(status)`); err != nil {
		return fmt.Errorf("creating status index: %w", err)
	}
	if _, err := tx.Exec(`CREATE INDEX idx_todos_priority ON todos(priority)`); err != nil {
		return fmt.Errorf("creating priority index: %w", err)
	}
	return nil
}

// downTaskStatusAndPriority restores the boolean schema. The reverse is
// lossy: in-progress collapses to done=FALSE and priorities are
// discarded.
func downTaskStatusAndPriority(tx *sql.Tx) error {
	if _, err := tx.Exec(`ALTER TABLE todos ADD COLUMN done BOOLEAN`); err != nil {
		return fmt.Errorf("re-adding done column: %w", err)
	}
	if _, err := tx.Exec(`UPDATE todos SET done = (status = 2)`); err != nil {
		return fmt.Errorf("backfilling done from status: %w", err)
	}
	// SQLite refuses to drop an indexed column, so the indexes go first.
	if _, err := tx.Exec(`DROP INDEX idx_todos_status`); err != nil {
		return fmt.Errorf("dropping status index: %w", err)
	}
	if _, err := tx.Exec(`DROP INDEX idx_todos_priority`); err != nil {
		return fmt.Errorf("dropping priority index: %w", err)
	}
	if _, err := tx.Exec(`ALTER TABLE todos DROP COLUMN status`); err != nil {
		return fmt.Errorf("dropping status column: %w", err)
	}
	if _, err := tx.Exec(`ALTER TABLE todos DROP COLUMN priority`); err != nil {
		return fmt.Errorf("dropping priority column: %w", err)
	}
	return nil
}
