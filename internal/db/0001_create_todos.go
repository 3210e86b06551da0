package db

import (
	"database/sql"
	"fmt"
)

// upCreateTodos creates the original todos table: a plain checklist with
// a nullable boolean done flag. Rows written before the flag existed in
// the UI carry NULL rather than FALSE.
func upCreateTodos(tx *sql.Tx) error {
	const schema = `
	CREATE TABLE todos (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		description TEXT NOT NULL,
		done        BOOLEAN
	)`
	if _, err := tx.Exec(schema); err != nil {
		return fmt.Errorf("creating todos table: %w", err)
	}
	return nil
}

func downCreateTodos(tx *sql.Tx) error {
	if _, err := tx.Exec(`DROP TABLE todos`); err != nil {
		return fmt.Errorf("dropping todos table: %w", err)
	}
	return nil
}
