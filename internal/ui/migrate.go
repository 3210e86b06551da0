package ui

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DaraJKong/my-todos/internal/db"
)

func (a *App) migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
		Long: `Inspect and change the database schema version.

The schema_migrations ledger records every applied migration, so up
applies only what is pending and down reverts only the most recent
migration.`,
	}

	cmd.AddCommand(a.migrateUpCmd())
	cmd.AddCommand(a.migrateDownCmd())
	cmd.AddCommand(a.migrateStatusCmd())

	return cmd
}

// openStore opens the database as it is on disk, without migrating it.
func (a *App) openStore() (*db.Store, error) {
	return db.Open(a.config.Storage.Path)
}

func (a *App) migrateUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			before, err := store.SchemaVersion()
			if err != nil {
				return fmt.Errorf("reading schema version: %w", err)
			}
			if err := store.Migrate(); err != nil {
				return err
			}

			records, err := store.MigrationRecords()
			if err != nil {
				return fmt.Errorf("reading migrations: %w", err)
			}
			applied := 0
			for _, rec := range records {
				if rec.Applied && rec.Version > before {
					fmt.Printf("Applied %03d_%s\n", rec.Version, rec.Name)
					applied++
				}
			}
			if applied == 0 {
				fmt.Println("Database is up to date.")
			}
			return nil
		},
	}
}

func (a *App) migrateDownCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Long: `Roll back the most recently applied migration.

Rolling back can lose data. Reverting the status and priority migration
keeps only done or not done: in-progress tasks come back as to do and
priorities are dropped.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			version, err := store.SchemaVersion()
			if err != nil {
				return fmt.Errorf("reading schema version: %w", err)
			}
			if version == 0 {
				fmt.Println("No applied migrations to roll back.")
				return nil
			}

			name := migrationName(store, version)
			if !yes {
				question := fmt.Sprintf("Roll back %s? This can lose data", name)
				if !promptYesNo(question) {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := store.Rollback(); err != nil {
				if errors.Is(err, db.ErrNoAppliedMigrations) {
					fmt.Println("No applied migrations to roll back.")
					return nil
				}
				return err
			}

			fmt.Printf("Rolled back %s\n", name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func (a *App) migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			version, err := store.SchemaVersion()
			if err != nil {
				return fmt.Errorf("reading schema version: %w", err)
			}
			records, err := store.MigrationRecords()
			if err != nil {
				return fmt.Errorf("reading migrations: %w", err)
			}

			fmt.Printf("Schema version: %d (latest: %d)\n\n", version, db.LatestVersion())

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "  VERSION\tNAME\tSTATE\tAPPLIED AT")
			for _, rec := range records {
				state, appliedAt := "pending", ""
				if rec.Applied {
					state = "applied"
					appliedAt = rec.AppliedAt.Format("2006-01-02 15:04")
				}
				fmt.Fprintf(w, "  %03d\t%s\t%s\t%s\n", rec.Version, rec.Name, state, appliedAt)
			}
			return w.Flush()
		},
	}
}

// migrationName resolves a version to its NNN_name label, falling back
// to the bare version number.
func migrationName(store *db.Store, version int) string {
	records, err := store.MigrationRecords()
	if err == nil {
		for _, rec := range records {
			if rec.Version == version {
				return fmt.Sprintf("%03d_%s", rec.Version, rec.Name)
			}
		}
	}
	return fmt.Sprintf("migration %d", version)
}
