package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// MigrateUp brings the kv schema to the latest version. Safe to run on
// every open; the statements are written to be re-runnable.
func MigrateUp(db *sql.DB) error {
	return runMigrations(db, ".up.sql", sort.Strings)
}

// MigrateDown tears the schema back down, newest migration first.
func MigrateDown(db *sql.DB) error {
	return runMigrations(db, ".down.sql", func(names []string) {
		sort.Sort(sort.Reverse(sort.StringSlice(names)))
	})
}

func runMigrations(db *sql.DB, suffix string, order func([]string)) error {
	names, err := fs.Glob(migrationFS, "migrations/*"+suffix)
	if err != nil {
		return fmt.Errorf("storage: list migrations: %w", err)
	}
	order(names)
	for _, name := range names {
		stmt, err := migrationFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("storage: read %s: %w", name, err)
		}
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("storage: begin %s: %w", name, err)
		}
		if _, err := tx.Exec(string(stmt)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("storage: apply %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("storage: commit %s: %w", name, err)
		}
	}
	return nil
}
