package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"
)

// Embed all SQL files under migrations/ at compile time so the binary
// carries its schema and does not depend on the filesystem at runtime.
//
//go:embed migrations/*.sql
var migrations embed.FS

const migrationTable = "schema_migrations"

// Migrate applies embedded migrations at most once each, recording
// applied files in the schema_migrations table.
func (db *Database) Migrate(ctx context.Context) error {
	entries, err := fs.ReadDir(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("reading migrations dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	createSQL := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
);
`, migrationTable)
	if _, err := db.DB.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("ensuring migration table: %w", err)
	}

	applied := 0
	for _, file := range files {
		done, err := db.isApplied(ctx, file)
		if err != nil {
			return fmt.Errorf("checking migration %s: %w", file, err)
		}
		if done {
			continue
		}

		content, err := fs.ReadFile(migrations, "migrations/"+file)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", file, err)
		}

		tx, err := db.DB.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("beginning migration %s: %w", file, err)
		}
		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("applying migration %s: %w", file, err)
		}
		recordSQL := fmt.Sprintf("INSERT INTO %s (name, applied_at) VALUES (?, ?)", migrationTable)
		if _, err := tx.ExecContext(ctx, recordSQL, file, time.Now().UTC().UnixMilli()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("recording migration %s: %w", file, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %s: %w", file, err)
		}
		applied++
	}

	if applied == 0 {
		db.log.Debug().Msg("database schema up to date")
	} else {
		db.log.Info().Int("applied", applied).Msg("migrated database schema")
	}
	return nil
}

func (db *Database) isApplied(ctx context.Context, name string) (bool, error) {
	var count int
	query := fmt.Sprintf("SELECT COUNT(1) FROM %s WHERE name = ?", migrationTable)
	if err := db.DB.GetContext(ctx, &count, query, name); err != nil {
		return false, err
	}
	return count > 0, nil
}
