package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/avelline/tally/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Primary:  config.Primary{Env: config.EnvTest},
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "tally_test.sqlite")},
	}
}

func TestNewAppliesMigrations(t *testing.T) {
	log := zerolog.Nop()
	db, err := New(testConfig(t), &log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var tables []string
	err = db.DB.Select(&tables,
		"SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name")
	require.NoError(t, err)

	assert.Contains(t, tables, "todos")
	assert.Contains(t, tables, "counters")
	assert.Contains(t, tables, "schema_migrations")
}

func TestMigrateIsIdempotent(t *testing.T) {
	cfg := testConfig(t)
	log := zerolog.Nop()

	db, err := New(cfg, &log)
	require.NoError(t, err)

	var before int
	require.NoError(t, db.DB.Get(&before, "SELECT COUNT(1) FROM schema_migrations"))
	assert.Positive(t, before)
	require.NoError(t, db.Close())

	// Reopening the same file must not reapply anything.
	db, err = New(cfg, &log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(context.Background()))

	var after int
	require.NoError(t, db.DB.Get(&after, "SELECT COUNT(1) FROM schema_migrations"))
	assert.Equal(t, before, after)
}

func TestCounterNameUniqueConstraint(t *testing.T) {
	log := zerolog.Nop()
	db, err := New(testConfig(t), &log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.DB.Exec("INSERT INTO counters (name, value) VALUES ('c1', 0)")
	require.NoError(t, err)

	_, err = db.DB.Exec("INSERT INTO counters (name, value) VALUES ('c1', 5)")
	assert.Error(t, err)
}
