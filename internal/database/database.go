// Package database establishes the connection to the sqlite store.
//
// It owns the store lifecycle: open the file, verify connectivity, apply
// the embedded schema migrations, and close the handle on shutdown. The
// handle is constructed once at startup and injected into the repository
// layer; nothing in the application reaches for a global connection.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/avelline/tally/internal/config"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know
	// about out of the box. sqlite uses ? placeholders.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Database wraps the sqlx handle and a logger for lifecycle logs.
type Database struct {
	DB  *sqlx.DB
	log *zerolog.Logger
}

// PingTimeout is the number of seconds to wait for the initial ping
// before considering the store unreachable.
const PingTimeout = 10

// New opens the sqlite store at the configured path, pings it, and
// applies pending schema migrations.
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	dsn := cfg.Database.Path + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// sqlite serializes writers; a single connection avoids busy errors
	// between concurrent requests sharing the one file.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), PingTimeout*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	database := &Database{
		DB:  db,
		log: logger,
	}

	if err := database.Migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info().Str("path", cfg.Database.Path).Msg("connected to the database")

	return database, nil
}

// Close closes the database handle.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection")
	return db.DB.Close()
}
