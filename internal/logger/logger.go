// Package logger configures the application's structured logging.
//
// It uses zerolog: a console writer in development for readability, JSON
// everywhere else so log collectors get structured output. The error
// stack marshaler is installed so wrapped errors carry stack traces in
// error-level logs.
package logger

import (
	"os"

	"github.com/avelline/tally/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// New builds the root application logger from config. The log level falls
// back to info when the configured level cannot be parsed.
func New(cfg *config.Config) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(cfg.Primary.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Primary.Env == config.EnvDevelopment {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(level).With().
		Timestamp().
		Str("service", "tally").
		Str("env", cfg.Primary.Env).
		Logger()
}
