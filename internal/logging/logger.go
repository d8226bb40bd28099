// Package logging sets up the log pipeline: JSON to stdout from boot,
// then fanned out to the system_logs table once the database is up.
// ERROR+ records are batched to PostgreSQL and purged after 30 days.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the stdout JSON logger. Called before the database
// connects; main re-wires the default logger with the DB fan-out later.
func Setup() {
	slog.SetDefault(slog.New(StdoutHandler()))
}

// StdoutHandler is the stdout half of the pipeline, shared by Setup and
// the post-connect fan-out so both stages log identically.
func StdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}
