package ccslog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a human-readable console logger at level (e.g.
// zerolog.InfoLevel), writing to w. Pass os.Stderr for CLI use.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// NewJSON returns a newline-delimited-JSON logger at level, writing to w.
func NewJSON(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Default is a package-level convenience logger at info level to stderr,
// for callers that want one; no package in this module logs through it.
var Default = New(os.Stderr, zerolog.InfoLevel)
