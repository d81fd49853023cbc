package cliconfig

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().
		Level(zerolog.WarnLevel)
}

// Logger returns the CLI logger. It writes to stderr at warn level until the
// caller raises or lowers it with Level.
func Logger() zerolog.Logger {
	return logger
}
