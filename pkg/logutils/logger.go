// Package logutils constructs the application logger.
package logutils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// New returns a logger at the given level. When file is non-empty, JSON
// logs are written there (parent directories are created as needed).
// Otherwise logs go to stderr, pretty-printed when stderr is a terminal
// so they stay out of the report on stdout.
//
// The level parameter can be one of: debug, info, warn, error, fatal.
func New(level string, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, err
	}

	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})

	if file != "" {
		logsDir := filepath.Dir(file)
		if err := os.MkdirAll(logsDir, 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
		}

		osFile, err := os.Create(file)
		if err != nil {
			return zerolog.Logger{}, closer, err
		}
		closer = func() { _ = osFile.Close() }
		l = zerolog.New(osFile)
	} else if !term.IsTerminal(int(os.Stderr.Fd())) {
		l = zerolog.New(os.Stderr)
	}

	l = l.With().Timestamp().Logger().Level(lvl)

	return l, closer, nil
}
