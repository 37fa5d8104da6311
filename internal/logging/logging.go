// Package logging builds the structured logger shared by the storefront
// binaries. Logs are JSON lines; the TUI writes them to a file because it
// owns the terminal.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Stderr is the path value that selects standard error as the sink.
const Stderr = "-"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a JSON logger writing to path at the given level. The returned
// Closer releases the log file and must be closed by the caller.
func New(path, level string) (*logrus.Logger, io.Closer, error) {
	lvl := logrus.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, nil, fmt.Errorf("parse log level: %w", err)
		}
		lvl = parsed
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(lvl)

	path = strings.TrimSpace(path)
	if path == "" || path == Stderr {
		logger.SetOutput(os.Stderr)
		return logger, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(file)
	return logger, file, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
