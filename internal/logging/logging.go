// Package logging builds the application logger. The terminal belongs to the
// TUI, so records only ever go to a file.
package logging

import (
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// New returns a logger writing to path, or a discarding logger when path is
// empty. The returned close function is always non-nil.
func New(path string, debug bool) (*slog.Logger, func() error, error) {
	if strings.TrimSpace(path) == "" {
		return Discard(), func() error { return nil }, nil
	}
	f, err := tea.LogToFile(path, "tasklist")
	if err != nil {
		return nil, nil, err
	}
	return NewWithWriter(f, debug), f.Close, nil
}

func NewWithWriter(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
