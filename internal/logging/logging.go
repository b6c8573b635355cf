// Package logging builds the structured loggers used by the CLI.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// New creates a timestamped logger writing to w at the named level
// ("debug", "info", "warn", "error", "fatal").
// Output is human-readable on a terminal and JSON otherwise.
func New(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: cannot parse level %q: %w", level, err)
	}

	formatter := log.JSONFormatter
	if IsTerminal(w) {
		formatter = log.TextFormatter
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
		Formatter:       formatter,
	}), nil
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
