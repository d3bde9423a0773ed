// Package logging builds the charmbracelet/log logger shared by the CLI and
// the HTTP server.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// New creates a [log.Logger] writing to w at the given level. format is
// "text" or "json".
func New(w io.Writer, level, format string) (*log.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := log.Options{ReportTimestamp: true, Level: lvl}
	switch strings.ToLower(format) {
	case "", "text":
		opts.Formatter = log.TextFormatter
	case "json":
		opts.Formatter = log.JSONFormatter
	case "logfmt":
		opts.Formatter = log.LogfmtFormatter
	default:
		return nil, fmt.Errorf("invalid log format %q (expected text, json or logfmt)", format)
	}

	return log.NewWithOptions(w, opts), nil
}

