package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the named level (debug|info|warn|error).
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	l := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "vt",
		ReportTimestamp: lvl == log.DebugLevel,
	})
	return l, nil
}
