package log

import (
	"fmt"
	"io"
	"os"

	"github.com/inconshreveable/log15"
)

var (
	root = log15.New("app", "termline")

	stderr io.Writer = os.Stderr
)

func init() {
	root.SetHandler(log15.LvlFilterHandler(log15.LvlInfo, log15.StreamHandler(stderr, log15.LogfmtFormat())))
}

// Configure redirects all loggers to path and drops records below level.
// Without a path records go to stderr, unless interactive is set: stderr then
// shares the screen with the edited line and records are discarded.
func Configure(path, level string, interactive bool) error {
	if level == "" {
		level = "info"
	}
	lvl, err := log15.LvlFromString(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	h := log15.StreamHandler(stderr, log15.LogfmtFormat())
	switch {
	case path != "":
		fh, err := log15.FileHandler(path, log15.LogfmtFormat())
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		h = fh
	case interactive:
		h = log15.DiscardHandler()
	}
	root.SetHandler(log15.LvlFilterHandler(lvl, h))
	return nil
}

// Discard silences every logger derived from this package.
func Discard() {
	root.SetHandler(log15.DiscardHandler())
}

// New returns a child logger carrying ctx on every record.
func New(ctx ...any) log15.Logger {
	return root.New(ctx...)
}

func Debug(msg string, ctx ...any) { root.Debug(msg, ctx...) }

func Info(msg string, ctx ...any) { root.Info(msg, ctx...) }

func Warn(msg string, ctx ...any) { root.Warn(msg, ctx...) }

func Error(msg string, ctx ...any) { root.Error(msg, ctx...) }

// Fatal logs at crit level and exits with status 1.
func Fatal(msg string, ctx ...any) {
	root.Crit(msg, ctx...)
	os.Exit(1)
}
