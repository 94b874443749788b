package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/inconshreveable/log15"

	"github.com/flowave-io/termline/internal/candidates"
	"github.com/flowave-io/termline/internal/config"
	"github.com/flowave-io/termline/internal/lineedit"
	"github.com/flowave-io/termline/internal/monitor"
	"github.com/flowave-io/termline/internal/terminal"
	"github.com/flowave-io/termline/pkg/log"
)

// ExitInterrupted is the process status after SIGINT or SIGTERM.
const ExitInterrupted = 130

// Console repeatedly reads lines with completion against the configured
// candidates, committing every non-empty line to history. Candidates are
// reloaded between lines when a watched source changes.
type Console struct {
	cfg     *config.Config
	term    lineedit.Terminal
	history *lineedit.History
	editor  *lineedit.Editor
	words   []string
	refresh chan struct{}
	watcher io.Closer
	log     log15.Logger
}

func NewConsole(cfg *config.Config, t lineedit.Terminal) *Console {
	return &Console{
		cfg:     cfg,
		term:    t,
		history: lineedit.NewHistory(),
		refresh: make(chan struct{}, 1),
		log:     log.New("component", "console"),
	}
}

func (c *Console) History() *lineedit.History { return c.history }

// Words returns the candidates currently offered by TAB.
func (c *Console) Words() []string { return c.words }

// RunConsole drives a Console on the process terminal. The terminal mode is
// restored on return and when the process is interrupted.
func RunConsole(ctx context.Context, cfg *config.Config) error {
	t := terminal.Open()
	defer func() { _ = t.Close() }()
	stop := restoreOnSignal(t)
	defer stop()
	if !t.IsTerminal() {
		log.Debug("input is not a terminal, raw mode disabled")
	}
	c := NewConsole(cfg, t)
	defer c.Close()
	return c.Run(ctx)
}

// Run loops until the user types exit or quit, input ends or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	c.reload(ctx, false)
	if c.cfg.Watch {
		c.startWatch()
	}
	defer c.stopWatch()

	for ctx.Err() == nil {
		c.drainRefresh(ctx)
		line, err := c.lineEditor().ReadLine(c.cfg.Prompt, c.words)
		if _, werr := io.WriteString(c.term, "\n"); werr != nil && err == nil {
			err = werr
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.log.Debug("input closed")
				return nil
			}
			return err
		}
		switch strings.TrimSpace(line) {
		case "exit", "quit":
			return nil
		}
		if line != "" {
			c.history.Append(line)
		}
	}
	return nil
}

// lineEditor returns the editor for the next line, rebuilt only when a reload
// changed the capacity.
func (c *Console) lineEditor() *lineedit.Editor {
	if c.editor == nil || c.editor.Capacity() != c.cfg.Capacity {
		c.editor = lineedit.NewEditor(c.term,
			lineedit.WithCapacity(c.cfg.Capacity),
			lineedit.WithHistory(c.history),
		)
	}
	return c.editor
}

// Close stops watching and releases the history.
func (c *Console) Close() {
	c.stopWatch()
	c.history.Release()
}

// drainRefresh reloads once if any change notification is pending.
func (c *Console) drainRefresh(ctx context.Context) {
	select {
	case <-c.refresh:
	default:
		return
	}
	c.reload(ctx, true)
}

// reload resolves the candidates again. With reread set, a config file is
// parsed again first; a broken file keeps the previous settings.
func (c *Console) reload(ctx context.Context, reread bool) {
	if reread && c.cfg.Path != "" {
		cfg, err := config.Load(c.cfg.Path)
		if err != nil {
			c.log.Warn("config reload failed, keeping previous settings", "err", err)
		} else {
			c.cfg = cfg
			if cfg.Watch {
				c.startWatch()
			} else {
				c.stopWatch()
			}
		}
	}
	words, err := candidates.Resolve(ctx, c.cfg.Candidates, c.cfg.CacheDir)
	if err != nil {
		c.log.Warn("some candidate sources failed", "err", err)
	}
	c.words = words
	c.log.Debug("candidates loaded", "count", len(words))
}

func (c *Console) watchPaths() []string {
	var paths []string
	if c.cfg.Path != "" {
		paths = append(paths, c.cfg.Path)
	}
	return append(paths, candidates.LocalPaths(c.cfg.Candidates)...)
}

func (c *Console) startWatch() {
	c.stopWatch()
	paths := c.watchPaths()
	if len(paths) == 0 {
		return
	}
	w, err := monitor.Watch(paths, c.refresh)
	if err != nil {
		c.log.Warn("change watching disabled", "err", err)
		return
	}
	c.watcher = w
}

func (c *Console) stopWatch() {
	if c.watcher == nil {
		return
	}
	if err := c.watcher.Close(); err != nil {
		c.log.Debug("close watcher", "err", err)
	}
	c.watcher = nil
}

// restoreOnSignal resets t and exits when SIGINT or SIGTERM arrives. Call
// the returned function to stop listening.
func restoreOnSignal(t *terminal.Terminal) func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigCh:
			if err := t.Reset(); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
			log.Warn("interrupted", "signal", sig.String())
			os.Exit(ExitInterrupted)
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
