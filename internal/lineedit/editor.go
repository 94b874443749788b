// Package lineedit implements a small interactive line editor: byte-by-byte
// input with echo, TAB completion against a word list, arrow-key history and
// destructive backspace.
package lineedit

import (
	"io"

	"github.com/inconshreveable/log15"

	"github.com/flowave-io/termline/pkg/log"
)

// Terminal is the raw input source and echo sink used by an Editor.
type Terminal interface {
	io.ByteReader
	io.Writer
	// EnableRaw switches off canonical mode and echo and returns the function
	// that restores the previous mode.
	EnableRaw() (restore func() error, err error)
}

// Editor reads lines from a Terminal. It owns the History that arrow keys
// navigate; callers decide which accepted lines go into it.
type Editor struct {
	term     Terminal
	history  *History
	capacity int
	log      log15.Logger
	// afterCR is set when the last line ended on '\r', so a '\n' opening
	// the next read completes a CRLF instead of entering an empty line.
	afterCR bool
}

type Option func(*Editor)

// WithCapacity limits lines to n bytes.
func WithCapacity(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.capacity = n
		}
	}
}

// WithHistory shares h instead of starting with an empty history.
func WithHistory(h *History) Option {
	return func(e *Editor) {
		if h != nil {
			e.history = h
		}
	}
}

func WithLogger(l log15.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

func NewEditor(t Terminal, opts ...Option) *Editor {
	e := &Editor{
		term:     t,
		history:  NewHistory(),
		capacity: DefaultCapacity,
		log:      log.New("component", "lineedit"),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *Editor) History() *History { return e.history }

func (e *Editor) Capacity() int { return e.capacity }

// ReadLine shows prompt and edits one line until Enter is pressed or the
// buffer reaches capacity. The terminal is in raw mode only for the duration
// of the call. An error is returned only when the terminal fails, together
// with whatever had been typed.
func (e *Editor) ReadLine(prompt string, candidates []string) (line string, err error) {
	restore, err := e.term.EnableRaw()
	if err != nil {
		return "", err
	}
	defer func() {
		if rerr := restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	return newSession(e, prompt, candidates).run()
}
