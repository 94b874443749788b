// Package terminal provides byte-at-a-time access to the controlling terminal
// and a scoped switch into non-canonical, no-echo mode.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrRawActive is returned by EnableRaw when a previous acquisition has not
// been restored yet.
var ErrRawActive = errors.New("terminal: raw mode already active")

// Terminal reads raw bytes from an input file and writes echo output.
type Terminal struct {
	in    *os.File
	out   io.Writer
	r     *bufio.Reader
	owned bool

	mu      sync.Mutex
	restore func() error
}

// New wraps in and out. The caller keeps ownership of both.
func New(in *os.File, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out, r: bufio.NewReader(in)}
}

// Open reads from stdin. When stdin is a terminal, /dev/tty is used for both
// directions instead so echo still reaches the user with stdout redirected.
// Piped stdin is read as is, without raw mode.
func Open() *Terminal {
	return openFor(os.Stdin, os.Stdout, "/dev/tty")
}

func openFor(stdin, stdout *os.File, ttyPath string) *Terminal {
	if !term.IsTerminal(int(stdin.Fd())) {
		return New(stdin, stdout)
	}
	tty, err := os.OpenFile(ttyPath, os.O_RDWR, 0)
	if err != nil {
		return New(stdin, stdout)
	}
	t := New(tty, tty)
	t.owned = true
	return t
}

// IsTerminal reports whether the input is an interactive terminal.
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd()))
}

// ReadByte blocks until one byte of input is available.
func (t *Terminal) ReadByte() (byte, error) {
	return t.r.ReadByte()
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// EnableRaw saves the terminal attributes and turns off canonical mode and
// echo. The returned function restores the saved attributes; calling it more
// than once is harmless. Non-terminal input gets a no-op restore.
func (t *Terminal) EnableRaw() (func() error, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.restore != nil {
		return nil, ErrRawActive
	}
	if !t.IsTerminal() {
		return func() error { return nil }, nil
	}
	restore, err := enableRawMode(int(t.in.Fd()), false)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	t.restore = restore
	return t.Reset, nil
}

// Reset restores the attributes saved by EnableRaw, if any. It is safe to call
// from a signal handler goroutine.
func (t *Terminal) Reset() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.restore == nil {
		return nil
	}
	err := t.restore()
	t.restore = nil
	if err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// Close restores the terminal and closes /dev/tty when Open acquired it.
func (t *Terminal) Close() error {
	err := t.Reset()
	if t.owned {
		if cerr := t.in.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
