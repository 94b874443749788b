package lineedit

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/inconshreveable/log15"
)

const (
	keyTab       = '\t'
	keyEscape    = 0x1b
	keyDelete    = 0x7f
	keyBackspace = 0x08
)

// session is the state of a single ReadLine call.
type session struct {
	prompt     string
	candidates []string
	history    *History
	buf        *Buffer
	nav        int // history index; history.Len() means the line being typed
	esc        escapeDecoder
	in         io.ByteReader
	out        *bufio.Writer
	log        log15.Logger
	ed         *Editor
	skipLF     bool
}

func newSession(e *Editor, prompt string, candidates []string) *session {
	return &session{
		prompt:     prompt,
		candidates: candidates,
		history:    e.history,
		buf:        NewBuffer(e.capacity),
		nav:        e.history.Len(),
		in:         e.term,
		out:        bufio.NewWriter(e.term),
		log:        e.log.New("session", uuid.NewString()),
		ed:         e,
		skipLF:     e.afterCR,
	}
}

func (s *session) run() (string, error) {
	fmt.Fprintf(s.out, "%s  ", s.prompt)
	if err := s.out.Flush(); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	s.log.Debug("reading line", "capacity", s.buf.Cap(), "history", s.history.Len(), "candidates", len(s.candidates))

	s.ed.afterCR = false
	for !s.buf.Full() {
		c, err := s.in.ReadByte()
		if err != nil {
			s.log.Debug("read stopped", "err", err, "len", s.buf.Len())
			return s.buf.String(), fmt.Errorf("read input: %w", err)
		}
		if s.skipLF {
			s.skipLF = false
			if c == '\n' {
				continue
			}
		}
		done := s.dispatch(c)
		// echo for this byte must reach the terminal before the next read
		if err := s.out.Flush(); err != nil {
			return s.buf.String(), fmt.Errorf("write echo: %w", err)
		}
		if done {
			s.ed.afterCR = c == '\r'
			s.log.Debug("line accepted", "len", s.buf.Len())
			return s.buf.String(), nil
		}
	}
	s.log.Debug("buffer full", "len", s.buf.Len())
	return s.buf.String(), nil
}

// dispatch handles one input byte and reports whether the line is finished.
// Output goes to the buffered writer, whose errors surface on Flush.
func (s *session) dispatch(c byte) bool {
	if s.esc.Active() {
		if key, done := s.esc.Feed(c); done {
			s.navigate(key)
		}
		return false
	}
	switch c {
	case '\n', '\r':
		return true
	case keyTab:
		comp, _ := Complete(s.out, s.prompt, s.buf, s.candidates)
		s.log.Debug("completion", "token", comp.Token, "matches", len(comp.Matches), "suffix", comp.Suffix)
	case keyDelete, keyBackspace:
		if s.buf.Backspace() {
			s.out.WriteString("\b \b")
		}
	case keyEscape:
		s.esc.Start()
	default:
		if s.buf.AppendByte(c) {
			s.out.WriteByte(c)
		}
	}
	return false
}

func (s *session) navigate(key Key) {
	switch key {
	case KeyUp:
		if s.nav == 0 {
			return
		}
		s.moveHistory(s.nav - 1)
	case KeyDown:
		if s.nav+1 >= s.history.Len() {
			return
		}
		s.moveHistory(s.nav + 1)
	default:
		s.log.Debug("escape sequence discarded", "key", key)
	}
}

// moveHistory replaces the displayed line with history entry i.
func (s *session) moveHistory(i int) {
	erase(s.out, s.buf.Len())
	line := s.buf.Load(s.history.Get(i))
	s.out.WriteString(line)
	s.nav = i
	s.log.Debug("history", "index", i, "len", len(line))
}

// erase blanks the last n echoed characters and leaves the cursor where the
// first of them was.
func erase(w io.StringWriter, n int) {
	if n <= 0 {
		return
	}
	back := strings.Repeat("\b", n)
	w.WriteString(back)
	w.WriteString(strings.Repeat(" ", n))
	w.WriteString(back)
}
