package lineedit

import (
	"fmt"
	"io"
)

// Completion describes the outcome of one TAB press.
type Completion struct {
	Token   string
	Matches []string
	// Suffix is the text appended to the buffer; empty unless exactly one
	// candidate matched.
	Suffix string
}

// Complete matches the token after the last space in buf against candidates.
// A single match has its missing suffix appended to buf (bounded by the
// remaining capacity) and echoed to w. Several matches are listed on a new
// line, after which the prompt and buffer are redrawn; buf is left alone.
func Complete(w io.Writer, prompt string, buf *Buffer, candidates []string) (Completion, error) {
	var c Completion
	if len(candidates) == 0 {
		return c, nil
	}
	c.Token = buf.Token()
	matchLen := 0
	for _, cand := range candidates {
		if n := PrefixLength(cand, c.Token); n != 0 {
			c.Matches = append(c.Matches, cand)
			matchLen = n
		}
	}
	switch len(c.Matches) {
	case 0:
		return c, nil
	case 1:
		c.Suffix = buf.AppendString(c.Matches[0][matchLen:])
		if c.Suffix == "" {
			return c, nil
		}
		_, err := io.WriteString(w, c.Suffix)
		return c, err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return c, err
	}
	for _, m := range c.Matches {
		if _, err := fmt.Fprintf(w, "\t%s\t", m); err != nil {
			return c, err
		}
	}
	_, err := fmt.Fprintf(w, "\n%s  %s", prompt, buf)
	return c, err
}
