package lineedit

// History is the ordered list of lines accepted so far. Entries are stored by
// value and never modified; duplicates are kept.
type History struct {
	entries []string
}

func NewHistory() *History { return &History{} }

// Append adds line to the end of the history.
func (h *History) Append(line string) {
	h.entries = append(h.entries, line)
}

// Get returns entry i. Callers keep 0 <= i < Len(); anything else panics.
func (h *History) Get(i int) string {
	return h.entries[i]
}

func (h *History) Len() int { return len(h.entries) }

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Release drops every entry.
func (h *History) Release() {
	clear(h.entries)
	h.entries = nil
}
