package lineedit

import "strings"

// DefaultCapacity is the number of bytes a line may hold unless the editor is
// configured otherwise.
const DefaultCapacity = 250

// Buffer is an append-only edit buffer with a hard capacity. The cursor is
// always at the end, so Len doubles as the cursor position.
type Buffer struct {
	data     []byte
	capacity int
}

// NewBuffer returns an empty buffer; a non-positive capacity selects
// DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{data: make([]byte, 0, capacity), capacity: capacity}
}

func (b *Buffer) Len() int { return len(b.data) }

func (b *Buffer) Cap() int { return b.capacity }

// Remaining is the number of bytes that can still be appended.
func (b *Buffer) Remaining() int { return b.capacity - len(b.data) }

func (b *Buffer) Full() bool { return len(b.data) >= b.capacity }

func (b *Buffer) String() string { return string(b.data) }

// AppendByte adds c at the end. It reports false when the buffer is full.
func (b *Buffer) AppendByte(c byte) bool {
	if b.Full() {
		return false
	}
	b.data = append(b.data, c)
	return true
}

// AppendString appends as much of s as fits and returns the part that was
// actually stored.
func (b *Buffer) AppendString(s string) string {
	if n := b.Remaining(); len(s) > n {
		s = s[:n]
	}
	b.data = append(b.data, s...)
	return s
}

// Backspace drops the last byte and zeroes its slot. It reports false on an
// empty buffer.
func (b *Buffer) Backspace() bool {
	if len(b.data) == 0 {
		return false
	}
	n := len(b.data) - 1
	b.data[n] = 0
	b.data = b.data[:n]
	return true
}

// Load zeroes the backing storage and replaces the content with s, truncated
// to capacity. It returns the stored text.
func (b *Buffer) Load(s string) string {
	b.Reset()
	return b.AppendString(s)
}

// Reset empties the buffer and zeroes the backing storage.
func (b *Buffer) Reset() {
	clear(b.data[:cap(b.data)])
	b.data = b.data[:0]
}

// Token returns the text after the last space, or the whole buffer when it
// holds no space.
func (b *Buffer) Token() string {
	s := b.String()
	if i := strings.LastIndexByte(s, ' '); i >= 0 {
		return s[i+1:]
	}
	return s
}
