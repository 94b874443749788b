package lineedit

// Key is a decoded escape sequence.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyUnknown
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	}
	return "unknown"
}

type escState int

const (
	escIdle escState = iota
	escExpectBracket
	escExpectKey
)

// escapeDecoder consumes the two bytes that follow ESC. Both bytes are always
// swallowed; only CSI ("[") and SS3 ("O") introducers followed by A-D decode
// to arrow keys.
type escapeDecoder struct {
	state   escState
	bracket bool
}

// Active reports whether the decoder is inside a sequence.
func (d *escapeDecoder) Active() bool { return d.state != escIdle }

// Start is called when ESC has been read.
func (d *escapeDecoder) Start() {
	d.state = escExpectBracket
	d.bracket = false
}

// Feed advances the decoder by one byte. done is true once the sequence is
// complete, with key holding the result.
func (d *escapeDecoder) Feed(c byte) (key Key, done bool) {
	switch d.state {
	case escExpectBracket:
		d.bracket = c == '[' || c == 'O'
		d.state = escExpectKey
		return KeyNone, false
	case escExpectKey:
		d.state = escIdle
		if !d.bracket {
			return KeyUnknown, true
		}
		switch c {
		case 'A':
			return KeyUp, true
		case 'B':
			return KeyDown, true
		case 'C':
			return KeyRight, true
		case 'D':
			return KeyLeft, true
		}
		return KeyUnknown, true
	}
	return KeyNone, false
}
