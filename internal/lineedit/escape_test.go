package lineedit

import "testing"

func decode(t *testing.T, seq string) Key {
	t.Helper()
	var d escapeDecoder
	d.Start()
	for i := 0; i < len(seq); i++ {
		if !d.Active() {
			t.Fatalf("decoder idle before byte %d of %q", i, seq)
		}
		key, done := d.Feed(seq[i])
		if done {
			if i != len(seq)-1 {
				t.Fatalf("sequence %q finished early at byte %d", seq, i)
			}
			if d.Active() {
				t.Fatalf("decoder still active after %q", seq)
			}
			return key
		}
	}
	t.Fatalf("sequence %q not finished", seq)
	return KeyNone
}

func TestEscapeDecoder(t *testing.T) {
	cases := map[string]Key{
		"[A": KeyUp,
		"[B": KeyDown,
		"[C": KeyRight,
		"[D": KeyLeft,
		"OA": KeyUp,
		"OB": KeyDown,
		"[Z": KeyUnknown,
		"xA": KeyUnknown,
		"ab": KeyUnknown,
	}
	for seq, want := range cases {
		if got := decode(t, seq); got != want {
			t.Errorf("decode(%q) = %v, want %v", seq, got, want)
		}
	}
}

func TestKeyString(t *testing.T) {
	for k, want := range map[Key]string{KeyUp: "up", KeyLeft: "left", KeyUnknown: "unknown", Key(42): "unknown"} {
		if got := k.String(); got != want {
			t.Errorf("Key(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
