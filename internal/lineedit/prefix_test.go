package lineedit

import "testing"

func TestPrefixLength(t *testing.T) {
	cases := []struct {
		text, prefix string
		want         int
	}{
		{"kitten", "", 0},
		{"", "", 0},
		{"kitten", "kit", 3},
		{"kitten", "kitten", 6},
		{"kitten", "kitchen", 0},
		{"kitten", "kittens", 0},
		{"kitten", "Kit", 0},
		{"kitten", "x", 0},
		{"minecraft", "minec", 5},
	}
	for _, c := range cases {
		if got := PrefixLength(c.text, c.prefix); got != c.want {
			t.Errorf("PrefixLength(%q, %q) = %d, want %d", c.text, c.prefix, got, c.want)
		}
	}
}
