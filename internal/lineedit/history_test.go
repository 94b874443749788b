package lineedit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHistory_AppendKeepsOrderAndDuplicates(t *testing.T) {
	h := NewHistory()
	for _, l := range []string{"a", "b", "a"} {
		h.Append(l)
	}
	if h.Len() != 3 {
		t.Fatalf("len %d", h.Len())
	}
	if diff := cmp.Diff([]string{"a", "b", "a"}, h.Entries()); diff != "" {
		t.Fatalf("entries (-want +got):\n%s", diff)
	}
	if h.Get(1) != "b" {
		t.Fatalf("Get(1) = %q", h.Get(1))
	}
}

func TestHistory_EntriesIsACopy(t *testing.T) {
	h := NewHistory()
	h.Append("a")
	e := h.Entries()
	e[0] = "mutated"
	if h.Get(0) != "a" {
		t.Fatalf("history entry changed through Entries copy")
	}
}

func TestHistory_Release(t *testing.T) {
	h := NewHistory()
	h.Append("a")
	h.Release()
	if h.Len() != 0 {
		t.Fatalf("len %d after release", h.Len())
	}
	h.Append("b")
	if h.Get(0) != "b" {
		t.Fatalf("history unusable after release")
	}
}
