package jsonx

import "testing"

func TestWordListRoundTrip(t *testing.T) {
	b, err := Marshal([]string{"kitten", "kitchen"})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `["kitten","kitchen"]` {
		t.Fatalf("got %s", b)
	}
	var got []string
	if err := Unmarshal([]byte(`["java"]`), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "java" {
		t.Fatalf("got %v", got)
	}
}
