package envfile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, text string) *Document {
	t.Helper()
	doc, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", text, err)
	}
	return doc
}

func TestLookup(t *testing.T) {
	doc := mustParse(t, "# A=1\n\nA=2\nB=3\nA=4")

	tests := []struct {
		key   string
		want  string
		found bool
	}{
		{"A", "2", true},
		{"B", "3", true},
		{"# A", "", false},
		{"C", "", false},
	}

	for _, tt := range tests {
		got, found := doc.Lookup(tt.key)
		if got != tt.want || found != tt.found {
			t.Errorf("Lookup(%q) = (%q, %v); want (%q, %v)", tt.key, got, found, tt.want, tt.found)
		}
	}
}

func TestHasKeyHasValue(t *testing.T) {
	doc := mustParse(t, "A=1\nC=\n# D=1\nE=\nE=5")

	tests := []struct {
		key      string
		hasKey   bool
		hasValue bool
	}{
		{"A", true, true},
		{"C", true, false},
		{"D", false, false},
		{"E", true, true},
		{"Z", false, false},
	}

	for _, tt := range tests {
		if got := doc.HasKey(tt.key); got != tt.hasKey {
			t.Errorf("HasKey(%q) = %v; want %v", tt.key, got, tt.hasKey)
		}
		if got := doc.HasValue(tt.key); got != tt.hasValue {
			t.Errorf("HasValue(%q) = %v; want %v", tt.key, got, tt.hasValue)
		}
	}
}

func TestPairs(t *testing.T) {
	doc := mustParse(t, "# c\nA=1\n\nB=2\nA=3\n")

	type kv struct{ K, V string }
	collect := func() []kv {
		var out []kv
		for k, v := range doc.Pairs() {
			out = append(out, kv{k, v})
		}
		return out
	}

	want := []kv{{"A", "1"}, {"B", "2"}, {"A", "3"}}
	if diff := cmp.Diff(want, collect()); diff != "" {
		t.Errorf("first traversal mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, collect()); diff != "" {
		t.Errorf("second traversal mismatch (-want +got):\n%s", diff)
	}

	var first string
	for k := range doc.Pairs() {
		first = k
		break
	}
	if first != "A" {
		t.Errorf("early break got %q, want A", first)
	}
}

func TestKeys(t *testing.T) {
	doc := mustParse(t, "B=1\nA=2\n# C=3\nB=4")
	if diff := cmp.Diff([]string{"B", "A"}, doc.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesIsCopy(t *testing.T) {
	doc := mustParse(t, "A=1")
	lines := doc.Lines()
	lines[0] = Pair{"A", "changed"}

	if v, _ := doc.Lookup("A"); v != "1" {
		t.Errorf("mutating Lines() result changed document: A=%q", v)
	}
}
