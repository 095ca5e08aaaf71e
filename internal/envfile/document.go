package envfile

import (
	"iter"
	"slices"
)

// Document is the ordered sequence of lines of one env file, plus the path it
// is saved to and whether it changed since it was loaded or created.
type Document struct {
	lines    []Line
	Path     string
	modified bool
}

// New returns an empty Document bound to path. Nothing is read from disk.
func New(path string) *Document {
	return &Document{Path: path}
}

// CloneToPath copies the lines of d into a new Document bound to path. The
// clone is marked modified so that SaveIfModified always writes it out.
func (d *Document) CloneToPath(path string) *Document {
	return &Document{
		lines:    slices.Clone(d.lines),
		Path:     path,
		modified: true,
	}
}

// Modified reports whether the Document changed since it was loaded, created
// or last saved.
func (d *Document) Modified() bool {
	return d.modified
}

// Len returns the number of lines, including blanks and comments.
func (d *Document) Len() int {
	return len(d.lines)
}

// Lines returns a copy of the line sequence.
func (d *Document) Lines() []Line {
	return slices.Clone(d.lines)
}

// Lookup returns the value of the first pair whose key is key.
func (d *Document) Lookup(key string) (string, bool) {
	for _, line := range d.lines {
		if p, ok := line.(Pair); ok && p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// HasKey reports whether any pair has the given key, whatever its value.
func (d *Document) HasKey(key string) bool {
	_, ok := d.Lookup(key)
	return ok
}

// HasValue reports whether a pair with the given key has a non-empty value.
// Keys that are present but blank are awaiting input and report false.
func (d *Document) HasValue(key string) bool {
	for _, line := range d.lines {
		if p, ok := line.(Pair); ok && p.Key == key && p.Value != "" {
			return true
		}
	}
	return false
}

// Pairs returns an iterator over the key/value pairs in document order.
// Blank and comment lines are skipped. Each call starts a new traversal.
func (d *Document) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for i := 0; i < len(d.lines); i++ {
			p, ok := d.lines[i].(Pair)
			if !ok {
				continue
			}
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys returns the distinct keys in order of first appearance.
func (d *Document) Keys() []string {
	var keys []string
	seen := make(map[string]bool)
	for k := range d.Pairs() {
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}
