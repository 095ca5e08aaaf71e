package envfile

import (
	"os"
	"strings"
)

// ParseOption configures Parse and Load.
type ParseOption func(*parseOptions)

type parseOptions struct {
	onMalformed func(*ParseError)
}

// SkipMalformed makes the parser drop lines that have no '=' instead of
// failing. report, if non-nil, is called once for every dropped line.
// Dropped lines are lost when the Document is saved.
func SkipMalformed(report func(*ParseError)) ParseOption {
	return func(o *parseOptions) {
		if report == nil {
			report = func(*ParseError) {}
		}
		o.onMalformed = report
	}
}

// Parse builds an in-memory Document from text. The Document has no path.
//
// Input is split on '\n' only. A '\r' is never a line break: at the end of a
// line it is trimmed with the rest of the surrounding whitespace, inside a
// line it is kept. Text ending in a newline yields a final Blank line.
func Parse(text string, opts ...ParseOption) (*Document, error) {
	lines, err := parseLines(text, opts)
	if err != nil {
		return nil, err
	}
	return &Document{lines: lines}, nil
}

// Load reads path and parses its contents. Read failures are returned as
// *IOError.
func Load(path string, opts ...ParseOption) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	lines, err := parseLines(string(data), opts)
	if err != nil {
		return nil, err
	}
	return &Document{lines: lines, Path: path}, nil
}

func parseLines(text string, opts []ParseOption) ([]Line, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for i, r := range raw {
		line, ok := parseLine(r)
		if !ok {
			perr := &ParseError{Line: i + 1, Text: r}
			if o.onMalformed == nil {
				return nil, perr
			}
			o.onMalformed(perr)
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// parseLine classifies a single raw line. ok is false for a non-blank,
// non-comment line without '='.
func parseLine(raw string) (line Line, ok bool) {
	trimmed := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(trimmed, "#"):
		return Comment{Text: trimmed}, true
	case trimmed == "":
		return Blank{}, true
	}
	key, value, found := strings.Cut(trimmed, "=")
	if !found {
		return nil, false
	}
	return Pair{Key: key, Value: value}, true
}
