package envfile

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingDelimiter is wrapped by ParseError when a line has no '='.
	ErrMissingDelimiter = errors.New("missing '=' delimiter")

	// ErrNoPath is returned when saving a Document that has no path.
	ErrNoPath = errors.New("document has no path")
)

// ParseError reports a line that is neither blank, a comment, nor KEY=VALUE.
type ParseError struct {
	Line int    // 1-based line number
	Text string // raw line text, untrimmed
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, ErrMissingDelimiter, e.Text)
}

func (e *ParseError) Unwrap() error {
	return ErrMissingDelimiter
}

// IOError wraps a failed read or write of the underlying file.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func unknownLine(line Line) string {
	return fmt.Sprintf("envfile: unknown line type %T", line)
}
