package console

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// ErrNoTerminal is returned by GetTerminalSize when neither stdout nor stderr
// is a terminal.
var ErrNoTerminal = errors.New("not a terminal")

// GetTerminalSize returns the width and height of the terminal on stdout, or
// on stderr when stdout is redirected. The width bounds --list-table and
// --config-show tables; without a terminal they are not truncated.
func GetTerminalSize() (int, int, error) {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			return width, height, nil
		}
	}
	return 0, 0, ErrNoTerminal
}

// TableWidth is the width tables should fit in, or 0 for unbounded output.
func TableWidth() int {
	if !IsTTY() {
		return 0
	}
	width, _, err := GetTerminalSize()
	if err != nil {
		return 0
	}
	return width
}
