package envfile

import (
	"io"
	"os"
	"strings"
)

// Render joins the lines with '\n'. No trailing newline is added beyond what
// the line sequence holds.
func (d *Document) Render() string {
	var sb strings.Builder
	for i, line := range d.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(renderLine(line))
	}
	return sb.String()
}

// String is an alias for Render.
func (d *Document) String() string {
	return d.Render()
}

// WriteTo writes the rendered Document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.Render())
	return int64(n), err
}

// Save writes the Document to its Path and clears the modified flag.
// Write failures are returned as *IOError.
func (d *Document) Save() error {
	if d.Path == "" {
		return &IOError{Op: "write", Path: d.Path, Err: ErrNoPath}
	}
	if err := os.WriteFile(d.Path, []byte(d.Render()), 0644); err != nil {
		return &IOError{Op: "write", Path: d.Path, Err: err}
	}
	d.modified = false
	return nil
}

// SaveIfModified calls Save only when the Document has unsaved changes.
func (d *Document) SaveIfModified() error {
	if !d.modified {
		return nil
	}
	return d.Save()
}
