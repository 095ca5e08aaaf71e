package envedit

import (
	"EnvEdit/internal/console"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const noNewline = `\ No newline at end of file`

// Diff returns a whole-file, line based diff from before to after, marked up
// with console tags. It returns "" when the two are equal. File content is
// escaped, so it prints exactly as it would be written.
func Diff(path, before, after string) string {
	if before == after {
		return ""
	}

	// A missing final newline on both sides is not a change.
	if !hasFinalNewline(before) && !hasFinalNewline(after) {
		before, after = terminate(before), terminate(after)
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	path = console.Escape(path)
	var sb strings.Builder
	sb.WriteString("{{_DiffDelete_}}--- " + path + "{{|-|}}\n")
	sb.WriteString("{{_DiffAdd_}}+++ " + path + "{{|-|}}\n")
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			line = console.Escape(line)
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				sb.WriteString("{{_DiffAdd_}}+" + line + "{{|-|}}\n")
			case diffmatchpatch.DiffDelete:
				sb.WriteString("{{_DiffDelete_}}-" + line + "{{|-|}}\n")
			default:
				sb.WriteString(" " + line + "\n")
			}
		}
		if d.Text != "" && !strings.HasSuffix(d.Text, "\n") {
			sb.WriteString(noNewline + "\n")
		}
	}
	return sb.String()
}

func hasFinalNewline(text string) bool {
	return strings.HasSuffix(text, "\n")
}

func terminate(text string) string {
	if text == "" || hasFinalNewline(text) {
		return text
	}
	return text + "\n"
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
