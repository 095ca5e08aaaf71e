package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// PrintTable writes a table with the given headers and data to w.
// data should be a flat list of strings, length must be a multiple of len(headers).
// useLineChars determines if Unicode box drawing characters are used.
// When maxWidth is positive, the last column is truncated so rows fit in it.
// Cells are markup; wrap text that is not in Escape.
func PrintTable(w io.Writer, headers []string, data []string, useLineChars bool, maxWidth int) {
	cols := len(headers)
	if cols == 0 {
		return
	}

	colWidths := make([]int, cols)
	for i, h := range headers {
		colWidths[i] = max(colWidths[i], runewidth.StringWidth(Strip(h)))
	}
	for i, d := range data {
		col := i % cols
		colWidths[col] = max(colWidths[col], runewidth.StringWidth(Strip(d)))
	}

	if maxWidth > 0 {
		// Each column takes its width plus 3 (padding and separator), plus the leading border
		used := 1
		for _, cw := range colWidths[:cols-1] {
			used += cw + 3
		}
		if last := maxWidth - used - 3; last > 0 && colWidths[cols-1] > last {
			colWidths[cols-1] = last
		}
	}

	horizontal, vertical := "-", "|"
	left, middle, right := [3]string{"+", "+", "+"}, [3]string{"+", "+", "+"}, [3]string{"+", "+", "+"}
	if useLineChars {
		horizontal, vertical = "─", "│"
		left = [3]string{"┌", "├", "└"}
		middle = [3]string{"┬", "┼", "┴"}
		right = [3]string{"┐", "┤", "┘"}
	}

	border := func(row int) string {
		var sb strings.Builder
		sb.WriteString(left[row])
		for i, cw := range colWidths {
			sb.WriteString(strings.Repeat(horizontal, cw+2))
			if i < cols-1 {
				sb.WriteString(middle[row])
			} else {
				sb.WriteString(right[row])
			}
		}
		return sb.String()
	}

	printRow := func(items []string) {
		var sb strings.Builder
		sb.WriteString(vertical)
		for i, item := range items {
			plain := Strip(item)
			if runewidth.StringWidth(plain) > colWidths[i] {
				plain = runewidth.Truncate(plain, colWidths[i], "…")
				item = Escape(plain)
			}
			sb.WriteString(" ")
			sb.WriteString(item)
			sb.WriteString(strings.Repeat(" ", colWidths[i]-runewidth.StringWidth(plain)))
			sb.WriteString(" ")
			sb.WriteString(vertical)
		}
		fmt.Fprintln(w, ToANSI(sb.String()))
	}

	fmt.Fprintln(w, border(0))
	printRow(headers)
	fmt.Fprintln(w, border(1))
	for i := 0; i < len(data); i += cols {
		row := make([]string, cols)
		copy(row, data[i:min(i+cols, len(data))])
		printRow(row)
	}
	fmt.Fprintln(w, border(2))
}
