package testutils

import (
	"bytes"
	"fmt"
	"testing"
	"text/tabwriter"
)

// TestCase represents a single unit test scenario.
type TestCase struct {
	Name     string
	Input    string
	Expected string
	Actual   string
	Pass     bool
}

// PrintTestTable logs a formatted table of comparison results and fails the
// test if any case has Pass=false. Failing rows are marked with '>' and '<'.
func PrintTestTable(t *testing.T, cases []TestCase) {
	t.Helper()

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', 0)

	fmt.Fprintf(w, "  Input\tExpected Value\tReturned Value\t\n")

	anyFailed := false
	for _, tc := range cases {
		leftPtr, rightPtr := " ", " "
		if !tc.Pass {
			anyFailed = true
			leftPtr, rightPtr = ">", "<"
		}
		fmt.Fprintf(w, "%s %q\t%q\t%q\t%s\n", leftPtr, tc.Input, tc.Expected, tc.Actual, rightPtr)
	}
	w.Flush()

	if anyFailed {
		t.Errorf("one or more cases failed:\n%s", buf.String())
		return
	}
	t.Logf("\n%s", buf.String())
}
