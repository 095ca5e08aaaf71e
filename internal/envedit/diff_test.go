package envedit

import (
	"EnvEdit/internal/console"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name          string
		before, after string
		want          string
	}{
		{"equal", "A=1", "A=1", ""},
		{
			"changed value",
			"A=1\nB=2\nC=3", "A=1\nB=9\nC=3",
			"--- f\n+++ f\n A=1\n-B=2\n+B=9\n C=3\n",
		},
		{
			"new file",
			"", "A=1",
			"--- f\n+++ f\n+A=1\n",
		},
		{
			"removed line",
			"A=1\nB=2\n", "A=1\n",
			"--- f\n+++ f\n A=1\n-B=2\n",
		},
		{
			"append without final newline",
			"A=1", "A=1\nB=2",
			"--- f\n+++ f\n A=1\n+B=2\n",
		},
		{
			"remove last line without final newline",
			"A=1\nB=2", "A=1",
			"--- f\n+++ f\n A=1\n-B=2\n",
		},
		{
			"final newline added",
			"A=1", "A=1\n",
			"--- f\n+++ f\n-A=1\n\\ No newline at end of file\n+A=1\n",
		},
		{
			"final newline dropped",
			"A=1\n", "A=1",
			"--- f\n+++ f\n-A=1\n+A=1\n\\ No newline at end of file\n",
		},
		{
			"markup in content",
			"A=1", "A=1\nTPL={{_Name_}}-{{|red|}}x\x1b[31m",
			"--- f\n+++ f\n A=1\n+TPL={{_Name_}}-{{|red|}}x\x1b[31m\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := console.Strip(Diff("f", tt.before, tt.after))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffContentOnTerminal(t *testing.T) {
	prev := console.SetTTY(true)
	t.Cleanup(func() { console.SetTTY(prev) })

	value := "TPL={{_Name_}}-{{|red|}}x"
	got := console.ToANSI(Diff("{{_File_}}.env", "A=1", "A=1\n"+value))
	for _, want := range []string{"--- {{_File_}}.env", "+" + value, " A=1\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("diff output %q does not contain %q", got, want)
		}
	}
	if strings.Contains(got, "-A=1") {
		t.Errorf("unchanged last line shown as removed: %q", got)
	}
}
