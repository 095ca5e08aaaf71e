package envedit

import (
	"EnvEdit/internal/console"
	"EnvEdit/internal/constants"
	"EnvEdit/internal/envfile"
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

var exportPairs = []envfile.Pair{
	{Key: "PORT", Value: "8080"},
	{Key: "EMPTY", Value: ""},
	{Key: "NAME", Value: "app"},
	{Key: "PORT", Value: "9090"},
}

func TestExportEnv(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, exportPairs, constants.FormatEnv, 0); err != nil {
		t.Fatal(err)
	}
	want := "PORT=8080\nEMPTY=\nNAME=app\nPORT=9090\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("env export mismatch (-want +got):\n%s", diff)
	}
}

func TestExportYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, exportPairs, constants.FormatYAML, 0); err != nil {
		t.Fatal(err)
	}

	var got map[string]string
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	want := map[string]string{"PORT": "8080", "EMPTY": "", "NAME": "app"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("yaml export mismatch (-want +got):\n%s", diff)
	}

	out := buf.String()
	if strings.Index(out, "PORT") > strings.Index(out, "EMPTY") || strings.Index(out, "EMPTY") > strings.Index(out, "NAME") {
		t.Errorf("document order lost:\n%s", out)
	}
}

func TestExportYAMLEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, nil, constants.FormatYAML, 0); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "{}\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestExportTable(t *testing.T) {
	prev := console.SetTTY(false)
	t.Cleanup(func() { console.SetTTY(prev) })

	var buf bytes.Buffer
	if err := Export(&buf, exportPairs[:1], constants.FormatTable, 0); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Variable", "PORT", "8080", "+"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestExportUnknownFormat(t *testing.T) {
	if err := Export(&bytes.Buffer{}, exportPairs, "xml", 0); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestExportTableKeepsMarkup(t *testing.T) {
	prev := console.SetTTY(false)
	t.Cleanup(func() { console.SetTTY(prev) })

	pairs := []envfile.Pair{{Key: "TPL", Value: "{{_Name_}}x"}}

	var buf bytes.Buffer
	if err := Export(&buf, pairs, constants.FormatTable, 0); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "| TPL      | {{_Name_}}x |") {
		t.Errorf("table altered the value:\n%s", buf.String())
	}

	// Truncation cuts the literal text, not the markup it looks like.
	buf.Reset()
	pairs[0].Value = "{{_Name_}}xyz"
	if err := Export(&buf, pairs, constants.FormatTable, 22); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "| TPL      | {{_Nam… |") {
		t.Errorf("truncated value:\n%s", buf.String())
	}
}
