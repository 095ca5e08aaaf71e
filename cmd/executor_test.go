package cmd

import (
	"EnvEdit/internal/config"
	"EnvEdit/internal/console"
	"EnvEdit/internal/logger"
	"EnvEdit/internal/paths"
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupExecute points the config, output and logs at test locations and
// returns a config whose env file lives in a temp dir.
func setupExecute(t *testing.T) (config.AppConfig, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()

	prevConfig, prevState := paths.ConfigHomeOverride, paths.StateHomeOverride
	paths.ConfigHomeOverride = filepath.Join(dir, "config")
	paths.StateHomeOverride = filepath.Join(dir, "state")
	prevTTY := console.SetTTY(false)
	prevLog := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	var out bytes.Buffer
	prevOut := output
	output = &out
	t.Cleanup(func() {
		paths.ConfigHomeOverride, paths.StateHomeOverride = prevConfig, prevState
		console.SetTTY(prevTTY)
		slog.SetDefault(prevLog)
		output = prevOut
	})

	conf := config.Default()
	conf.EnvFile = filepath.Join(dir, ".env")
	conf.TemplateFile = filepath.Join(dir, ".env.example")
	conf.Edit.Backup = false
	return conf, &out
}

func run(t *testing.T, conf config.AppConfig, args ...string) int {
	t.Helper()
	groups, err := Parse(args)
	if err != nil {
		t.Fatalf("Parse(%q): %v", args, err)
	}
	return Execute(context.Background(), conf, groups)
}

func TestExecuteSetAndGet(t *testing.T) {
	conf, out := setupExecute(t)

	if code := run(t, conf, "--set", "A=1", "B=two words", "--get", "B", "A", "MISSING"); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if got, want := out.String(), "two words\n1\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	data, err := os.ReadFile(conf.EnvFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "A=1\nB=two words" {
		t.Errorf("file = %q", data)
	}
}

func TestExecuteFileModifier(t *testing.T) {
	conf, out := setupExecute(t)
	other := filepath.Join(t.TempDir(), "other.env")
	if err := os.WriteFile(other, []byte("X=9"), 0644); err != nil {
		t.Fatal(err)
	}

	// -f applies to the next command only.
	if code := run(t, conf, "-f", other, "--get", "X", "--set", "Y=1"); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if out.String() != "9\n" {
		t.Errorf("output = %q", out.String())
	}
	if _, err := os.Stat(conf.EnvFile); err != nil {
		t.Errorf("--set did not write the default file: %v", err)
	}
}

func TestExecuteHas(t *testing.T) {
	conf, out := setupExecute(t)
	if err := os.WriteFile(conf.EnvFile, []byte("A=1\nB="), 0644); err != nil {
		t.Fatal(err)
	}

	if code := run(t, conf, "--has", "A", "B", "{{_C_}}", "--has-value", "B"); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	want := "A: yes\nB: yes\n{{_C_}}: no\nno\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestExecuteListFormats(t *testing.T) {
	conf, out := setupExecute(t)
	if err := os.WriteFile(conf.EnvFile, []byte("# c\nA=1\nB=x"), 0644); err != nil {
		t.Fatal(err)
	}

	if code := run(t, conf, "--list"); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if out.String() != "A=1\nB=x\n" {
		t.Errorf("--list output = %q", out.String())
	}

	out.Reset()
	if code := run(t, conf, "--list-yaml"); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(out.String(), `A: "1"`) || !strings.Contains(out.String(), "B: x") {
		t.Errorf("--list-yaml output = %q", out.String())
	}
}

func TestExecuteDryRun(t *testing.T) {
	conf, out := setupExecute(t)
	if err := os.WriteFile(conf.EnvFile, []byte("A=1"), 0644); err != nil {
		t.Fatal(err)
	}

	if code := run(t, conf, "-n", "--set", "A=2"); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	data, _ := os.ReadFile(conf.EnvFile)
	if string(data) != "A=1" {
		t.Errorf("dry run changed the file: %q", data)
	}
	if !strings.Contains(out.String(), "-A=1\n+A=2\n") {
		t.Errorf("diff missing from output: %q", out.String())
	}
}

func TestExecuteSyncAndClone(t *testing.T) {
	conf, _ := setupExecute(t)
	if err := os.WriteFile(conf.TemplateFile, []byte("# T\nA=\nB="), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(conf.EnvFile, []byte("B=2\nA=1"), 0644); err != nil {
		t.Fatal(err)
	}
	dest := filepath.Join(t.TempDir(), "copy.env")

	if code := run(t, conf, "--sync", "--clone", dest); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	for _, path := range []string{conf.EnvFile, dest} {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "# T\nA=1\nB=2" {
			t.Errorf("%s = %q", path, data)
		}
	}
}

func TestExecuteStopsOnError(t *testing.T) {
	conf, out := setupExecute(t)

	if code := run(t, conf, "--get", "A", "--set", "B=1"); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output: %q", out.String())
	}
	if _, err := os.Stat(conf.EnvFile); !os.IsNotExist(err) {
		t.Errorf("commands after the failure ran: %v", err)
	}
}

func TestExecuteBadAssignment(t *testing.T) {
	conf, _ := setupExecute(t)
	if code := run(t, conf, "--set", "NOEQUALS"); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestExecuteMalformedFile(t *testing.T) {
	conf, out := setupExecute(t)
	if err := os.WriteFile(conf.EnvFile, []byte("A=1\ngarbage"), 0644); err != nil {
		t.Fatal(err)
	}

	if code := run(t, conf, "--get", "A"); code != 1 {
		t.Errorf("strict exit code = %d, want 1", code)
	}

	conf.Edit.SkipMalformed = true
	if code := run(t, conf, "--get", "A"); code != 0 {
		t.Errorf("lenient exit code = %d, want 0", code)
	}
	if out.String() != "1\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestExecuteResetsModifiers(t *testing.T) {
	conf, _ := setupExecute(t)
	if err := os.WriteFile(conf.EnvFile, []byte("A=1"), 0644); err != nil {
		t.Fatal(err)
	}
	base := logger.LevelVar.Level()

	if code := run(t, conf, "-x", "--list", "--list"); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if got := logger.LevelVar.Level(); got != base {
		t.Errorf("level after Execute = %v, want %v", got, base)
	}
}

func TestExecuteNoCommandShowsHelp(t *testing.T) {
	conf, out := setupExecute(t)

	if code := run(t, conf, "-v"); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(out.String(), "Usage: envedit") {
		t.Errorf("help not shown: %q", out.String())
	}
}

func TestExecuteConfigShow(t *testing.T) {
	conf, out := setupExecute(t)

	if code := run(t, conf, "--config-show"); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	for _, want := range []string{"Env File", conf.EnvFile, "Backup", "no"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("config table missing %q:\n%s", want, out.String())
		}
	}
}
