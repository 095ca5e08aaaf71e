package config

import (
	"EnvEdit/internal/constants"
	"EnvEdit/internal/paths"
	"os"
	"path/filepath"
	"testing"
)

func useTempConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	paths.ConfigHomeOverride = dir
	t.Cleanup(func() { paths.ConfigHomeOverride = "" })
	return dir
}

func TestLoadWritesDefaults(t *testing.T) {
	useTempConfigHome(t)

	conf := LoadAppConfig()
	if conf.EnvFile != constants.EnvFileName {
		t.Errorf("EnvFile = %q, want %q", conf.EnvFile, constants.EnvFileName)
	}
	if !conf.Edit.Backup {
		t.Error("Edit.Backup = false, want true")
	}
	if conf.Log.Level != constants.LogLevelNotice {
		t.Errorf("Log.Level = %q, want %q", conf.Log.Level, constants.LogLevelNotice)
	}

	if _, err := os.Stat(paths.GetConfigFilePath()); err != nil {
		t.Errorf("defaults were not written: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	useTempConfigHome(t)

	conf := Default()
	conf.Files.EnvFile = "${HOME}/stack/.env"
	conf.Edit.Backup = false
	conf.Edit.SkipMalformed = true
	conf.Log.Level = constants.LogLevelDebug

	if err := SaveAppConfig(conf); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded := LoadAppConfig()
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "stack", ".env"); filepath.Clean(loaded.EnvFile) != want {
		t.Errorf("EnvFile = %q, want %q", loaded.EnvFile, want)
	}
	if loaded.Edit.Backup {
		t.Error("Edit.Backup = true, want false")
	}
	if !loaded.Edit.SkipMalformed {
		t.Error("Edit.SkipMalformed = false, want true")
	}
	if loaded.Log.Level != constants.LogLevelDebug {
		t.Errorf("Log.Level = %q, want %q", loaded.Log.Level, constants.LogLevelDebug)
	}
}

func TestLoadInvalidFallsBack(t *testing.T) {
	useTempConfigHome(t)

	path := paths.GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[files\nenv_file = "), 0644); err != nil {
		t.Fatal(err)
	}

	conf := LoadAppConfig()
	if conf.EnvFile != constants.EnvFileName {
		t.Errorf("EnvFile = %q, want default %q", conf.EnvFile, constants.EnvFileName)
	}
}
