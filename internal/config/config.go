package config

import (
	"EnvEdit/internal/constants"
	"EnvEdit/internal/paths"
	"os"
	"os/user"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// AppConfig holds the application configuration settings.
type AppConfig struct {
	Files FilesConfig `toml:"files"`
	Edit  EditConfig  `toml:"edit"`
	Log   LogConfig   `toml:"log"`

	// These are helper fields for runtime use, not saved to TOML
	EnvFile      string `toml:"-"`
	TemplateFile string `toml:"-"`
}

// FilesConfig holds the default file locations.
type FilesConfig struct {
	EnvFile      string `toml:"env_file"`
	TemplateFile string `toml:"template_file"`
}

// EditConfig holds settings that change how files are read and written.
type EditConfig struct {
	Backup        bool `toml:"backup"`         // copy the file to <file>.bak before overwriting it
	SkipMalformed bool `toml:"skip_malformed"` // drop lines without '=' instead of failing
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  bool   `toml:"file"`
}

// Default returns the built-in configuration.
func Default() AppConfig {
	conf := AppConfig{
		Files: FilesConfig{
			EnvFile:      constants.EnvFileName,
			TemplateFile: constants.EnvExampleFileName,
		},
		Edit: EditConfig{
			Backup:        true,
			SkipMalformed: false,
		},
		Log: LogConfig{
			Level: constants.LogLevelNotice,
			File:  true,
		},
	}
	conf.expand()
	return conf
}

// ExpandVariables expands environment variables in the config values.
// It supports:
// - ${XDG_CONFIG_HOME} -> xdg.ConfigHome
// - ${XDG_DATA_HOME}   -> xdg.DataHome
// - ${XDG_STATE_HOME}  -> xdg.StateHome
// - ${XDG_CACHE_HOME}  -> xdg.CacheHome
// - ${HOME}            -> os.UserHomeDir()
// - ${USER}            -> Current username
// - ${PWD}             -> Current working directory
func ExpandVariables(val string) string {
	mapper := func(varName string) string {
		switch varName {
		case "XDG_CONFIG_HOME":
			return xdg.ConfigHome
		case "XDG_DATA_HOME":
			return xdg.DataHome
		case "XDG_STATE_HOME":
			return xdg.StateHome
		case "XDG_CACHE_HOME":
			return xdg.CacheHome
		case "HOME":
			home, err := os.UserHomeDir()
			if err != nil {
				return ""
			}
			return home
		case "USER":
			u, err := user.Current()
			if err != nil {
				return os.Getenv("USERNAME") // Fallback for Windows
			}
			return u.Username
		case "PWD":
			wd, err := os.Getwd()
			if err != nil {
				return "."
			}
			return wd
		}
		return ""
	}
	return os.Expand(val, mapper)
}

func (c *AppConfig) expand() {
	c.EnvFile = ExpandVariables(c.Files.EnvFile)
	c.TemplateFile = ExpandVariables(c.Files.TemplateFile)
}

// LoadAppConfig reads the configuration file and returns the configuration.
// A missing or invalid file yields the defaults; a missing file is created.
func LoadAppConfig() AppConfig {
	conf := Default()

	path := paths.GetConfigFilePath()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, &conf); err == nil {
			conf.expand()
			return conf
		}
		return Default()
	}

	if os.IsNotExist(err) {
		_ = SaveAppConfig(conf)
	}
	return conf
}

// SaveAppConfig writes the configuration to envedit.toml.
func SaveAppConfig(conf AppConfig) error {
	path := paths.GetConfigFilePath()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(conf)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
