package constants

// File Names
const (
	EnvFileName        = ".env"
	EnvExampleFileName = ".env.example"
	BackupSuffix       = ".bak"
	AppConfigFileName  = "envedit.toml"
	LogFileName        = "envedit.log"
)

// Log level names accepted in the config file
const (
	LogLevelTrace  = "trace"
	LogLevelDebug  = "debug"
	LogLevelInfo   = "info"
	LogLevelNotice = "notice"
	LogLevelWarn   = "warn"
	LogLevelError  = "error"
)

// Export formats for listing variables
const (
	FormatEnv   = "env"
	FormatYAML  = "yaml"
	FormatTable = "table"
)
