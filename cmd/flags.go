package cmd

import (
	"github.com/spf13/pflag"
)

// InitFlags defines the pflags used for argument validation and help.
// It is safe to call more than once.
func InitFlags() {
	if pflag.Lookup("help") != nil {
		return
	}

	// Modifiers
	pflag.StringP("file", "f", "", "Env file to operate on")
	pflag.BoolP("dry-run", "n", false, "Show a diff instead of writing")
	pflag.BoolP("verbose", "v", false, "Verbose output")
	pflag.BoolP("debug", "x", false, "Debug output")
	pflag.BoolP("help", "h", false, "Show help")

	// Queries
	pflag.String("get", "", "Get variable value")
	pflag.String("has", "", "Check that a variable exists")
	pflag.String("has-value", "", "Check that a variable has a value")
	pflag.BoolP("list", "l", false, "List variables")
	pflag.Bool("list-yaml", false, "List variables as YAML")
	pflag.Bool("list-table", false, "List variables in a table")

	// Edits
	pflag.StringP("set", "s", "", "Set variable value")
	pflag.StringP("unset", "u", "", "Remove variable")
	pflag.String("sync", "", "Reorder the file after a template")
	pflag.String("clone", "", "Copy the file to another path")

	// Other
	pflag.Bool("config-show", false, "Show configuration")
	pflag.BoolP("version", "V", false, "Show version")
}
