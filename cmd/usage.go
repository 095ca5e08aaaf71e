package cmd

import (
	"EnvEdit/internal/console"
	"EnvEdit/internal/constants"
	"EnvEdit/internal/version"
	"fmt"
	"strings"
)

// PrintHelp prints usage information.
// If target is empty, prints global usage.
// If target is specified, prints usage for that specific flag/command.
func PrintHelp(target string) {
	fmt.Print(console.Parse(GetUsage(target)))
}

// GetUsage returns usage information as a string.
// If target is empty, returns global usage.
// If target is specified, returns usage for that specific flag/command.
func GetUsage(target string) string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}

	appName := version.ApplicationName
	appCmd := version.CommandName

	if target == "" {
		printStr(fmt.Sprintf("Usage: {{_UsageCommand_}}%s{{|-|}} [{{_UsageCommand_}}<Flags>{{|-|}}] [{{_UsageCommand_}}<Command>{{|-|}}] ...", appCmd))
		printStr("")
		printStr(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", appName, version.Version))
		printStr(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} edits '{{_UsageFile_}}%s{{|-|}}' style files without disturbing", appName, constants.EnvFileName))
		printStr("their comments, blank lines or ordering.")
		printStr("")
		printStr("You may include multiple commands on the command-line, and they will be executed in")
		printStr("the order given, only stopping on an error. Any flags included only apply to the")
		printStr("following command, and get reset before the next command.")
		printStr("")
		printStr("Flags:")
		printStr("")
	}

	showAll := target == ""
	match := func(opts ...string) bool {
		if showAll {
			return true
		}
		for _, o := range opts {
			if o == target {
				return true
			}
		}
		return false
	}

	// Flags
	if match("-f", "--file") {
		printStr("{{_UsageCommand_}}-f --file{{|-|}} {{_UsageFile_}}<file>{{|-|}}")
		printStr(fmt.Sprintf("	Operate on {{_UsageFile_}}<file>{{|-|}} instead of the configured file (default '{{_UsageFile_}}%s{{|-|}}')", constants.EnvFileName))
	}
	if match("-n", "--dry-run") {
		printStr("{{_UsageCommand_}}-n --dry-run{{|-|}}")
		printStr("	Show what would change as a diff, without writing anything")
	}
	if match("-v", "--verbose") {
		printStr("{{_UsageCommand_}}-v --verbose{{|-|}}")
		printStr("	Verbose")
	}
	if match("-x", "--debug") {
		printStr("{{_UsageCommand_}}-x --debug{{|-|}}")
		printStr("	Debug")
	}

	if showAll {
		printStr("")
		printStr("CLI Commands:")
		printStr("")
	}

	if match("--get") {
		printStr("{{_UsageCommand_}}--get{{|-|}} {{_UsageVar_}}<var>{{|-|}} [{{_UsageVar_}}<var>{{|-|}} ...]")
		printStr("	Print the value of each variable. The first occurrence wins.")
	}
	if match("--has", "--has-value") {
		printStr("{{_UsageCommand_}}--has{{|-|}} {{_UsageVar_}}<var>{{|-|}} [{{_UsageVar_}}<var>{{|-|}} ...]")
		printStr("	Print '{{_UsageOption_}}yes{{|-|}}' or '{{_UsageOption_}}no{{|-|}}' for whether each variable exists")
		printStr("{{_UsageCommand_}}--has-value{{|-|}} {{_UsageVar_}}<var>{{|-|}} [{{_UsageVar_}}<var>{{|-|}} ...]")
		printStr("	Print '{{_UsageOption_}}yes{{|-|}}' or '{{_UsageOption_}}no{{|-|}}' for whether each variable exists and is not empty")
	}
	if match("-l", "--list", "--list-yaml", "--list-table") {
		printStr("{{_UsageCommand_}}-l --list{{|-|}}")
		printStr("	List all variables as '{{_UsageVar_}}VAR=value{{|-|}}' lines, duplicates included")
		printStr("{{_UsageCommand_}}--list-yaml{{|-|}}")
		printStr("	List all variables as a YAML mapping")
		printStr("{{_UsageCommand_}}--list-table{{|-|}}")
		printStr("	List all variables in a table")
	}
	if match("-s", "--set") {
		printStr("{{_UsageCommand_}}-s --set{{|-|}} {{_UsageVar_}}<var>=<val>{{|-|}} [{{_UsageVar_}}<var>=<val>{{|-|}} ...]")
		printStr("	Set each variable, adding it to the end of the file if it does not exist.")
		printStr("	An empty value never replaces a value that is already set.")
	}
	if match("-u", "--unset") {
		printStr("{{_UsageCommand_}}-u --unset{{|-|}} {{_UsageVar_}}<var>{{|-|}} [{{_UsageVar_}}<var>{{|-|}} ...]")
		printStr("	Remove every line setting each variable")
	}
	if match("--sync") {
		printStr("{{_UsageCommand_}}--sync{{|-|}} [{{_UsageFile_}}<template>{{|-|}}]")
		printStr(fmt.Sprintf("	Rewrite the file in the order and layout of {{_UsageFile_}}<template>{{|-|}} (default '{{_UsageFile_}}%s{{|-|}}').", constants.EnvExampleFileName))
		printStr("	Values are kept, missing variables are added empty and variables not in the")
		printStr("	template are dropped.")
	}
	if match("--clone") {
		printStr("{{_UsageCommand_}}--clone{{|-|}} {{_UsageFile_}}<dest>{{|-|}}")
		printStr("	Copy the file to {{_UsageFile_}}<dest>{{|-|}}")
	}
	if match("--config-show") {
		printStr("{{_UsageCommand_}}--config-show{{|-|}}")
		printStr("	Shows the current configuration options")
	}
	if match("-h", "--help") {
		printStr("{{_UsageCommand_}}-h --help{{|-|}}")
		printStr("	Show this usage information")
		printStr("{{_UsageCommand_}}-h --help{{|-|}} {{_UsageOption_}}<option>{{|-|}}")
		printStr("	Show the usage of the specified option")
	}
	if match("-V", "--version") {
		printStr("{{_UsageCommand_}}-V --version{{|-|}}")
		printStr("	Display version information")
	}

	return sb.String()
}
