package cmd

import (
	"EnvEdit/internal/console"
	"EnvEdit/internal/version"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ParseError describes a command line that could not be parsed. Error renders
// the command line with the failing argument marked.
type ParseError struct {
	Args           []string // The full argument list passed to Parse
	Index          int      // The index where the error occurred
	Message        string   // %c is replaced with the command, %o with the failing argument
	FailingCommand string   // The command being processed (e.g. "--set")
}

func (e *ParseError) Error() string {
	indent := "   "

	var cmdLineParts []string
	cmdLineParts = append(cmdLineParts, fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", version.CommandName))
	for i := 0; i <= e.Index && i < len(e.Args); i++ {
		str := console.Escape(e.Args[i])
		if i == e.Index {
			str = fmt.Sprintf("{{_UserCommandError_}}%s{{|-|}}", str)
		} else {
			str = fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", str)
		}
		cmdLineParts = append(cmdLineParts, str)
	}
	cmdLineStr := "'" + strings.Join(cmdLineParts, " ") + "'"

	// indent + "'" + command name + " "
	caretOffset := len(indent) + 1 + len(version.CommandName) + 1
	for i := 0; i < e.Index && i < len(e.Args); i++ {
		caretOffset += len(e.Args[i]) + 1
	}
	pointerLine := strings.Repeat(" ", caretOffset) + "{{_UserCommandErrorMarker_}}^{{|-|}}"

	failingOpt := ""
	if e.Index < len(e.Args) {
		failingOpt = console.Escape(e.Args[e.Index])
	}
	replacer := strings.NewReplacer(
		"%c", fmt.Sprintf("'{{_UserCommand_}}%s{{|-|}}'", e.FailingCommand),
		"%o", fmt.Sprintf("'{{_UserCommand_}}%s{{|-|}}'", failingOpt),
	)
	formattedMsg := replacer.Replace(e.Message)

	out := fmt.Sprintf("Error in command line:\n\n%s%s\n%s\n\n%s%s\n", indent, cmdLineStr, pointerLine, indent, formattedMsg)

	if e.FailingCommand != "" {
		out += fmt.Sprintf("\n%sUsage is:\n", indent)
		for _, line := range strings.Split(strings.TrimRight(GetUsage(e.FailingCommand), "\n"), "\n") {
			out += fmt.Sprintf("%s%s\n", indent, line)
		}
	} else {
		out += fmt.Sprintf("\n%sRun '{{_UserCommand_}}%s --help{{|-|}}' for usage.\n", indent, version.CommandName)
	}

	return out
}

// CommandGroup represents a parsed group of flags and a command with its arguments
type CommandGroup struct {
	Flags   []string
	Command string
	Args    []string
}

// FullSlice returns the reconstructed slice of strings for the group
func (cg CommandGroup) FullSlice() []string {
	var s []string
	s = append(s, cg.Flags...)
	if cg.Command != "" {
		s = append(s, cg.Command)
	}
	s = append(s, cg.Args...)
	return s
}

// CommandSlice returns the command and its arguments as a slice
func (cg CommandGroup) CommandSlice() []string {
	var s []string
	if cg.Command != "" {
		s = append(s, cg.Command)
	}
	s = append(s, cg.Args...)
	return s
}

// Flatten converts a slice of CommandGroups into a single slice of strings
func Flatten(groups []CommandGroup) []string {
	var s []string
	for _, g := range groups {
		s = append(s, g.FullSlice()...)
	}
	return s
}

// Parse splits the raw command line into command groups. Each group holds the
// modifiers that precede a command, the command itself and its arguments.
// Modifiers only apply to the command that follows them.
func Parse(args []string) ([]CommandGroup, error) {
	InitFlags()

	modifiers := map[string]bool{
		"-n": true, "--dry-run": true,
		"-v": true, "--verbose": true,
		"-x": true, "--debug": true,
	}
	// Modifiers that take a value; it is kept in Flags right after the modifier.
	valueModifiers := map[string]bool{
		"-f": true, "--file": true,
	}

	// Expand combined short flags (e.g. -nv -> -n -v)
	var expandedArgs []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") && len(arg) > 2 {
			for _, c := range arg[1:] {
				expandedArgs = append(expandedArgs, fmt.Sprintf("-%c", c))
			}
		} else {
			expandedArgs = append(expandedArgs, arg)
		}
	}

	var groups []CommandGroup
	var currentGroup CommandGroup
	var lastCommand string

	i := 0
	for i < len(expandedArgs) {
		arg := expandedArgs[i]

		if !strings.HasPrefix(arg, "-") || arg == "-" {
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: "Invalid option %o", FailingCommand: lastCommand}
		}

		if modifiers[arg] {
			currentGroup.Flags = append(currentGroup.Flags, arg)
			lastCommand = arg
			i++
			continue
		}

		// --get=VAR form
		cmdToCheck, inlineArg, hasInline := strings.Cut(arg, "=")

		if valueModifiers[cmdToCheck] {
			if hasInline {
				currentGroup.Flags = append(currentGroup.Flags, cmdToCheck, inlineArg)
				i++
			} else if i+1 < len(expandedArgs) && !strings.HasPrefix(expandedArgs[i+1], "-") {
				currentGroup.Flags = append(currentGroup.Flags, arg, expandedArgs[i+1])
				i += 2
			} else {
				return nil, &ParseError{Args: expandedArgs, Index: i, FailingCommand: cmdToCheck, Message: "Option %c requires a file name."}
			}
			lastCommand = cmdToCheck
			continue
		}

		cmdName := strings.TrimLeft(cmdToCheck, "-")
		var validFlag *pflag.Flag
		if strings.HasPrefix(cmdToCheck, "--") {
			validFlag = pflag.Lookup(cmdName)
		} else if len(cmdName) == 1 {
			validFlag = pflag.CommandLine.ShorthandLookup(cmdName)
		}
		if validFlag == nil {
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: "Invalid option %o"}
		}

		cmd := cmdToCheck
		currentGroup.Command = cmd
		lastCommand = cmd
		if hasInline {
			currentGroup.Args = append(currentGroup.Args, inlineArg)
		}
		i++

		switch cmd {
		// Commands that take one or more arguments (until next flag)
		case "--get", "--has", "--has-value", "-s", "--set", "-u", "--unset":
			for i < len(expandedArgs) && !strings.HasPrefix(expandedArgs[i], "-") {
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
			}
			if len(currentGroup.Args) == 0 {
				return nil, &ParseError{Args: expandedArgs, Index: i - 1, FailingCommand: cmd, Message: "Command %c requires at least one argument."}
			}

		// Commands that require exactly ONE argument
		// Commands that take one argument; --sync falls back to the configured template
		case "--sync", "--clone":
			if !hasInline && i < len(expandedArgs) && !strings.HasPrefix(expandedArgs[i], "-") {
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
			}
			if cmd == "--clone" && len(currentGroup.Args) == 0 {
				return nil, &ParseError{Args: expandedArgs, Index: i - 1, FailingCommand: cmd, Message: "Command %c requires an argument."}
			}

		case "-h", "--help":
			// Optional command to show help for
			if i < len(expandedArgs) && strings.HasPrefix(expandedArgs[i], "-") {
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
			}

		case "-l", "--list", "--list-yaml", "--list-table", "--config-show", "-V", "--version":
			if hasInline {
				return nil, &ParseError{Args: expandedArgs, Index: i - 1, FailingCommand: cmd, Message: "Command %c does not take an argument."}
			}

		default:
			// Modifiers registered as flags but used as commands land here.
			return nil, &ParseError{Args: expandedArgs, Index: i - 1, Message: "Invalid option %o"}
		}

		groups = append(groups, currentGroup)
		currentGroup = CommandGroup{}
	}

	// Trailing modifiers without a command
	if len(currentGroup.Flags) > 0 {
		groups = append(groups, currentGroup)
	}

	return groups, nil
}
