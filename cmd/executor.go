package cmd

import (
	"EnvEdit/internal/config"
	"EnvEdit/internal/console"
	"EnvEdit/internal/constants"
	"EnvEdit/internal/envedit"
	"EnvEdit/internal/envfile"
	"EnvEdit/internal/logger"
	"EnvEdit/internal/paths"
	"EnvEdit/internal/version"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// output receives command results. Logs go to stderr.
var output io.Writer = os.Stdout

// CmdState holds the state of flags for a single command group.
type CmdState struct {
	File   string
	DryRun bool
}

// Execute runs the logic for a sequence of command groups.
// Modifiers are applied before each command and reset after it. Execution
// stops at the first failing command and 1 is returned.
func Execute(ctx context.Context, conf config.AppConfig, groups []CommandGroup) int {
	baseLevel := logger.LevelVar.Level()
	defer logger.SetLevel(baseLevel)

	ranCommand := false

	for i, group := range groups {
		state := CmdState{File: conf.EnvFile}

		flags := group.Flags
		for j := 0; j < len(flags); j++ {
			switch flags[j] {
			case "-v", "--verbose":
				logger.SetLevel(logger.LevelInfo)
			case "-x", "--debug":
				logger.SetLevel(logger.LevelDebug)
			case "-n", "--dry-run":
				state.DryRun = true
			case "-f", "--file":
				if j+1 < len(flags) {
					j++
					state.File = config.ExpandVariables(flags[j])
				}
			}
		}

		cmdStr := version.CommandName
		for _, part := range group.FullSlice() {
			cmdStr += " " + part
		}
		logger.Info(ctx, "%s command: '{{_UserCommand_}}%s{{|-|}}'", version.ApplicationName, cmdStr)
		logger.Debug(ctx, "Execution Args -> State: %+v, Command: %v, Rest: %v", state, group.CommandSlice(), Flatten(groups[i+1:]))

		opts := envedit.OptionsFromConfig(conf)
		opts.DryRun = state.DryRun
		opts.Out = output

		var err error
		switch group.Command {
		case "-h", "--help":
			handleHelp(&group)
		case "-V", "--version":
			handleVersion(ctx)
		case "--get":
			err = handleGet(ctx, &group, &state, opts)
		case "--has", "--has-value":
			err = handleHas(ctx, &group, &state, opts)
		case "-l", "--list", "--list-yaml", "--list-table":
			err = handleList(ctx, &group, &state, opts)
		case "-s", "--set":
			err = handleSet(ctx, &group, &state, opts)
		case "-u", "--unset":
			err = handleUnset(ctx, &group, &state, opts)
		case "--sync":
			err = handleSync(ctx, &group, &state, conf, opts)
		case "--clone":
			err = handleClone(ctx, &group, &state, opts)
		case "--config-show":
			handleConfigShow(ctx, &conf)
		default:
			// Only modifiers, nothing to run
		}
		if group.Command != "" {
			ranCommand = true
		}

		logger.SetLevel(baseLevel)

		if err != nil {
			logger.Error(ctx, "'{{_UserCommand_}}%s{{|-|}}' failed: %v", cmdStr, err)
			return 1
		}
	}

	if !ranCommand {
		handleHelp(&CommandGroup{})
	}

	return 0
}

func handleHelp(group *CommandGroup) {
	target := ""
	if len(group.Args) > 0 {
		target = group.Args[0]
	}
	fmt.Fprint(output, console.Parse(GetUsage(target)))
}

func handleVersion(ctx context.Context) {
	logger.Display(ctx, "{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version)
	logger.Debug(ctx, "Commit %s, built %s", version.Commit, version.BuildDate)
}

func handleGet(ctx context.Context, group *CommandGroup, state *CmdState, opts envedit.Options) error {
	values, err := envedit.Get(ctx, state.File, group.Args, opts)
	if err != nil {
		return err
	}
	for _, v := range values {
		if !v.Found {
			logger.Warn(ctx, "{{_File_}}%s{{|-|}}: {{_Var_}}%s{{|-|}} is not set", state.File, console.Escape(v.Key))
			continue
		}
		fmt.Fprintln(output, v.Value)
	}
	return nil
}

func handleHas(ctx context.Context, group *CommandGroup, state *CmdState, opts envedit.Options) error {
	found, err := envedit.Has(ctx, state.File, group.Args, group.Command == "--has-value", opts)
	if err != nil {
		return err
	}
	for i, key := range group.Args {
		answer := "{{_No_}}no{{|-|}}"
		if found[i] {
			answer = "{{_Yes_}}yes{{|-|}}"
		}
		if len(group.Args) > 1 {
			answer = console.Escape(key) + ": " + answer
		}
		fmt.Fprintln(output, console.Parse(answer))
	}
	return nil
}

func handleList(ctx context.Context, group *CommandGroup, state *CmdState, opts envedit.Options) error {
	pairs, err := envedit.List(ctx, state.File, opts)
	if err != nil {
		return err
	}

	format := constants.FormatEnv
	width := 0
	switch group.Command {
	case "--list-yaml":
		format = constants.FormatYAML
	case "--list-table":
		format = constants.FormatTable
		width = console.TableWidth()
	}
	return envedit.Export(output, pairs, format, width)
}

func handleSet(ctx context.Context, group *CommandGroup, state *CmdState, opts envedit.Options) error {
	pairs := make([]envfile.Pair, 0, len(group.Args))
	for _, arg := range group.Args {
		p, err := envedit.ParseAssignment(arg)
		if err != nil {
			return err
		}
		pairs = append(pairs, p)
	}
	_, err := envedit.Set(ctx, state.File, pairs, opts)
	return err
}

func handleUnset(ctx context.Context, group *CommandGroup, state *CmdState, opts envedit.Options) error {
	_, err := envedit.Unset(ctx, state.File, group.Args, opts)
	return err
}

func handleSync(ctx context.Context, group *CommandGroup, state *CmdState, conf config.AppConfig, opts envedit.Options) error {
	template := conf.TemplateFile
	if len(group.Args) > 0 {
		template = config.ExpandVariables(group.Args[0])
	}
	added, err := envedit.Sync(ctx, state.File, template, opts)
	if err != nil {
		return err
	}
	if len(added) == 0 {
		logger.Info(ctx, "{{_File_}}%s{{|-|}}: No variables added.", state.File)
	}
	return nil
}

func handleClone(ctx context.Context, group *CommandGroup, state *CmdState, opts envedit.Options) error {
	return envedit.Clone(ctx, state.File, config.ExpandVariables(group.Args[0]), opts)
}

func handleConfigShow(ctx context.Context, conf *config.AppConfig) {
	headers := []string{
		"{{_UsageCommand_}}Option{{|-|}}",
		"{{_UsageCommand_}}Value{{|-|}}",
		"{{_UsageCommand_}}Expanded Value{{|-|}}",
	}

	boolToYesNo := func(val bool) string {
		if val {
			return "{{_Yes_}}yes{{|-|}}"
		}
		return "{{_No_}}no{{|-|}}"
	}
	file := func(val string) string {
		return "{{_File_}}" + console.Escape(val) + "{{|-|}}"
	}

	data := []string{
		"Env File", file(conf.Files.EnvFile), file(conf.EnvFile),
		"Template File", file(conf.Files.TemplateFile), file(conf.TemplateFile),
		"Backup", boolToYesNo(conf.Edit.Backup), "",
		"Skip Malformed Lines", boolToYesNo(conf.Edit.SkipMalformed), "",
		"Log Level", "{{_Var_}}" + console.Escape(strings.ToLower(conf.Log.Level)) + "{{|-|}}", "",
		"Log File", boolToYesNo(conf.Log.File), "",
	}
	if conf.Log.File {
		data[len(data)-1] = file(paths.GetLogFilePath())
	}

	logger.Info(ctx, "Configuration options stored in '{{_File_}}%s{{|-|}}':", paths.GetConfigFilePath())
	console.PrintTable(output, headers, data, console.IsTTY(), console.TableWidth())
}
