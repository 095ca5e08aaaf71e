package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"EnvEdit/cmd"
	"EnvEdit/internal/config"
	"EnvEdit/internal/console"
	"EnvEdit/internal/logger"
	"EnvEdit/internal/paths"
	"EnvEdit/internal/version"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	ctx := context.Background()
	conf := config.LoadAppConfig()

	logFile := ""
	if conf.Log.File {
		logFile = paths.GetLogFilePath()
	}
	slog.SetDefault(logger.NewLogger(logFile))

	// Recover from logger.FatalError so the exit code is set
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(logger.FatalError); ok {
				exitCode = 1
			} else {
				panic(r)
			}
		}
		if exitCode != 0 {
			fmt.Fprintln(os.Stderr, console.Sprintf("{{_ApplicationName_}}%s{{|-|}} did not finish running successfully.", version.ApplicationName))
		}
	}()
	// Turn unexpected panics into a fatal log with a stack trace
	defer logger.Recover(ctx)

	level, err := logger.ParseLevel(conf.Log.Level)
	if err != nil {
		logger.Warn(ctx, "Invalid log level in '{{_File_}}%s{{|-|}}': %v", paths.GetConfigFilePath(), err)
	}
	logger.SetLevel(level)

	groups, err := cmd.Parse(os.Args[1:])
	if err != nil {
		logger.Error(ctx, err.Error())
		return 1
	}

	return cmd.Execute(ctx, conf, groups)
}
