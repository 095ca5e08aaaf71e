package logger

import (
	"EnvEdit/internal/version"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// FatalError is a special error used to panic from Fatal logger calls.
// This allows the main run loop to recover and perform cleanup before exiting.
type FatalError struct{}

func getSystemInfo() []string {
	executable, _ := os.Executable()
	return []string{
		fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version),
		"",
		fmt.Sprintf("Currently running as: %s (PID %d)", executable, os.Getpid()),
		"",
		fmt.Sprintf("ARCH:             %s", runtime.GOARCH),
		fmt.Sprintf("OS:               %s", runtime.GOOS),
	}
}

// Fatal logs a message at FatalLevel with system information and a stack
// trace, then panics with FatalError.
func Fatal(ctx context.Context, msg any, args ...any) {
	now := time.Now()

	pc := make([]uintptr, 32)
	n := runtime.Callers(2, pc)
	frames := runtime.CallersFrames(pc[:n])

	var infoLines []string
	for _, i := range getSystemInfo() {
		if i != "" {
			i = "  " + i
		}
		infoLines = append(infoLines, i)
	}

	var allFrames []runtime.Frame
	for {
		frame, more := frames.Next()
		allFrames = append(allFrames, frame)
		if !more {
			break
		}
	}

	wd, _ := os.Getwd()
	width := len(fmt.Sprintf("%d", len(allFrames)-1))
	fmtStr := fmt.Sprintf("  {{_TraceFrameNumber_}}%%%dd{{|-|}}: %%s{{_TraceFrameLines_}}%%s{{|-|}}{{_TraceSourceFile_}}%%s{{|-|}}:{{_TraceLineNumber_}}%%d{{|-|}} ({{_TraceFunction_}}%%s{{|-|}})", width)

	var traceLines []string
	indent := ""
	for i := len(allFrames) - 1; i >= 0; i-- {
		frame := allFrames[i]
		if wd != "" {
			if rel, err := filepath.Rel(wd, frame.File); err == nil && !strings.HasPrefix(rel, "..") {
				frame.File = "./" + filepath.ToSlash(rel)
			}
		}

		suffix := ""
		arrowIndent := indent
		if i < len(allFrames)-1 {
			suffix = "└>"
			if len(indent) >= 2 {
				arrowIndent = indent[:len(indent)-2]
			}
		}

		traceLines = append(traceLines, fmt.Sprintf(fmtStr, i, arrowIndent, suffix, frame.File, frame.Line, filepath.Base(frame.Function)))
		indent += "  "
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(resolveMsg(msg), args...)
	}

	output := []any{
		"{{_TraceHeader_}}### BEGIN SYSTEM INFORMATION AND STACK TRACE ###",
		infoLines,
		"",
		traceLines,
		"{{_TraceFooter_}}### END SYSTEM INFORMATION AND STACK TRACE ###",
		"",
		msg,
	}

	logAt(ctx, now, LevelFatal, output)
	panic(FatalError{})
}

// FatalNoTrace logs a message at FatalLevel without stack trace and panics
// with FatalError.
func FatalNoTrace(ctx context.Context, msg any, args ...any) {
	logAt(ctx, time.Now(), LevelFatal, msg, args...)
	panic(FatalError{})
}

// Recover traps unexpected panics and reports them through Fatal.
// Usage: defer logger.Recover(ctx)
func Recover(ctx context.Context) {
	if r := recover(); r != nil {
		if _, ok := r.(FatalError); ok {
			panic(r)
		}
		Fatal(ctx, "panic: %v", r)
	}
}
