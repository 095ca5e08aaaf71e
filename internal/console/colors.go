package console

// Raw ANSI Color Codes
const (
	// Reset
	CodeReset = "\033[0m"

	// Modifiers
	CodeBold      = "\033[1m"
	CodeDim       = "\033[2m"
	CodeItalic    = "\033[3m"
	CodeUnderline = "\033[4m"
	CodeBlink     = "\033[5m"
	CodeReverse   = "\033[7m"

	// Foreground
	CodeBlack   = "\033[30m"
	CodeRed     = "\033[31m"
	CodeGreen   = "\033[32m"
	CodeYellow  = "\033[33m"
	CodeBlue    = "\033[34m"
	CodeMagenta = "\033[35m"
	CodeCyan    = "\033[36m"
	CodeWhite   = "\033[37m"

	// Background
	CodeRedBg = "\033[41m"
)

// AppColors defines the program-wide semantic styles.
// Each value is a style code in fg:bg:flags form (e.g. "cyan::b").
type AppColors struct {
	// Log levels
	Trace  string
	Debug  string
	Info   string
	Notice string
	Warn   string
	Error  string
	Fatal  string

	// Fatal trace block
	FatalFooter      string
	TraceHeader      string
	TraceFooter      string
	TraceFrameNumber string
	TraceFrameLines  string
	TraceSourceFile  string
	TraceLineNumber  string
	TraceFunction    string

	// Unit test tables
	UnitTestPass      string
	UnitTestFail      string
	UnitTestFailArrow string

	// Content
	ApplicationName        string
	Version                string
	File                   string
	Var                    string
	Value                  string
	Added                  string
	Updated                string
	Removed                string
	Skipped                string
	DiffAdd                string
	DiffDelete             string
	UserCommand            string
	UserCommandError       string
	UserCommandErrorMarker string
	Yes                    string
	No                     string

	// Usage
	UsageCommand string
	UsageOption  string
	UsageFile    string
	UsageVar     string
}

// Colors holds the active semantic styles.
var Colors = AppColors{
	Trace:  "blue",
	Debug:  "blue",
	Info:   "blue",
	Notice: "green",
	Warn:   "yellow",
	Error:  "red",
	Fatal:  "white:red",

	FatalFooter:      "-",
	TraceHeader:      "red",
	TraceFooter:      "red",
	TraceFrameNumber: "red",
	TraceFrameLines:  "red",
	TraceSourceFile:  "cyan::b",
	TraceLineNumber:  "yellow::b",
	TraceFunction:    "green::b",

	UnitTestPass:      "green",
	UnitTestFail:      "red",
	UnitTestFailArrow: "red",

	ApplicationName:        "cyan::b",
	Version:                "cyan",
	File:                   "cyan::b",
	Var:                    "magenta",
	Value:                  "-",
	Added:                  "green",
	Updated:                "yellow",
	Removed:                "red",
	Skipped:                "blue",
	DiffAdd:                "green",
	DiffDelete:             "red",
	UserCommand:            "yellow::b",
	UserCommandError:       "red::u",
	UserCommandErrorMarker: "red",
	Yes:                    "green",
	No:                     "red",

	UsageCommand: "yellow::b",
	UsageOption:  "yellow",
	UsageFile:    "cyan::b",
	UsageVar:     "magenta",
}
