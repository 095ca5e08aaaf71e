package console

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

var (
	// semanticMap stores semantic tag -> style code mappings (e.g., "file" -> "cyan::b")
	semanticMap map[string]string

	// tagRegex matches, in one pass, {{_content_}} semantic tags,
	// {{|content|}} direct style codes and the {{[name]}} literals written by Escape
	tagRegex = regexp.MustCompile(`\{\{_[A-Za-z0-9_]+_\}\}|\{\{\|[A-Za-z0-9_:\-#]+\|\}\}|\{\{\[(?:lb|esc)\]\}\}`)

	// literals maps an escaped literal name back to the text it stands for
	literals = map[string]string{
		"lb":  "{",
		"esc": "\x1b",
	}

	escaper = strings.NewReplacer("{", "{{[lb]}}", "\x1b", "{{[esc]}}")

	// ansiRegex matches raw ANSI SGR sequences
	ansiRegex = regexp.MustCompile("\x1b\\[[0-9;]*m")

	// colorIndex maps color names to the ANSI palette index termenv expects
	colorIndex = map[string]string{
		"black":   "0",
		"red":     "1",
		"green":   "2",
		"yellow":  "3",
		"blue":    "4",
		"magenta": "5",
		"cyan":    "6",
		"white":   "7",
	}

	// flagMap maps style flags to ANSI codes
	flagMap = map[rune]string{
		'b': CodeBold,
		'd': CodeDim,
		'i': CodeItalic,
		'u': CodeUnderline,
		'l': CodeBlink,
		'r': CodeReverse,
	}
)

// BuildColorMap (re)builds the semantic tag table from Colors.
func BuildColorMap() {
	semanticMap = make(map[string]string)
	val := reflect.ValueOf(Colors)
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		semanticMap[strings.ToLower(typ.Field(i).Name)] = val.Field(i).String()
	}
}

func ensureMaps() {
	if semanticMap == nil {
		BuildColorMap()
	}
}

// RegisterSemanticTag registers a semantic tag with its style code.
func RegisterSemanticTag(name, style string) {
	ensureMaps()
	name = strings.TrimSuffix(strings.TrimPrefix(name, "_"), "_")
	semanticMap[strings.ToLower(name)] = style
}

// ResetCustomColors clears all registered tags and rebuilds them from Colors.
func ResetCustomColors() {
	BuildColorMap()
}

// ToANSI converts semantic and direct tags to ANSI escape sequences
// - {{_Tag_}} : Semantic lookup -> ANSI
// - {{|code|}} : Direct fg:bg:flags style -> ANSI
// Text passed through Escape comes out unchanged.
func ToANSI(text string) string {
	ensureMaps()
	if !isTTYGlobal {
		// Not a TTY, strip all codes
		return Strip(text)
	}

	return tagRegex.ReplaceAllStringFunc(text, func(match string) string {
		content := match[3 : len(match)-3]
		switch match[2] {
		case '_':
			if style, ok := semanticMap[strings.ToLower(content)]; ok {
				return parseStyleCodeToANSI(style)
			}
			// Unknown semantic tag - strip it
			return ""
		case '|':
			return parseStyleCodeToANSI(content)
		}
		return literals[content]
	})
}

// Strip removes all semantic and direct tags from text, as well as ANSI escape sequences.
// Escaped text is restored, not removed.
func Strip(text string) string {
	text = StripANSI(text)
	return tagRegex.ReplaceAllStringFunc(text, func(match string) string {
		if match[2] == '[' {
			return literals[match[3:len(match)-3]]
		}
		return ""
	})
}

// StripANSI removes raw ANSI SGR sequences and leaves tags alone.
func StripANSI(text string) string {
	return ansiRegex.ReplaceAllString(text, "")
}

// Escape protects text that is not markup, such as values read from a user's
// file, so that ToANSI and Strip give it back byte for byte.
func Escape(text string) string {
	return escaper.Replace(text)
}

// parseStyleCodeToANSI parses fg:bg:flags format and returns ANSI codes
func parseStyleCodeToANSI(content string) string {
	if content == "-" || content == "reset" {
		return CodeReset
	}

	parts := strings.Split(content, ":")
	var codes strings.Builder

	// Part 0: Foreground color
	if len(parts) > 0 && parts[0] != "" && parts[0] != "-" {
		codes.WriteString(colorSequence(parts[0], false))
	}

	// Part 1: Background color
	if len(parts) > 1 && parts[1] != "" && parts[1] != "-" {
		codes.WriteString(colorSequence(parts[1], true))
	}

	// Part 2: Flags (each character is a flag: b=bold, u=underline, etc.)
	if len(parts) > 2 {
		for _, flag := range strings.ToLower(parts[2]) {
			codes.WriteString(flagMap[flag])
		}
	}

	return codes.String()
}

// colorSequence resolves a color name or hex value through the preferred profile.
// Mono profiles yield no sequence.
func colorSequence(name string, background bool) string {
	name = strings.ToLower(name)
	if idx, ok := colorIndex[name]; ok {
		name = idx
	} else if !strings.HasPrefix(name, "#") {
		return ""
	}
	c := preferredProfile.Color(name)
	if c == nil {
		return ""
	}
	return wrapSequence(c.Sequence(background))
}

// wrapSequence ensures a color sequence part is wrapped in CSI delimiters
func wrapSequence(seq string) string {
	if seq == "" {
		return ""
	}
	if strings.HasPrefix(seq, "\x1b[") {
		return seq
	}
	return "\033[" + seq + "m"
}

// Sprintf formats according to a format specifier and returns the string with ANSI codes
func Sprintf(format string, a ...any) string {
	return ToANSI(fmt.Sprintf(format, a...))
}

// Println prints a line with ANSI color codes parsed
func Println(a ...any) {
	fmt.Println(ToANSI(fmt.Sprint(a...)))
}

// Parse is a convenience alias for ToANSI
func Parse(text string) string {
	return ToANSI(text)
}
