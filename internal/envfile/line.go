package envfile

// Line is one classified line of an env file.
// The set of implementations is closed: Blank, Comment and Pair.
type Line interface {
	isLine()
}

// Blank is an empty or whitespace-only line.
type Blank struct{}

// Comment is a line starting with '#'. Text holds the whole trimmed line,
// including the leading '#'.
type Comment struct {
	Text string
}

// Pair is a KEY=VALUE line. Key never contains '='; Value may.
type Pair struct {
	Key   string
	Value string
}

func (Blank) isLine()   {}
func (Comment) isLine() {}
func (Pair) isLine()    {}

// String renders the line the way it is written to disk.
func (Blank) String() string     { return "" }
func (c Comment) String() string { return c.Text }
func (p Pair) String() string    { return p.Key + "=" + p.Value }

// renderLine returns the on-disk text for any Line.
func renderLine(line Line) string {
	switch l := line.(type) {
	case Blank:
		return l.String()
	case Comment:
		return l.String()
	case Pair:
		return l.String()
	default:
		panic(unknownLine(line))
	}
}
