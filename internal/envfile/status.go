package envfile

import "fmt"

// StatusKind classifies the outcome of a mutation.
type StatusKind int

const (
	// Unchanged means the call was a no-op.
	Unchanged StatusKind = iota
	// Added means a new pair was appended.
	Added
	// Updated means an existing pair got a new value.
	Updated
	// Skipped means the change was refused; see Status.Reason.
	Skipped
	// Removed means one or more pairs were deleted; see Status.Count.
	Removed
)

func (k StatusKind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Updated:
		return "updated"
	case Skipped:
		return "skipped"
	case Removed:
		return "removed"
	}
	return fmt.Sprintf("StatusKind(%d)", int(k))
}

// Status describes what Add or Remove did.
type Status struct {
	Kind   StatusKind
	Key    string
	Value  string // new value for Added and Updated
	Count  int    // number of lines deleted for Removed
	Reason string // why a Skipped change was refused
}

// ReasonExists is the Reason of a Skipped Add that would have blanked a
// filled-in value.
const ReasonExists = "already exists"

// Changed reports whether the mutation modified the Document.
func (s Status) Changed() bool {
	return s.Kind == Added || s.Kind == Updated || s.Kind == Removed
}

// Message renders the status as a one-line message prefixed with path.
// It returns "" for Unchanged.
func (s Status) Message(path string) string {
	switch s.Kind {
	case Added:
		return fmt.Sprintf("%s: Added %s=%s", path, s.Key, s.Value)
	case Updated:
		return fmt.Sprintf("%s: Updated %s=%s", path, s.Key, s.Value)
	case Skipped:
		return fmt.Sprintf("%s: %s %s", path, s.Key, s.Reason)
	case Removed:
		return fmt.Sprintf("%s: Removed %s", path, s.Key)
	}
	return ""
}
