package markup

import "strings"

// TagKind classifies a scanned tag token. A tag has exactly one kind, so it
// can never be both closing and self-closing.
type TagKind int

const (
	// Opening starts a ranged region: <name>
	Opening TagKind = iota
	// Closing ends a ranged region: </name>
	Closing
	// SelfClosing marks a zero-length position: <name/>
	SelfClosing
)

// String returns the string representation of the kind
func (k TagKind) String() string {
	switch k {
	case Opening:
		return "opening"
	case Closing:
		return "closing"
	case SelfClosing:
		return "self-closing"
	default:
		return "unknown"
	}
}

// Tag is a single markup marker found while scanning.
type Tag struct {
	Name string
	Kind TagKind

	// Offset is the byte position in the stripped output where the tag sat.
	Offset int

	// Source is the byte position of the tag's '<' in the original input.
	Source int
}

// Matches reports whether two tags refer to the same name. Kind and
// position are ignored.
func (t Tag) Matches(other Tag) bool {
	return t.Name == other.Name
}

// parseTag classifies the text between '<' and '>'.
func parseTag(token string, offset, source int) Tag {
	kind := Opening
	name := token

	if strings.HasPrefix(name, "/") {
		kind = Closing
		name = name[1:]
	} else if strings.HasSuffix(name, "/") {
		kind = SelfClosing
		name = name[:len(name)-1]
	}

	return Tag{
		Name:   strings.TrimSpace(name),
		Kind:   kind,
		Offset: offset,
		Source: source,
	}
}
