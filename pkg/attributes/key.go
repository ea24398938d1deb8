// Package attributes defines the presentation attributes a style can carry
// and the value types the terminal surface understands.
//
// The style engine never interprets attribute values. It stores them, copies
// them and hands them to a rendering surface. Check offers a type-tag
// validation per key that the engine runs as a debug assertion.
package attributes

import (
	"strings"

	"github.com/arthur-debert/texty/pkg/errors"
)

// Key identifies one recognized attribute
type Key int

const (
	Attachment Key = iota
	BackgroundColor
	BaselineOffset
	Expansion
	Font
	ForegroundColor
	Kern
	Ligature
	Link
	Obliqueness
	ParagraphStyle
	Shadow
	StrikethroughColor
	StrikethroughStyle
	StrokeColor
	StrokeWidth
	TextEffect
	UnderlineColor
	UnderlineStyle
	VerticalGlyphForm
	WritingDirection
)

var keyNames = [...]string{
	Attachment:         "attachment",
	BackgroundColor:    "backgroundColor",
	BaselineOffset:     "baselineOffset",
	Expansion:          "expansion",
	Font:               "font",
	ForegroundColor:    "foregroundColor",
	Kern:               "kern",
	Ligature:           "ligature",
	Link:               "link",
	Obliqueness:        "obliqueness",
	ParagraphStyle:     "paragraphStyle",
	Shadow:             "shadow",
	StrikethroughColor: "strikethroughColor",
	StrikethroughStyle: "strikethroughStyle",
	StrokeColor:        "strokeColor",
	StrokeWidth:        "strokeWidth",
	TextEffect:         "textEffect",
	UnderlineColor:     "underlineColor",
	UnderlineStyle:     "underlineStyle",
	VerticalGlyphForm:  "verticalGlyphForm",
	WritingDirection:   "writingDirection",
}

// String returns the attribute name as used in stylesheets
func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "unknown"
	}
	return keyNames[k]
}

// Valid reports whether k is one of the recognized keys
func (k Key) Valid() bool {
	return k >= 0 && int(k) < len(keyNames)
}

// Keys returns every recognized key in declaration order
func Keys() []Key {
	keys := make([]Key, len(keyNames))
	for i := range keyNames {
		keys[i] = Key(i)
	}
	return keys
}

// ParseKey looks up a key by name. Matching ignores case, so both
// "foregroundColor" and "foregroundcolor" are accepted.
func ParseKey(name string) (Key, error) {
	for i, n := range keyNames {
		if strings.EqualFold(n, name) {
			return Key(i), nil
		}
	}
	return 0, errors.Newf(errors.ErrUnknownAttribute, "unknown attribute %q", name).
		WithDetail("attribute", name)
}

// MarshalText implements encoding.TextMarshaler
func (k Key) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.Newf(errors.ErrUnknownAttribute, "unknown attribute key %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
