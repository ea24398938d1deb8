package attributes

import (
	"fmt"
	"net/url"
	"reflect"

	"github.com/arthur-debert/texty/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

// Kind is the expected value type of a key
type Kind int

const (
	KindColor Kind = iota
	KindNumber
	KindFont
	KindLink
	KindParagraphStyle
	KindShadow
	KindAttachment
	KindTextEffect
	KindWritingDirection
)

// String returns a description of the accepted Go types
func (k Kind) String() string {
	switch k {
	case KindColor:
		return "lipgloss.TerminalColor"
	case KindNumber:
		return "number"
	case KindFont:
		return "FontDescriptor"
	case KindLink:
		return "string or *url.URL"
	case KindParagraphStyle:
		return "*ParagraphStyleValue"
	case KindShadow:
		return "*ShadowValue"
	case KindAttachment:
		return "AttachmentValue"
	case KindTextEffect:
		return "string"
	case KindWritingDirection:
		return "[]int"
	default:
		return "unknown"
	}
}

// Kind returns the value kind the key expects
func (k Key) Kind() Kind {
	switch k {
	case BackgroundColor, ForegroundColor, StrikethroughColor, StrokeColor, UnderlineColor:
		return KindColor
	case BaselineOffset, Expansion, Kern, Ligature, Obliqueness, StrikethroughStyle,
		StrokeWidth, UnderlineStyle, VerticalGlyphForm:
		return KindNumber
	case Font:
		return KindFont
	case Link:
		return KindLink
	case ParagraphStyle:
		return KindParagraphStyle
	case Shadow:
		return KindShadow
	case Attachment:
		return KindAttachment
	case TextEffect:
		return KindTextEffect
	default:
		return KindWritingDirection
	}
}

// Check reports whether value has the type expected for key. A nil value
// clears an attribute and is always accepted.
func Check(key Key, value any) error {
	if value == nil {
		return nil
	}
	if !key.Valid() {
		return errors.Newf(errors.ErrUnknownAttribute, "unknown attribute key %d", int(key))
	}
	if isKind(key.Kind(), value) {
		return nil
	}
	return errors.Newf(errors.ErrInvalidAttribute,
		"value for attribute %q is %T, should be %s", key, value, key.Kind()).
		WithDetail("attribute", key.String()).
		WithDetail("type", fmt.Sprintf("%T", value))
}

func isKind(kind Kind, value any) bool {
	switch kind {
	case KindColor:
		_, ok := value.(lipgloss.TerminalColor)
		return ok
	case KindNumber:
		_, ok := Number(value)
		return ok
	case KindFont:
		switch value.(type) {
		case FontDescriptor, *FontDescriptor:
			return true
		}
	case KindLink:
		switch value.(type) {
		case string, *url.URL, url.URL:
			return true
		}
	case KindParagraphStyle:
		switch value.(type) {
		case *ParagraphStyleValue, ParagraphStyleValue:
			return true
		}
	case KindShadow:
		switch value.(type) {
		case *ShadowValue, ShadowValue:
			return true
		}
	case KindAttachment:
		switch value.(type) {
		case AttachmentValue, *AttachmentValue:
			return true
		}
	case KindTextEffect:
		_, ok := value.(string)
		return ok
	case KindWritingDirection:
		_, ok := value.([]int)
		return ok
	}
	return false
}

// Number converts any Go numeric value to float64
func Number(value any) (float64, bool) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}
