package attributes

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Describe formats an attribute value for diagnostics and exports
func Describe(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case lipgloss.Color:
		return string(v)
	case lipgloss.AdaptiveColor:
		return v.Light + "/" + v.Dark
	case lipgloss.NoColor:
		return "none"
	case FontDescriptor:
		return describeFont(v)
	case *FontDescriptor:
		return describeFont(*v)
	case *ParagraphStyleValue:
		return fmt.Sprintf("align=%s break=%s width=%d indent=%d", v.Alignment, v.LineBreak, v.Width, v.Indent)
	case *ShadowValue:
		return fmt.Sprintf("color=%s offset=%gx%g blur=%g", Describe(v.Color), v.OffsetX, v.OffsetY, v.Blur)
	case AttachmentValue:
		return fmt.Sprintf("%q", v.Placeholder)
	case *AttachmentValue:
		return fmt.Sprintf("%q", v.Placeholder)
	case *url.URL:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func describeFont(f FontDescriptor) string {
	var parts []string
	if f.Family != "" {
		parts = append(parts, f.Family)
	}
	if f.Size > 0 {
		parts = append(parts, fmt.Sprintf("%gpt", f.Size))
	}
	for _, flag := range []struct {
		on   bool
		name string
	}{{f.Bold, "bold"}, {f.Italic, "italic"}, {f.Faint, "faint"}} {
		if flag.on {
			parts = append(parts, flag.name)
		}
	}
	if len(parts) == 0 {
		return "regular"
	}
	return strings.Join(parts, " ")
}
