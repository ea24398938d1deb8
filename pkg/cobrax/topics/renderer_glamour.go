package topics

import (
	"github.com/arthur-debert/texty/pkg/logging"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// GlamourRenderer uses the glamour library for rich markdown rendering
type GlamourRenderer struct {
	Style string // "auto", a standard style name ("dark", "light", "notty") or a style file
	Width int    // Wrap width (0 = glamour's default)
}

// NewGlamourRenderer creates a markdown renderer using glamour with auto-detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to terminal output. Other formats, and markdown
// glamour fails on, are returned unchanged.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	switch {
	case r.Style == "" || r.Style == "auto":
		options = append(options, glamour.WithAutoStyle())
	case isStandardStyle(r.Style):
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	logger := logging.GetLogger("topics")

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		logger.Debug().Err(err).Msg("Falling back to plain topic output")
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		logger.Debug().Err(err).Msg("Falling back to plain topic output")
		return content
	}
	return rendered
}

func isStandardStyle(name string) bool {
	_, ok := styles.DefaultStyles[name]
	return ok
}
