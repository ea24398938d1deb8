package topics

import (
	"bytes"

	"github.com/arthur-debert/texty/pkg/logging"
	"github.com/arthur-debert/texty/pkg/render"
	"github.com/arthur-debert/texty/pkg/style"
)

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and returns formatted content for terminal display
	Render(content string, format string) string
}

// PlainRenderer is the default renderer that returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// MarkupRenderer renders ".texty" topics, written in tag markup, with a
// style tree. Other formats go to Next.
type MarkupRenderer struct {
	Style   *style.Style
	Options []render.Option
	Next    Renderer
}

// Render resolves the topic's tags. Malformed topics are shown as written.
func (r *MarkupRenderer) Render(content string, format string) string {
	if format != ".texty" {
		if r.Next == nil {
			return content
		}
		return r.Next.Render(content, format)
	}

	res, err := r.Style.ResolveString(content)
	if err != nil {
		logger := logging.GetLogger("topics")
		logger.Warn().Err(err).Msg("Help topic has malformed markup")
		return content
	}

	var buf bytes.Buffer
	return render.NewRenderer(&buf, r.Options...).Render(res)
}
