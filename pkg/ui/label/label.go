// Package label provides a text widget that keeps its output in sync with
// a style.
//
// A Label owns a private copy of the style it is given and observes it.
// Changing that style, through Style() or the convenience setters,
// re-renders the label's tagged text to its writer.
package label

import (
	"fmt"
	"io"

	"github.com/arthur-debert/texty/pkg/attributes"
	"github.com/arthur-debert/texty/pkg/logging"
	"github.com/arthur-debert/texty/pkg/render"
	"github.com/arthur-debert/texty/pkg/style"
	"github.com/charmbracelet/lipgloss"
)

// Label renders tagged text with a style it owns
type Label struct {
	out      io.Writer
	renderer *render.Renderer
	style    *style.Style
	text     *string

	rendered *style.Rendered
	err      error
	draws    int
}

// New creates a label drawing to w. The label keeps a copy of s; a nil s
// starts from an empty style. Unset paragraph attributes default to
// natural alignment and tail truncation.
func New(w io.Writer, s *style.Style, opts ...render.Option) *Label {
	l := &Label{
		out:      w,
		renderer: render.NewRenderer(w, opts...),
	}
	l.SetStyle(s)
	return l
}

// SetStyle replaces the label's style with a copy of s and redraws
func (l *Label) SetStyle(s *style.Style) {
	if l.style != nil {
		l.style.SetObserver(nil)
	}
	if s == nil {
		s = style.New(nil)
	}

	l.style = s.Copy()
	if l.style.ParagraphStyle() == nil {
		l.style.SetParagraphStyle(&attributes.ParagraphStyleValue{
			Alignment: attributes.AlignNatural,
			LineBreak: attributes.BreakTruncateTail,
		})
	}
	l.style.SetObserver(l)
	l.redraw()
}

// Style returns the style the label owns. Mutating it redraws the label.
func (l *Label) Style() *style.Style {
	return l.style
}

// SetText sets the tagged text and redraws
func (l *Label) SetText(text string) {
	l.text = &text
	l.redraw()
}

// ClearText removes the text. Nothing is drawn until new text is set.
func (l *Label) ClearText() {
	l.text = nil
	l.rendered = nil
	l.err = nil
}

// TaggedText returns the text as set, tags included
func (l *Label) TaggedText() (string, bool) {
	if l.text == nil {
		return "", false
	}
	return *l.text, true
}

// Text returns the text with tags stripped
func (l *Label) Text() string {
	if l.rendered == nil {
		return ""
	}
	return l.rendered.Text
}

// Rendered returns the last resolution of the text
func (l *Label) Rendered() *style.Rendered {
	return l.rendered
}

// Err returns the error of the last resolution, if it failed
func (l *Label) Err() error {
	return l.err
}

// Draws counts how many times the label has written itself
func (l *Label) Draws() int {
	return l.draws
}

// SetForegroundColor sets the text color of the label's style
func (l *Label) SetForegroundColor(c lipgloss.TerminalColor) {
	l.style.SetForegroundColor(c)
}

// SetFont sets the font of the label's style
func (l *Label) SetFont(font attributes.FontDescriptor) {
	l.style.SetFont(font)
}

// SetAlignment changes the alignment of the label's paragraph style
func (l *Label) SetAlignment(a attributes.Alignment) {
	p := l.paragraph()
	p.Alignment = a
	l.style.SetParagraphStyle(p)
}

// SetLineBreak changes how the label's paragraph breaks long lines
func (l *Label) SetLineBreak(b attributes.LineBreak) {
	p := l.paragraph()
	p.LineBreak = b
	l.style.SetParagraphStyle(p)
}

// SetWidth changes the width of the label's paragraph
func (l *Label) SetWidth(width int) {
	p := l.paragraph()
	p.Width = width
	l.style.SetParagraphStyle(p)
}

// Close detaches the label from its style. The style can still be used,
// but changes no longer redraw the label.
func (l *Label) Close() {
	l.style.SetObserver(nil)
}

// StyleUpdated implements style.Observer
func (l *Label) StyleUpdated(*style.Style) {
	l.redraw()
}

// paragraph returns a copy of the current paragraph style to edit
func (l *Label) paragraph() *attributes.ParagraphStyleValue {
	if p := l.style.ParagraphStyle(); p != nil {
		return p.Clone()
	}
	return &attributes.ParagraphStyleValue{}
}

func (l *Label) redraw() {
	if l.text == nil {
		return
	}

	logger := logging.GetLogger("label")

	res, err := l.style.Resolve(l.text)
	if err != nil {
		logger.Warn().Err(err).Msg("Label text could not be resolved")
		l.rendered = nil
		l.err = err
		return
	}
	l.rendered = res
	l.err = nil

	if _, err := fmt.Fprintln(l.out, l.renderer.Render(res)); err != nil {
		logger.Error().Err(err).Msg("Failed to draw label")
		return
	}
	l.draws++
}
