package render

import (
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/arthur-debert/texty/pkg/attributes"
	"github.com/arthur-debert/texty/pkg/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Option configures a Renderer
type Option func(*Renderer)

// WithWidth wraps text at width cells unless the paragraph style sets its
// own width. Zero disables wrapping.
func WithWidth(width int) Option {
	return func(r *Renderer) { r.width = width }
}

// WithColorProfile forces a color profile instead of detecting it from the writer
func WithColorProfile(p termenv.Profile) Option {
	return func(r *Renderer) { r.lg.SetColorProfile(p) }
}

// WithDarkBackground tells adaptive colors which variant to use
func WithDarkBackground(dark bool) Option {
	return func(r *Renderer) { r.lg.SetHasDarkBackground(dark) }
}

// WithHyperlinks turns OSC 8 hyperlinks on or off
func WithHyperlinks(on bool) Option {
	return func(r *Renderer) { r.hyperlinks = on }
}

// WithPlain drops all styling and keeps only text, placeholders and layout
func WithPlain() Option {
	return func(r *Renderer) { r.plain = true }
}

// Renderer draws resolved text for a terminal
type Renderer struct {
	lg         *lipgloss.Renderer
	width      int
	hyperlinks bool
	plain      bool
}

// NewRenderer creates a renderer whose color profile is detected from w
func NewRenderer(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		lg:         lipgloss.NewRenderer(w),
		hyperlinks: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ForFormat creates a renderer suited to a resolved output format
func ForFormat(w io.Writer, f Format, opts ...Option) *Renderer {
	if f == FormatText {
		opts = append(opts, WithPlain())
	}
	return NewRenderer(w, opts...)
}

// Profile returns the color profile output is downsampled to
func (r *Renderer) Profile() termenv.Profile {
	return r.lg.ColorProfile()
}

// Render draws res. A nil result renders as the empty string.
func (r *Renderer) Render(res *style.Rendered) string {
	if res == nil {
		return ""
	}

	markers := res.Markers()
	sort.SliceStable(markers, func(i, j int) bool {
		return markers[i].Range.Start < markers[j].Range.Start
	})

	var b strings.Builder
	next := 0
	flush := func(pos int) {
		for ; next < len(markers) && markers[next].Range.Start <= pos; next++ {
			b.WriteString(r.placeholder(res.Base, markers[next]))
		}
	}

	for _, run := range res.Runs() {
		flush(run.Range.Start)
		b.WriteString(r.renderRun(run.Text, run.Attributes))
	}
	flush(res.Len())

	return r.layout(b.String(), paragraphOf(res))
}

func (r *Renderer) placeholder(base attributes.Attributes, marker style.AppliedSpan) string {
	var text string
	switch v := marker.Attributes[attributes.Attachment].(type) {
	case attributes.AttachmentValue:
		text = v.Placeholder
	case *attributes.AttachmentValue:
		text = v.Placeholder
	}
	if text == "" {
		return ""
	}
	return r.renderRun(text, base.Merge(marker.Attributes))
}

func (r *Renderer) renderRun(text string, attrs attributes.Attributes) string {
	if r.plain {
		return text
	}

	// lipgloss pads multi-line blocks to their widest line, so each line
	// is styled on its own
	st := r.styleFor(attrs)
	link := linkOf(attrs)
	linked := link != "" && r.hyperlinks && r.Profile() != termenv.Ascii

	return eachLine(text, func(line string) string {
		if line == "" {
			return line
		}
		out := st.Render(line)
		if linked {
			out = termenv.Hyperlink(link, out)
		}
		return out
	})
}

// styleFor maps attributes onto the lipgloss properties terminals support
func (r *Renderer) styleFor(attrs attributes.Attributes) lipgloss.Style {
	st := r.lg.NewStyle().TabWidth(lipgloss.NoTabConversion)

	if c, ok := attributes.Get[lipgloss.TerminalColor](attrs, attributes.ForegroundColor); ok {
		st = st.Foreground(c)
	}
	if c, ok := attributes.Get[lipgloss.TerminalColor](attrs, attributes.BackgroundColor); ok {
		st = st.Background(c)
	}

	if font, ok := fontOf(attrs); ok {
		st = st.Bold(font.Bold).Italic(font.Italic).Faint(font.Faint)
	}

	if n, _ := attributes.Number(attrs[attributes.UnderlineStyle]); n != 0 {
		st = st.Underline(true)
	}
	if n, _ := attributes.Number(attrs[attributes.StrikethroughStyle]); n != 0 {
		st = st.Strikethrough(true)
	}

	switch attrs[attributes.TextEffect] {
	case "blink":
		st = st.Blink(true)
	case "reverse":
		st = st.Reverse(true)
	}

	return st
}

func (r *Renderer) layout(s string, para attributes.ParagraphStyleValue) string {
	width := r.width
	if para.Width > 0 {
		width = para.Width
	}
	width -= para.Indent

	if width > 0 {
		switch para.LineBreak {
		case attributes.BreakClip:
			s = eachLine(s, func(line string) string { return ansi.Truncate(line, width, "") })
		case attributes.BreakTruncateTail:
			s = eachLine(s, func(line string) string { return ansi.Truncate(line, width, "…") })
		case attributes.BreakCharWrap:
			s = ansi.Hardwrap(s, width, true)
		default:
			s = ansi.Wrap(s, width, "")
		}

		switch para.Alignment {
		case attributes.AlignCenter:
			s = r.lg.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
		case attributes.AlignRight:
			s = r.lg.NewStyle().Width(width).Align(lipgloss.Right).Render(s)
		}
	}

	if para.Indent > 0 {
		pad := strings.Repeat(" ", para.Indent)
		s = eachLine(s, func(line string) string { return pad + line })
	}
	return s
}

// paragraphOf returns the paragraph style in effect for the whole text
func paragraphOf(res *style.Rendered) attributes.ParagraphStyleValue {
	para, _ := paragraphValue(res.Base[attributes.ParagraphStyle])

	whole := res.Len()
	for _, sp := range res.Spans {
		if whole == 0 || sp.Range.Start != 0 || sp.Range.Length != whole {
			continue
		}
		if p, ok := paragraphValue(sp.Attributes[attributes.ParagraphStyle]); ok {
			para = p
		}
	}
	return para
}

func paragraphValue(v any) (attributes.ParagraphStyleValue, bool) {
	switch p := v.(type) {
	case attributes.ParagraphStyleValue:
		return p, true
	case *attributes.ParagraphStyleValue:
		if p != nil {
			return *p, true
		}
	}
	return attributes.ParagraphStyleValue{}, false
}

func fontOf(attrs attributes.Attributes) (attributes.FontDescriptor, bool) {
	switch f := attrs[attributes.Font].(type) {
	case attributes.FontDescriptor:
		return f, true
	case *attributes.FontDescriptor:
		if f != nil {
			return *f, true
		}
	}
	return attributes.FontDescriptor{}, false
}

func linkOf(attrs attributes.Attributes) string {
	switch v := attrs[attributes.Link].(type) {
	case string:
		return v
	case *url.URL:
		if v != nil {
			return v.String()
		}
	case url.URL:
		return v.String()
	}
	return ""
}

func eachLine(s string, fn func(string) string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = fn(line)
	}
	return strings.Join(lines, "\n")
}
