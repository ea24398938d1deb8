/*
Package render draws resolved text on output surfaces.

The terminal Renderer maps attribute runs onto lipgloss styles bound to its
own writer, so color downsampling follows that writer's color profile:

	rendered, err := root.ResolveString("Hello <b>world</b>")
	r := render.NewRenderer(os.Stdout, render.WithWidth(60))
	fmt.Println(r.Render(rendered))

Attributes terminals cannot show (kern, shadows, glyph forms) are ignored.
Links become OSC 8 hyperlinks when the profile supports color. Zero-length
markers such as <bullet/> print their attachment placeholder.

Paragraph attributes (alignment, width, line breaking, indent) apply to the
whole text. They come from the base style, or from a span that covers all
of the text.

WriteXML exports the same information as an XML document for tooling.
*/
package render
