package style

import (
	"github.com/arthur-debert/texty/pkg/attributes"
	"github.com/charmbracelet/lipgloss"
)

// Typed accessors for the attributes surfaces use most. Getters return the
// zero value when the attribute is unset or holds another type.

func (s *Style) Font() (attributes.FontDescriptor, bool) {
	return attributes.Get[attributes.FontDescriptor](s.attrs, attributes.Font)
}

func (s *Style) SetFont(font attributes.FontDescriptor) {
	s.SetAttribute(attributes.Font, font)
}

func (s *Style) ForegroundColor() lipgloss.TerminalColor {
	c, _ := attributes.Get[lipgloss.TerminalColor](s.attrs, attributes.ForegroundColor)
	return c
}

// SetForegroundColor sets the text color. A nil color clears it.
func (s *Style) SetForegroundColor(c lipgloss.TerminalColor) {
	s.SetAttribute(attributes.ForegroundColor, nilIfNoColor(c))
}

func (s *Style) BackgroundColor() lipgloss.TerminalColor {
	c, _ := attributes.Get[lipgloss.TerminalColor](s.attrs, attributes.BackgroundColor)
	return c
}

// SetBackgroundColor sets the background color. A nil color clears it.
func (s *Style) SetBackgroundColor(c lipgloss.TerminalColor) {
	s.SetAttribute(attributes.BackgroundColor, nilIfNoColor(c))
}

func (s *Style) ParagraphStyle() *attributes.ParagraphStyleValue {
	p, _ := attributes.Get[*attributes.ParagraphStyleValue](s.attrs, attributes.ParagraphStyle)
	return p
}

// SetParagraphStyle stores p. The style keeps the pointer; clone it first
// if the caller goes on mutating it.
func (s *Style) SetParagraphStyle(p *attributes.ParagraphStyleValue) {
	if p == nil {
		s.SetAttribute(attributes.ParagraphStyle, nil)
		return
	}
	s.SetAttribute(attributes.ParagraphStyle, p)
}

func (s *Style) Shadow() *attributes.ShadowValue {
	v, _ := attributes.Get[*attributes.ShadowValue](s.attrs, attributes.Shadow)
	return v
}

func (s *Style) SetShadow(v *attributes.ShadowValue) {
	if v == nil {
		s.SetAttribute(attributes.Shadow, nil)
		return
	}
	s.SetAttribute(attributes.Shadow, v)
}

func (s *Style) Link() (string, bool) {
	return attributes.Get[string](s.attrs, attributes.Link)
}

func (s *Style) SetLink(target string) {
	if target == "" {
		s.SetAttribute(attributes.Link, nil)
		return
	}
	s.SetAttribute(attributes.Link, target)
}

func (s *Style) Kern() float64 {
	n, _ := attributes.Number(s.attrs[attributes.Kern])
	return n
}

func (s *Style) SetKern(k float64) {
	s.SetAttribute(attributes.Kern, k)
}

func (s *Style) UnderlineStyle() int {
	n, _ := attributes.Number(s.attrs[attributes.UnderlineStyle])
	return int(n)
}

func (s *Style) SetUnderlineStyle(v int) {
	s.SetAttribute(attributes.UnderlineStyle, v)
}

func (s *Style) StrikethroughStyle() int {
	n, _ := attributes.Number(s.attrs[attributes.StrikethroughStyle])
	return int(n)
}

func (s *Style) SetStrikethroughStyle(v int) {
	s.SetAttribute(attributes.StrikethroughStyle, v)
}

func (s *Style) Obliqueness() float64 {
	n, _ := attributes.Number(s.attrs[attributes.Obliqueness])
	return n
}

func (s *Style) SetObliqueness(v float64) {
	s.SetAttribute(attributes.Obliqueness, v)
}

// nilIfNoColor turns a nil interface into an untyped nil so SetAttribute
// clears the key.
func nilIfNoColor(c lipgloss.TerminalColor) any {
	if c == nil {
		return nil
	}
	return c
}
