package attributes

import "github.com/charmbracelet/lipgloss"

// Cloner is implemented by mutable attribute values. Copying a style clones
// such values instead of sharing them.
type Cloner interface {
	CloneAttribute() any
}

// FontDescriptor describes the face used for a run of text. Terminals only
// honor the weight and slant flags.
type FontDescriptor struct {
	Family string  `mapstructure:"family" yaml:"family,omitempty" toml:"family,omitempty"`
	Size   float64 `mapstructure:"size" yaml:"size,omitempty" toml:"size,omitempty"`
	Bold   bool    `mapstructure:"bold" yaml:"bold,omitempty" toml:"bold,omitempty"`
	Italic bool    `mapstructure:"italic" yaml:"italic,omitempty" toml:"italic,omitempty"`
	Faint  bool    `mapstructure:"faint" yaml:"faint,omitempty" toml:"faint,omitempty"`
}

// Alignment is the horizontal alignment of a paragraph
type Alignment string

const (
	AlignNatural   Alignment = "natural"
	AlignLeft      Alignment = "left"
	AlignCenter    Alignment = "center"
	AlignRight     Alignment = "right"
	AlignJustified Alignment = "justified"
)

// LineBreak is how a paragraph wider than its box is broken
type LineBreak string

const (
	BreakWordWrap     LineBreak = "wordWrap"
	BreakCharWrap     LineBreak = "charWrap"
	BreakClip         LineBreak = "clip"
	BreakTruncateTail LineBreak = "truncateTail"
)

// ParagraphStyleValue carries paragraph level layout. It is mutable, so
// styles holding one clone it when copied.
type ParagraphStyleValue struct {
	Alignment Alignment `mapstructure:"alignment" yaml:"alignment,omitempty" toml:"alignment,omitempty"`
	LineBreak LineBreak `mapstructure:"lineBreak" yaml:"lineBreak,omitempty" toml:"lineBreak,omitempty"`
	Width     int       `mapstructure:"width" yaml:"width,omitempty" toml:"width,omitempty"`
	Indent    int       `mapstructure:"indent" yaml:"indent,omitempty" toml:"indent,omitempty"`
}

// Clone returns an independent copy
func (p *ParagraphStyleValue) Clone() *ParagraphStyleValue {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// CloneAttribute implements Cloner
func (p *ParagraphStyleValue) CloneAttribute() any {
	return p.Clone()
}

// ShadowValue describes a drop shadow. It is mutable and cloned on copy.
type ShadowValue struct {
	Color   lipgloss.TerminalColor `mapstructure:"-" yaml:"-" toml:"-"`
	OffsetX float64                `mapstructure:"offsetX" yaml:"offsetX,omitempty" toml:"offsetX,omitempty"`
	OffsetY float64                `mapstructure:"offsetY" yaml:"offsetY,omitempty" toml:"offsetY,omitempty"`
	Blur    float64                `mapstructure:"blur" yaml:"blur,omitempty" toml:"blur,omitempty"`
}

// Clone returns an independent copy
func (s *ShadowValue) Clone() *ShadowValue {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// CloneAttribute implements Cloner
func (s *ShadowValue) CloneAttribute() any {
	return s.Clone()
}

// AttachmentValue is inline content placed at a zero-length marker such as
// <bullet/>. Terminal surfaces print the placeholder.
type AttachmentValue struct {
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder" toml:"placeholder"`
}
