package stylesheet

import (
	"github.com/arthur-debert/texty/pkg/attributes"
)

// ColorDef is an adaptive color: one value for light backgrounds and one
// for dark ones.
type ColorDef struct {
	Light string `mapstructure:"light" yaml:"light" toml:"light"`
	Dark  string `mapstructure:"dark" yaml:"dark" toml:"dark"`
}

// ShadowDef is the serialized form of attributes.ShadowValue
type ShadowDef struct {
	Color   string  `mapstructure:"color" yaml:"color,omitempty" toml:"color,omitempty"`
	OffsetX float64 `mapstructure:"offsetX" yaml:"offsetX,omitempty" toml:"offsetX,omitempty"`
	OffsetY float64 `mapstructure:"offsetY" yaml:"offsetY,omitempty" toml:"offsetY,omitempty"`
	Blur    float64 `mapstructure:"blur" yaml:"blur,omitempty" toml:"blur,omitempty"`
}

// StyleDef describes the attributes of one style and the styles of the
// tags nested in it. Unset fields leave the attribute unset.
type StyleDef struct {
	Foreground         string `mapstructure:"foreground" yaml:"foreground,omitempty" toml:"foreground,omitempty"`
	Background         string `mapstructure:"background" yaml:"background,omitempty" toml:"background,omitempty"`
	UnderlineColor     string `mapstructure:"underlineColor" yaml:"underlineColor,omitempty" toml:"underlineColor,omitempty"`
	StrikethroughColor string `mapstructure:"strikethroughColor" yaml:"strikethroughColor,omitempty" toml:"strikethroughColor,omitempty"`
	StrokeColor        string `mapstructure:"strokeColor" yaml:"strokeColor,omitempty" toml:"strokeColor,omitempty"`

	Font *attributes.FontDescriptor `mapstructure:"font" yaml:"font,omitempty" toml:"font,omitempty"`

	Underline      *int     `mapstructure:"underline" yaml:"underline,omitempty" toml:"underline,omitempty"`
	Strikethrough  *int     `mapstructure:"strikethrough" yaml:"strikethrough,omitempty" toml:"strikethrough,omitempty"`
	Kern           *float64 `mapstructure:"kern" yaml:"kern,omitempty" toml:"kern,omitempty"`
	BaselineOffset *float64 `mapstructure:"baselineOffset" yaml:"baselineOffset,omitempty" toml:"baselineOffset,omitempty"`
	Obliqueness    *float64 `mapstructure:"obliqueness" yaml:"obliqueness,omitempty" toml:"obliqueness,omitempty"`
	Expansion      *float64 `mapstructure:"expansion" yaml:"expansion,omitempty" toml:"expansion,omitempty"`
	StrokeWidth    *float64 `mapstructure:"strokeWidth" yaml:"strokeWidth,omitempty" toml:"strokeWidth,omitempty"`
	Ligature       *int     `mapstructure:"ligature" yaml:"ligature,omitempty" toml:"ligature,omitempty"`
	VerticalGlyphs *int     `mapstructure:"verticalGlyphForm" yaml:"verticalGlyphForm,omitempty" toml:"verticalGlyphForm,omitempty"`

	Link             string `mapstructure:"link" yaml:"link,omitempty" toml:"link,omitempty"`
	TextEffect       string `mapstructure:"textEffect" yaml:"textEffect,omitempty" toml:"textEffect,omitempty"`
	WritingDirection []int  `mapstructure:"writingDirection" yaml:"writingDirection,omitempty" toml:"writingDirection,omitempty"`

	Paragraph  *attributes.ParagraphStyleValue `mapstructure:"paragraph" yaml:"paragraph,omitempty" toml:"paragraph,omitempty"`
	Shadow     *ShadowDef                      `mapstructure:"shadow" yaml:"shadow,omitempty" toml:"shadow,omitempty"`
	Attachment *attributes.AttachmentValue     `mapstructure:"attachment" yaml:"attachment,omitempty" toml:"attachment,omitempty"`

	Tags map[string]StyleDef `mapstructure:"tags" yaml:"tags,omitempty" toml:"tags,omitempty"`
}

// Sheet is a complete stylesheet
type Sheet struct {
	Name   string              `mapstructure:"name" yaml:"name,omitempty" toml:"name,omitempty"`
	Policy string              `mapstructure:"policy" yaml:"policy,omitempty" toml:"policy,omitempty"`
	Colors map[string]ColorDef `mapstructure:"colors" yaml:"colors,omitempty" toml:"colors,omitempty"`
	Base   StyleDef            `mapstructure:"base" yaml:"base,omitempty" toml:"base,omitempty"`
	Tags   map[string]StyleDef `mapstructure:"tags" yaml:"tags,omitempty" toml:"tags,omitempty"`
}

// TagNames returns the names of the top level tags, sorted
func (s *Sheet) TagNames() []string {
	return sortedKeys(s.Tags)
}
