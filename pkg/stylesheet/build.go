package stylesheet

import (
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/texty/pkg/attributes"
	"github.com/arthur-debert/texty/pkg/errors"
	"github.com/arthur-debert/texty/pkg/logging"
	"github.com/arthur-debert/texty/pkg/style"
	"github.com/charmbracelet/lipgloss"
)

// Build turns the sheet into a style tree rooted at the base style
func (s *Sheet) Build() (*style.Style, error) {
	logger := logging.GetLogger("stylesheet")

	policy, err := style.ParsePolicy(s.Policy)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrStylesheetInvalid, "invalid stylesheet policy")
	}

	root, err := s.buildStyle(s.Base, "base")
	if err != nil {
		return nil, err
	}
	root.SetPolicy(policy)

	for _, name := range sortedKeys(s.Tags) {
		child, err := s.buildStyle(s.Tags[name], "tags."+name)
		if err != nil {
			return nil, err
		}
		root.SetChildStyle(name, child)
	}

	logger.Debug().
		Str("sheet", s.Name).
		Int("tags", len(s.Tags)).
		Str("policy", policy.String()).
		Msg("Stylesheet built")

	return root, nil
}

func (s *Sheet) buildStyle(def StyleDef, path string) (*style.Style, error) {
	attrs, err := s.attributes(def, path)
	if err != nil {
		return nil, err
	}

	st := style.New(attrs)
	for _, name := range sortedKeys(def.Tags) {
		child, err := s.buildStyle(def.Tags[name], path+".tags."+name)
		if err != nil {
			return nil, err
		}
		st.SetChildStyle(name, child)
	}
	return st, nil
}

func (s *Sheet) attributes(def StyleDef, path string) (attributes.Attributes, error) {
	attrs := attributes.Attributes{}

	colors := []struct {
		key   attributes.Key
		field string
		ref   string
	}{
		{attributes.ForegroundColor, "foreground", def.Foreground},
		{attributes.BackgroundColor, "background", def.Background},
		{attributes.UnderlineColor, "underlineColor", def.UnderlineColor},
		{attributes.StrikethroughColor, "strikethroughColor", def.StrikethroughColor},
		{attributes.StrokeColor, "strokeColor", def.StrokeColor},
	}
	for _, c := range colors {
		if c.ref == "" {
			continue
		}
		color, err := s.Color(c.ref)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrStylesheetInvalid, "invalid color").
				WithDetail("path", path+"."+c.field)
		}
		attrs[c.key] = color
	}

	if def.Font != nil {
		attrs[attributes.Font] = *def.Font
	}

	ints := map[attributes.Key]*int{
		attributes.UnderlineStyle:     def.Underline,
		attributes.StrikethroughStyle: def.Strikethrough,
		attributes.Ligature:           def.Ligature,
		attributes.VerticalGlyphForm:  def.VerticalGlyphs,
	}
	for key, v := range ints {
		if v != nil {
			attrs[key] = *v
		}
	}

	floats := map[attributes.Key]*float64{
		attributes.Kern:           def.Kern,
		attributes.BaselineOffset: def.BaselineOffset,
		attributes.Obliqueness:    def.Obliqueness,
		attributes.Expansion:      def.Expansion,
		attributes.StrokeWidth:    def.StrokeWidth,
	}
	for key, v := range floats {
		if v != nil {
			attrs[key] = *v
		}
	}

	if def.Link != "" {
		attrs[attributes.Link] = def.Link
	}
	if def.TextEffect != "" {
		attrs[attributes.TextEffect] = def.TextEffect
	}
	if len(def.WritingDirection) > 0 {
		attrs[attributes.WritingDirection] = append([]int(nil), def.WritingDirection...)
	}
	if def.Paragraph != nil {
		attrs[attributes.ParagraphStyle] = def.Paragraph.Clone()
	}
	if def.Attachment != nil {
		attrs[attributes.Attachment] = *def.Attachment
	}
	if def.Shadow != nil {
		shadow := &attributes.ShadowValue{
			OffsetX: def.Shadow.OffsetX,
			OffsetY: def.Shadow.OffsetY,
			Blur:    def.Shadow.Blur,
		}
		if def.Shadow.Color != "" {
			color, err := s.Color(def.Shadow.Color)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrStylesheetInvalid, "invalid color").
					WithDetail("path", path+".shadow.color")
			}
			shadow.Color = color
		}
		attrs[attributes.Shadow] = shadow
	}

	return attrs, nil
}

// Color resolves a color reference: a palette name, a hex color or an
// ANSI color index.
func (s *Sheet) Color(ref string) (lipgloss.TerminalColor, error) {
	if def, ok := s.Colors[ref]; ok {
		return lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}, nil
	}
	if validColor(ref) {
		return lipgloss.Color(ref), nil
	}
	return nil, errors.Newf(errors.ErrStylesheetInvalid, "unknown color %q", ref).
		WithDetail("color", ref)
}

func validColor(ref string) bool {
	if strings.HasPrefix(ref, "#") {
		hex := ref[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		_, err := strconv.ParseUint(hex, 16, 32)
		return err == nil
	}
	n, err := strconv.Atoi(ref)
	return err == nil && n >= 0 && n <= 255
}

func sortedKeys(m map[string]StyleDef) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
