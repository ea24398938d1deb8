package attributes_test

import (
	"net/url"
	"testing"

	"github.com/arthur-debert/texty/pkg/attributes"
	"github.com/arthur-debert/texty/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	for _, key := range attributes.Keys() {
		t.Run(key.String(), func(t *testing.T) {
			parsed, err := attributes.ParseKey(key.String())
			require.NoError(t, err)
			assert.Equal(t, key, parsed)
		})
	}

	t.Run("case insensitive", func(t *testing.T) {
		key, err := attributes.ParseKey("FOREGROUNDCOLOR")
		require.NoError(t, err)
		assert.Equal(t, attributes.ForegroundColor, key)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := attributes.ParseKey("blink")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownAttribute))
	})

	assert.Len(t, attributes.Keys(), 21)
	assert.Equal(t, "unknown", attributes.Key(99).String())
}

func TestCheck(t *testing.T) {
	link, _ := url.Parse("https://example.com")

	tests := []struct {
		name  string
		key   attributes.Key
		value any
		valid bool
	}{
		{"color", attributes.ForegroundColor, lipgloss.Color("#ff0000"), true},
		{"adaptive color", attributes.BackgroundColor, lipgloss.AdaptiveColor{Light: "0", Dark: "15"}, true},
		{"color as string", attributes.ForegroundColor, "#ff0000", false},
		{"int number", attributes.Kern, 2, true},
		{"float number", attributes.Obliqueness, 0.2, true},
		{"number as string", attributes.UnderlineStyle, "1", false},
		{"font", attributes.Font, attributes.FontDescriptor{Bold: true}, true},
		{"string link", attributes.Link, "https://example.com", true},
		{"url link", attributes.Link, link, true},
		{"paragraph style", attributes.ParagraphStyle, &attributes.ParagraphStyleValue{Width: 40}, true},
		{"shadow", attributes.Shadow, &attributes.ShadowValue{OffsetX: 1}, true},
		{"attachment", attributes.Attachment, attributes.AttachmentValue{Placeholder: "•"}, true},
		{"text effect", attributes.TextEffect, "letterpress", true},
		{"writing direction", attributes.WritingDirection, []int{0, 1}, true},
		{"writing direction wrong type", attributes.WritingDirection, []string{"ltr"}, false},
		{"nil clears", attributes.Font, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := attributes.Check(tt.key, tt.value)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidAttribute))
			assert.Equal(t, tt.key.String(), errors.GetErrorDetails(err)["attribute"])
		})
	}

	t.Run("unknown key", func(t *testing.T) {
		err := attributes.Check(attributes.Key(-1), 1)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownAttribute))
	})
}

func TestClone(t *testing.T) {
	para := &attributes.ParagraphStyleValue{Alignment: attributes.AlignCenter, Width: 40}
	dirs := []int{0, 1}
	color := lipgloss.Color("#00ff00")

	src := attributes.Attributes{
		attributes.ParagraphStyle:   para,
		attributes.WritingDirection: dirs,
		attributes.ForegroundColor:  color,
	}
	clone := src.Clone()

	require.True(t, src.Equal(clone))

	t.Run("cloner values are copied", func(t *testing.T) {
		cp := clone[attributes.ParagraphStyle].(*attributes.ParagraphStyleValue)
		assert.NotSame(t, para, cp)
		cp.Width = 80
		assert.Equal(t, 40, para.Width)
	})

	t.Run("slices are deep copied", func(t *testing.T) {
		cd := clone[attributes.WritingDirection].([]int)
		cd[0] = 7
		assert.Equal(t, 0, dirs[0])
	})

	t.Run("immutable values are shared", func(t *testing.T) {
		assert.Equal(t, color, clone[attributes.ForegroundColor])
	})

	t.Run("map itself is independent", func(t *testing.T) {
		delete(clone, attributes.ForegroundColor)
		assert.Contains(t, src, attributes.ForegroundColor)
	})

	t.Run("nil clones to empty", func(t *testing.T) {
		var none attributes.Attributes
		assert.NotNil(t, none.Clone())
		assert.Empty(t, none.Clone())
	})
}

func TestMerge(t *testing.T) {
	base := attributes.Attributes{
		attributes.ForegroundColor: lipgloss.Color("1"),
		attributes.Kern:            1,
	}
	over := attributes.Attributes{
		attributes.ForegroundColor: lipgloss.Color("4"),
		attributes.UnderlineStyle:  1,
	}

	merged := base.Merge(over)
	assert.Equal(t, lipgloss.Color("4"), merged[attributes.ForegroundColor])
	assert.Equal(t, 1, merged[attributes.Kern])
	assert.Equal(t, 1, merged[attributes.UnderlineStyle])

	// inputs untouched
	assert.Equal(t, lipgloss.Color("1"), base[attributes.ForegroundColor])
	assert.NotContains(t, base, attributes.UnderlineStyle)

	assert.Equal(t,
		[]attributes.Key{attributes.ForegroundColor, attributes.Kern, attributes.UnderlineStyle},
		merged.Keys())
}

func TestGetAndNumber(t *testing.T) {
	attrs := attributes.Attributes{
		attributes.Font: attributes.FontDescriptor{Family: "Menlo", Bold: true},
		attributes.Kern: int64(3),
	}

	font, ok := attributes.Get[attributes.FontDescriptor](attrs, attributes.Font)
	require.True(t, ok)
	assert.Equal(t, "Menlo", font.Family)

	_, ok = attributes.Get[string](attrs, attributes.Font)
	assert.False(t, ok)

	n, ok := attributes.Number(attrs[attributes.Kern])
	require.True(t, ok)
	assert.Equal(t, 3.0, n)

	_, ok = attributes.Number("3")
	assert.False(t, ok)
}

func TestKeyText(t *testing.T) {
	text, err := attributes.UnderlineStyle.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "underlineStyle", string(text))

	var k attributes.Key
	require.NoError(t, k.UnmarshalText([]byte("shadow")))
	assert.Equal(t, attributes.Shadow, k)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{nil, ""},
		{lipgloss.Color("#ff0000"), "#ff0000"},
		{lipgloss.AdaptiveColor{Light: "#000", Dark: "#fff"}, "#000/#fff"},
		{attributes.FontDescriptor{Family: "mono", Size: 12, Bold: true}, "mono 12pt bold"},
		{attributes.FontDescriptor{}, "regular"},
		{&attributes.ParagraphStyleValue{Alignment: attributes.AlignCenter, Width: 20}, "align=center break= width=20 indent=0"},
		{attributes.AttachmentValue{Placeholder: "• "}, `"• "`},
		{2.5, "2.5"},
		{[]int{0, 1}, "[0 1]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, attributes.Describe(tt.value))
	}
}
