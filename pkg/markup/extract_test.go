package markup_test

import (
	"testing"

	"github.com/arthur-debert/texty/pkg/errors"
	"github.com/arthur-debert/texty/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type span struct {
	name          string
	start, length int
}

func spansOf(res *markup.Result) []span {
	out := make([]span, 0, len(res.Spans))
	for _, s := range res.Spans {
		out = append(out, span{s.Name, s.Range.Start, s.Range.Length})
	}
	return out
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		text  string
		spans []span
	}{
		{
			name:  "empty input",
			input: "",
			text:  "",
			spans: []span{},
		},
		{
			name:  "no tags",
			input: "no tags here",
			text:  "no tags here",
			spans: []span{},
		},
		{
			name:  "self-closing",
			input: "a<b/>c",
			text:  "ac",
			spans: []span{{"b", 1, 0}},
		},
		{
			name:  "nested reported in closing order",
			input: "<a>x<b>y</b>z</a>",
			text:  "xyz",
			spans: []span{{"b", 1, 1}, {"a", 0, 3}},
		},
		{
			name:  "adjacent tags without text between",
			input: "<a><b>x</b></a>",
			text:  "x",
			spans: []span{{"b", 0, 1}, {"a", 0, 1}},
		},
		{
			name:  "siblings",
			input: "<i>one</i> and <b>two</b>",
			text:  "one and two",
			spans: []span{{"i", 0, 3}, {"b", 8, 3}},
		},
		{
			name:  "interleaved tags resolve by name",
			input: "<a>x<b>y</a>z</b>",
			text:  "xyz",
			spans: []span{{"a", 0, 2}, {"b", 1, 2}},
		},
		{
			name:  "repeated name pairs with most recent opener",
			input: "<a>x<a>y</a>z</a>",
			text:  "xyz",
			spans: []span{{"a", 1, 1}, {"a", 0, 3}},
		},
		{
			name:  "whitespace trimmed from names",
			input: "< bold >x</ bold >< br />",
			text:  "x",
			spans: []span{{"bold", 0, 1}, {"br", 1, 0}},
		},
		{
			name:  "empty element",
			input: "<a></a>text",
			text:  "text",
			spans: []span{{"a", 0, 0}},
		},
		{
			name:  "self-closing at end",
			input: "end<mark/>",
			text:  "end",
			spans: []span{{"mark", 3, 0}},
		},
		{
			name:  "the documented example",
			input: "This <italic>is <underline>nested</underline></italic> text",
			text:  "This is nested text",
			spans: []span{{"underline", 8, 6}, {"italic", 5, 9}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := markup.Extract(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.text, res.Text)
			assert.Equal(t, tt.spans, spansOf(res))
		})
	}
}

func TestExtractLiteralAngleBrackets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		text  string
		spans []span
	}{
		{"lone less-than", "a < b", "a < b", []span{}},
		{"trailing less-than", "abc<", "abc<", []span{}},
		{"unterminated token", "abc<def", "abc<def", []span{}},
		{"double less-than", "1 << 2", "1 << 2", []span{}},
		{"greater-than only", "a > b", "a > b", []span{}},
		{"less-than before a tag", "<<b>x</b>", "<x", []span{{"b", 1, 1}}},
		{"less-than inside a tag", "x <i>a < b</i>", "x a < b", []span{{"i", 2, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := markup.Extract(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.text, res.Text)
			assert.Equal(t, tt.spans, spansOf(res))
		})
	}
}

func TestExtractUnbalanced(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		tag    string
		offset int
	}{
		{"closing without opener", "<a>x</b>", "b", 4},
		{"opener never closed", "<a>x", "a", 0},
		{"closing before opening", "</a><a>", "a", 0},
		{"outer left open", "<a><b>x</b>", "a", 0},
		{"case sensitive names", "<B>x</b>", "b", 4},
		{"empty tag never closed", "<>", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := markup.Extract(tt.input)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errors.IsMalformedMarkup(err))
			assert.False(t, errors.IsUnregisteredTag(err))

			details := errors.GetErrorDetails(err)
			assert.Equal(t, tt.tag, details["tag"])
			assert.Equal(t, tt.offset, details["offset"])
		})
	}
}

func TestExtractCharacterSemantics(t *testing.T) {
	t.Run("multi-byte runes count once", func(t *testing.T) {
		res, err := markup.Extract("日本<b>語</b>")
		require.NoError(t, err)
		require.Len(t, res.Spans, 1)
		assert.Equal(t, markup.Range{Start: 2, Length: 1}, res.Spans[0].Range)
		assert.Equal(t, markup.Range{Start: 6, Length: 3}, res.Spans[0].Bytes)
		assert.Equal(t, "語", res.Slice(res.Spans[0].Range))
		assert.Equal(t, 3, res.Len())
	})

	t.Run("combining sequences count once", func(t *testing.T) {
		res, err := markup.Extract("café <b>ok</b>")
		require.NoError(t, err)
		assert.Equal(t, span{"b", 5, 2}, spansOf(res)[0])
		assert.Equal(t, "ok", res.Slice(res.Spans[0].Range))
	})

	t.Run("emoji modifiers count once", func(t *testing.T) {
		res, err := markup.Extract("👍🏽<b>x</b>")
		require.NoError(t, err)
		assert.Equal(t, span{"b", 1, 1}, spansOf(res)[0])
	})

	t.Run("span inside a cluster widens to the cluster", func(t *testing.T) {
		res, err := markup.Extract("e<b>\u0301</b>")
		require.NoError(t, err)
		assert.Equal(t, span{"b", 0, 1}, spansOf(res)[0])
		assert.Equal(t, "e\u0301", res.Slice(res.Spans[0].Range))
	})
}

func TestExtractNesting(t *testing.T) {
	res, err := markup.Extract("<a>1<b>2<c/>3</b></a><d>4</d>")
	require.NoError(t, err)

	byName := map[string]markup.TagSpan{}
	for _, s := range res.Spans {
		byName[s.Name] = s
	}

	assert.Equal(t, 0, byName["a"].Depth)
	assert.Nil(t, byName["a"].Parents)
	assert.Equal(t, 1, byName["b"].Depth)
	assert.Equal(t, []string{"a"}, byName["b"].Parents)
	assert.Equal(t, 2, byName["c"].Depth)
	assert.Equal(t, []string{"a", "b"}, byName["c"].Parents)
	assert.Equal(t, 0, byName["d"].Depth)
}

// Stripping leaves exactly the text between markers in each span.
func TestExtractSpansCoverTaggedText(t *testing.T) {
	inputs := map[string]map[string]string{
		"<q>to be</q> or <n>not</n>":             {"q": "to be", "n": "not"},
		"say <em>hello <b>wide</b> world</em>!": {"em": "hello wide world", "b": "wide"},
		"<x>ünïcødé</x> text":                    {"x": "ünïcødé"},
		"a<br/>b":                                {"br": ""},
	}

	for input, want := range inputs {
		t.Run(input, func(t *testing.T) {
			res, err := markup.Extract(input)
			require.NoError(t, err)
			assert.Equal(t, markup.Strip(input), res.Text)
			require.Len(t, res.Spans, len(want))

			for _, s := range res.Spans {
				got := res.Slice(s.Range)
				assert.Equal(t, want[s.Name], got)
				assert.Equal(t, got, res.Text[s.Bytes.Start:s.Bytes.End()])
			}
		})
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"strips simple tags", "<Bold>Hello</Bold> <Italic>World</Italic>", "Hello World"},
		{"strips nested tags", "<Header><Bold>Title</Bold> <Italic>Subtitle</Italic></Header>", "Title Subtitle"},
		{"preserves newlines", "<Line1>First</Line1>\n<Line2>Second</Line2>", "First\nSecond"},
		{"handles self-closing tags", "Before<br/>After", "BeforeAfter"},
		{"malformed markup returned unchanged", "<title>Unclosed tag", "<title>Unclosed tag"},
		{"keeps spacing inside tags", "<tag>  spaced  content  </tag>", "  spaced  content  "},
		{"deeply nested tags", "<a><b><c><d>Deep</d></c></b></a>", "Deep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, markup.Strip(tt.input))
		})
	}
}

func TestScan(t *testing.T) {
	tags, text := markup.Scan("a<b>c</b><d/>")
	assert.Equal(t, "ac", text)
	require.Len(t, tags, 3)

	assert.Equal(t, markup.Tag{Name: "b", Kind: markup.Opening, Offset: 1, Source: 1}, tags[0])
	assert.Equal(t, markup.Tag{Name: "b", Kind: markup.Closing, Offset: 2, Source: 5}, tags[1])
	assert.Equal(t, markup.Tag{Name: "d", Kind: markup.SelfClosing, Offset: 2, Source: 9}, tags[2])

	assert.True(t, tags[0].Matches(tags[1]))
	assert.False(t, tags[0].Matches(tags[2]))
	assert.Equal(t, "self-closing", tags[2].Kind.String())
}
