package markup

import (
	"sort"
	"strings"

	"github.com/arthur-debert/texty/pkg/errors"
	"github.com/rivo/uniseg"
)

// TagSpan locates a tagged region in the stripped text.
type TagSpan struct {
	Name string `json:"name"`

	// Range counts grapheme clusters of the stripped text.
	Range Range `json:"range"`

	// Bytes is Range expressed in bytes of the stripped text.
	Bytes Range `json:"bytes"`

	// Depth is the number of tags that were open when this one opened.
	Depth int `json:"depth"`

	// Parents names those open tags, outermost first.
	Parents []string `json:"parents,omitempty"`
}

// Result is the outcome of a successful extraction.
type Result struct {
	Text  string
	Spans []TagSpan

	// bounds holds the starting byte of every grapheme cluster in Text,
	// followed by len(Text).
	bounds []int
}

// Len returns the number of characters (grapheme clusters) in Text
func (r *Result) Len() int {
	return len(r.bounds) - 1
}

// ByteRange converts a character range of Text into a byte range
func (r *Result) ByteRange(rng Range) Range {
	start := r.bounds[clamp(rng.Start, 0, r.Len())]
	end := r.bounds[clamp(rng.End(), 0, r.Len())]
	return Range{Start: start, Length: end - start}
}

// Slice returns the part of Text covered by a character range
func (r *Result) Slice(rng Range) string {
	b := r.ByteRange(rng)
	return r.Text[b.Start:b.End()]
}

type openTag struct {
	tag     Tag
	parents []string
}

type pendingSpan struct {
	name       string
	start, end int
	parents    []string
}

// Extract strips every tag from input and returns the text together with
// the span each tag covers. Spans are ordered by when they closed; a
// self-closing tag is reported where it appears.
//
// A closing tag is paired with the most recent open tag of the same name,
// even if other tags opened after it are still open. A closing tag with no
// open counterpart, or a tag still open at the end of the input, fails with
// ErrMalformedMarkup.
func Extract(input string) (*Result, error) {
	tags, text := Scan(input)

	var open []openTag
	var pending []pendingSpan

	for _, tag := range tags {
		switch tag.Kind {
		case SelfClosing:
			pending = append(pending, pendingSpan{
				name:    tag.Name,
				start:   tag.Offset,
				end:     tag.Offset,
				parents: openNames(open),
			})
		case Opening:
			open = append(open, openTag{tag: tag, parents: openNames(open)})
		case Closing:
			idx := -1
			for i := len(open) - 1; i >= 0; i-- {
				if open[i].tag.Matches(tag) {
					idx = i
					break
				}
			}
			if idx < 0 {
				return nil, errors.Newf(errors.ErrMalformedMarkup,
					"closing tag </%s> has no matching opening tag", tag.Name).
					WithDetail("tag", tag.Name).
					WithDetail("offset", tag.Source)
			}

			opener := open[idx]
			pending = append(pending, pendingSpan{
				name:    tag.Name,
				start:   opener.tag.Offset,
				end:     tag.Offset,
				parents: opener.parents,
			})
			open = append(open[:idx], open[idx+1:]...)
		}
	}

	if len(open) > 0 {
		first := open[0].tag
		return nil, errors.Newf(errors.ErrMalformedMarkup,
			"tag <%s> is never closed", first.Name).
			WithDetail("tag", first.Name).
			WithDetail("offset", first.Source).
			WithDetail("unclosed", openNames(open))
	}

	res := &Result{
		Text:   text,
		bounds: clusterBounds(text),
	}
	res.Spans = make([]TagSpan, 0, len(pending))
	for _, p := range pending {
		res.Spans = append(res.Spans, res.span(p))
	}
	return res, nil
}

// Strip returns input with every tag removed. Malformed markup is returned
// unchanged.
func Strip(input string) string {
	res, err := Extract(input)
	if err != nil {
		return input
	}
	return res.Text
}

// span converts byte offsets into cluster positions. A start inside a
// cluster rounds down and an end rounds up, so a span never loses the
// character it touches.
func (r *Result) span(p pendingSpan) TagSpan {
	start := sort.SearchInts(r.bounds, p.start+1) - 1
	end := start
	if p.end > p.start {
		end = sort.SearchInts(r.bounds, p.end)
	}

	rng := Range{Start: start, Length: end - start}
	return TagSpan{
		Name:    p.name,
		Range:   rng,
		Bytes:   r.ByteRange(rng),
		Depth:   len(p.parents),
		Parents: p.parents,
	}
}

func openNames(open []openTag) []string {
	if len(open) == 0 {
		return nil
	}
	names := make([]string, len(open))
	for i, o := range open {
		names[i] = o.tag.Name
	}
	return names
}

func clusterBounds(text string) []int {
	bounds := make([]int, 0, len(text)+1)
	state := -1
	rest := text
	offset := 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		bounds = append(bounds, offset)
		offset += len(cluster)
	}
	return append(bounds, len(text))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// String renders the spans compactly, mostly for logs and test failures.
func (r *Result) String() string {
	var b strings.Builder
	b.WriteString(r.Text)
	for _, s := range r.Spans {
		b.WriteString(" <")
		b.WriteString(s.Name)
		b.WriteString(">")
		b.WriteString(s.Range.String())
	}
	return b.String()
}
