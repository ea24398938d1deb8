package style

import (
	"sort"
	"strings"

	"github.com/arthur-debert/texty/internal/assert"
	"github.com/arthur-debert/texty/pkg/attributes"
	"github.com/arthur-debert/texty/pkg/errors"
	"github.com/arthur-debert/texty/pkg/logging"
	"github.com/arthur-debert/texty/pkg/markup"
)

// AppliedSpan is a tag span together with the attributes its style adds.
type AppliedSpan struct {
	Name       string
	Range      markup.Range
	Bytes      markup.Range
	Depth      int
	Attributes attributes.Attributes

	// Registered is false when no style was found for the tag.
	Registered bool
}

// Run is a maximal piece of text that shares one effective attribute set.
type Run struct {
	Range      markup.Range
	Bytes      markup.Range
	Text       string
	Attributes attributes.Attributes
}

// Rendered is tag-free text plus the attributes resolved over it.
type Rendered struct {
	Text string

	// Base applies to the whole text.
	Base attributes.Attributes

	// Spans are in application order: outer tags before the tags nested
	// in them.
	Spans []AppliedSpan

	// Unregistered lists tag names that had no style, in first-seen order.
	Unregistered []string

	length int
}

// Len returns the number of characters in Text
func (r *Rendered) Len() int {
	return r.length
}

// Err reports unregistered tags as an UNREGISTERED_TAG error, or nil.
func (r *Rendered) Err() error {
	if len(r.Unregistered) == 0 {
		return nil
	}
	return errors.Newf(errors.ErrUnregisteredTag,
		"no style registered for tag(s): %s", strings.Join(r.Unregistered, ", ")).
		WithDetail("tags", r.Unregistered)
}

// Markers returns the zero-length spans produced by self-closing tags
func (r *Rendered) Markers() []AppliedSpan {
	var markers []AppliedSpan
	for _, sp := range r.Spans {
		if sp.Range.IsEmpty() {
			markers = append(markers, sp)
		}
	}
	return markers
}

// Runs flattens the layered spans into consecutive runs covering Text. The
// attributes of each run are the base attributes overridden by every span
// covering it, in application order.
func (r *Rendered) Runs() []Run {
	if r.length == 0 {
		return nil
	}

	// character boundary -> byte boundary
	points := map[int]int{0: 0, r.length: len(r.Text)}
	for _, sp := range r.Spans {
		if sp.Range.IsEmpty() {
			continue
		}
		points[sp.Range.Start] = sp.Bytes.Start
		points[sp.Range.End()] = sp.Bytes.End()
	}

	chars := make([]int, 0, len(points))
	for c := range points {
		chars = append(chars, c)
	}
	sort.Ints(chars)

	runs := make([]Run, 0, len(chars)-1)
	for i := 0; i+1 < len(chars); i++ {
		rng := markup.Range{Start: chars[i], Length: chars[i+1] - chars[i]}
		bytes := markup.Range{Start: points[chars[i]], Length: points[chars[i+1]] - points[chars[i]]}

		attrs := r.Base.Merge(nil)
		for _, sp := range r.Spans {
			if !sp.Range.IsEmpty() && sp.Range.Contains(rng) {
				attrs = attrs.Merge(sp.Attributes)
			}
		}

		runs = append(runs, Run{
			Range:      rng,
			Bytes:      bytes,
			Text:       r.Text[bytes.Start:bytes.End()],
			Attributes: attrs,
		})
	}
	return runs
}

// AttributesAt returns the effective attributes of the character at index i
func (r *Rendered) AttributesAt(i int) attributes.Attributes {
	for _, run := range r.Runs() {
		if i >= run.Range.Start && i < run.Range.End() {
			return run.Attributes
		}
	}
	return nil
}

// ResolveString resolves text; see Resolve
func (s *Style) ResolveString(text string) (*Rendered, error) {
	return s.Resolve(&text)
}

// Resolve strips the markup from text and layers the registered styles
// over the spans it found. A nil text resolves to nil.
//
// Nothing is cached: every call reflects the current attributes and
// children of s.
func (s *Style) Resolve(text *string) (*Rendered, error) {
	if text == nil {
		return nil, nil
	}

	logger := logging.GetLogger("style")
	done := logging.LogOperationStart(logger, "resolve")
	defer done()

	res, err := markup.Extract(*text)
	if err != nil {
		return nil, err
	}

	spans := make([]markup.TagSpan, len(res.Spans))
	copy(spans, res.Spans)
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Depth < spans[j].Depth
	})

	out := &Rendered{
		Text:   res.Text,
		Base:   s.attrs.Clone(),
		Spans:  make([]AppliedSpan, 0, len(spans)),
		length: res.Len(),
	}

	for _, span := range spans {
		applied := AppliedSpan{
			Name:  span.Name,
			Range: span.Range,
			Bytes: span.Bytes,
			Depth: span.Depth,
		}

		if found := s.lookup(span); found != nil {
			applied.Attributes = found.attrs.Clone()
			applied.Registered = true
		} else {
			if s.policy == PolicyFail {
				return nil, errors.Newf(errors.ErrUnregisteredTag,
					"no style registered for tag <%s>", span.Name).
					WithDetail("tag", span.Name).
					WithDetail("range", span.Range)
			}
			logger.Warn().
				Str("tag", span.Name).
				Stringer("range", span.Range).
				Msg("No style registered for tag, using base style")
			if assert.Fatal {
				assert.That(false, "no style registered for tag <%s>", span.Name)
			}
			out.Unregistered = appendUnique(out.Unregistered, span.Name)
			applied.Attributes = attributes.Attributes{}
		}

		out.Spans = append(out.Spans, applied)
	}

	return out, nil
}

// lookup finds the style for a span. It first walks down through the
// children named by the span's enclosing tags, then searches from the
// deepest style reached back up to s.
func (s *Style) lookup(span markup.TagSpan) *Style {
	chain := []*Style{s}
	node := s
	for _, parent := range span.Parents {
		if child, ok := node.children[parent]; ok {
			node = child
			chain = append(chain, node)
		}
	}

	for i := len(chain) - 1; i >= 0; i-- {
		if found, ok := chain[i].children[span.Name]; ok {
			return found
		}
	}
	return nil
}

func appendUnique(names []string, name string) []string {
	for _, n := range names {
		if n == name {
			return names
		}
	}
	return append(names, name)
}
