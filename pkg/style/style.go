package style

import (
	"sort"
	"strings"

	"github.com/arthur-debert/texty/internal/assert"
	"github.com/arthur-debert/texty/pkg/attributes"
	"github.com/arthur-debert/texty/pkg/errors"
	"github.com/arthur-debert/texty/pkg/logging"
)

// Observer is told about every committed change to a style it watches.
type Observer interface {
	StyleUpdated(s *Style)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(s *Style)

// StyleUpdated calls f(s)
func (f ObserverFunc) StyleUpdated(s *Style) {
	f(s)
}

// Policy decides what Resolve does with a tag that has no registered style
type Policy int

const (
	// PolicyReport logs the tag, renders its span with the base style and
	// records it on the result.
	PolicyReport Policy = iota
	// PolicyFail makes Resolve return an UNREGISTERED_TAG error.
	PolicyFail
)

// String returns the string representation of the policy
func (p Policy) String() string {
	switch p {
	case PolicyReport:
		return "report"
	case PolicyFail:
		return "fail"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name. The empty string means PolicyReport.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "", "report":
		return PolicyReport, nil
	case "fail":
		return PolicyFail, nil
	default:
		return PolicyReport, errors.Newf(errors.ErrInvalidInput, "unknown policy: %s", s).
			WithDetail("policy", s)
	}
}

// Style is a node in a style tree: its own attributes plus one independent
// child style per tag name.
type Style struct {
	attrs    attributes.Attributes
	children map[string]*Style
	observer Observer
	policy   Policy
}

// New creates a style holding attrs. Values are type-checked against their
// keys as a debug assertion.
func New(attrs attributes.Attributes) *Style {
	s := &Style{
		attrs:    make(attributes.Attributes, len(attrs)),
		children: make(map[string]*Style),
	}
	for k, v := range attrs {
		if v == nil {
			continue
		}
		checkValue(k, v)
		s.attrs[k] = v
	}
	return s
}

// Copy returns a deep copy. Attribute values are cloned where they are
// mutable (see attributes.Attributes.Clone), children are copied
// recursively and the copy has no observer.
func (s *Style) Copy() *Style {
	c := &Style{
		attrs:    s.attrs.Clone(),
		children: make(map[string]*Style, len(s.children)),
		policy:   s.policy,
	}
	for name, child := range s.children {
		c.children[name] = child.Copy()
	}
	return c
}

// SetObserver registers o to be told about mutations. Pass nil to detach.
func (s *Style) SetObserver(o Observer) {
	s.observer = o
}

// Observer returns the registered observer, if any
func (s *Style) Observer() Observer {
	return s.observer
}

// SetPolicy sets how Resolve handles unregistered tags
func (s *Style) SetPolicy(p Policy) {
	s.policy = p
}

// Policy returns how Resolve handles unregistered tags
func (s *Style) Policy() Policy {
	return s.policy
}

// SetAttribute sets key to value, or clears it when value is nil.
func (s *Style) SetAttribute(key attributes.Key, value any) {
	if value == nil {
		delete(s.attrs, key)
	} else {
		checkValue(key, value)
		s.attrs[key] = value
	}
	s.notify("set attribute", key.String())
}

// SetAttributes applies several changes and notifies once. Nil values clear
// their keys.
func (s *Style) SetAttributes(attrs attributes.Attributes) {
	for k, v := range attrs {
		if v == nil {
			delete(s.attrs, k)
			continue
		}
		checkValue(k, v)
		s.attrs[k] = v
	}
	s.notify("set attributes", "")
}

// Attribute returns the value set for key on this style
func (s *Style) Attribute(key attributes.Key) (any, bool) {
	v, ok := s.attrs[key]
	return v, ok
}

// Attributes returns a copy of this style's own attributes
func (s *Style) Attributes() attributes.Attributes {
	return s.attrs.Clone()
}

// SetChildStyle registers a deep copy of child for tag. Later changes to
// child do not affect s. A nil child removes the registration.
func (s *Style) SetChildStyle(tag string, child *Style) {
	if child == nil {
		delete(s.children, tag)
	} else {
		s.children[tag] = child.Copy()
	}
	s.notify("set child style", tag)
}

// ChildStyle returns a copy of the style registered for tag
func (s *Style) ChildStyle(tag string) (*Style, bool) {
	child, ok := s.children[tag]
	if !ok {
		return nil, false
	}
	return child.Copy(), true
}

// UpdateChildStyle edits the style registered for tag in place, creating
// an empty one first if needed, and notifies once fn returns.
func (s *Style) UpdateChildStyle(tag string, fn func(child *Style)) {
	child, ok := s.children[tag]
	if !ok {
		child = New(nil)
		s.children[tag] = child
	}
	fn(child)
	s.notify("update child style", tag)
}

// RemoveChildStyle drops the style registered for tag
func (s *Style) RemoveChildStyle(tag string) bool {
	if _, ok := s.children[tag]; !ok {
		return false
	}
	delete(s.children, tag)
	s.notify("remove child style", tag)
	return true
}

// ChildNames returns the registered tag names, sorted
func (s *Style) ChildNames() []string {
	names := make([]string, 0, len(s.children))
	for name := range s.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Style) notify(change, subject string) {
	logger := logging.GetLogger("style")
	logger.Trace().
		Str("change", change).
		Str("subject", subject).
		Bool("observed", s.observer != nil).
		Msg("Style updated")

	if s.observer != nil {
		s.observer.StyleUpdated(s)
	}
}

func checkValue(key attributes.Key, value any) {
	err := attributes.Check(key, value)
	assert.That(err == nil, "%v", err)
}
