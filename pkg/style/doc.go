/*
Package style resolves tagged text against a tree of named styles.

A Style owns a set of attributes and any number of child styles keyed by
tag name. Resolving a string strips its markup (see pkg/markup), applies the
style's own attributes to the whole text and layers each tag's child style
over the range that tag covers:

	base := style.New(attributes.Attributes{
		attributes.ForegroundColor: lipgloss.Color("1"),
	})
	base.SetChildStyle("b", style.New(attributes.Attributes{
		attributes.ForegroundColor: lipgloss.Color("4"),
	}))

	out, err := base.ResolveString("x<b>y</b>z")
	// out.Text == "xyz", out.Runs() colors x and z red and y blue

Nested tags are applied outermost first, so the innermost tag wins where
keys conflict. A child style may register its own children; those only
apply to tags nested inside the parent tag.

# Errors

Unbalanced markup aborts Resolve with MALFORMED_MARKUP. A tag with no
registered style is a configuration mistake reported as UNREGISTERED_TAG:
by default it is logged, the span keeps the base style and the name is
recorded on the result; with PolicyFail, Resolve returns the error.

# Observers

Every committed mutation (SetAttribute, SetChildStyle and friends) calls
the style's Observer synchronously before returning. The observer is a
non-owning back reference: an owner that registers itself must clear it
with SetObserver(nil) when it is torn down.

Styles are not safe for concurrent use.
*/
package style
