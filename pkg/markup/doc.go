/*
Package markup strips lightweight style tags from text and reports where each
tagged region lands in the tag-free output.

# Markup

	<name>ranged text</name>
	<name/>                    zero-length marker

Tag names are any run of characters other than '<' and '>', trimmed of
surrounding whitespace. They are case sensitive. Tags carry no attributes and
there are no entities.

A '<' that is followed by another '<' before any '>' (or by the end of the
input) is kept as literal text together with whatever was scanned after it:

	Strip("1 << 2")          // "1 << 2"
	Strip("<<b>x</b>")       // "<x"

Only one level of lookahead is applied, so this is a convenience for stray
'<' characters and not an escaping mechanism.

# Extraction

Extract pairs every closing tag with the most recently opened tag of the same
name and reports spans in closing order:

	res, err := markup.Extract("<a>x<b>y</b>z</a>")
	// res.Text  == "xyz"
	// res.Spans == [{b 1 1} {a 0 3}]

Ranges count grapheme clusters of the stripped text, so combining sequences
and multi-byte runes are one position each. Byte ranges aligned to cluster
boundaries are reported alongside.

Unbalanced input fails with an error carrying the MALFORMED_MARKUP code from
pkg/errors.
*/
package markup
