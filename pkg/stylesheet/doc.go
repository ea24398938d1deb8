/*
Package stylesheet loads style trees from YAML or TOML documents.

A stylesheet names a palette of adaptive colors, the base attributes of
the root style and one style per tag. Tag styles may nest their own tags,
which only apply inside the enclosing tag:

	name: docs
	policy: report
	colors:
	  accent: { light: "#007ACC", dark: "#3D9EFF" }
	base:
	  foreground: text
	tags:
	  b:
	    font: { bold: true }
	  quote:
	    foreground: muted
	    tags:
	      em:
	        foreground: accent

Color fields take a palette name, a hex color ("#ff8800") or an ANSI index
("212").

Sheets are loaded through koanf, so several files can be layered with
LoadLayered: later files override earlier ones key by key. Default returns
the stylesheet embedded in the binary.
*/
package stylesheet
