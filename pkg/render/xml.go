package render

import (
	"io"
	"strconv"

	"github.com/arthur-debert/texty/pkg/attributes"
	"github.com/arthur-debert/texty/pkg/errors"
	"github.com/arthur-debert/texty/pkg/markup"
	"github.com/arthur-debert/texty/pkg/style"
	"github.com/beevik/etree"
)

// XML builds a document describing res: the stripped text, the applied
// spans in application order, the flattened runs and any unregistered
// tags.
func XML(res *style.Rendered) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("texty")
	if res == nil {
		return doc
	}
	root.CreateAttr("length", strconv.Itoa(res.Len()))

	root.CreateElement("text").SetText(res.Text)
	if len(res.Base) > 0 {
		writeAttributes(root.CreateElement("base"), res.Base)
	}

	spans := root.CreateElement("spans")
	for _, sp := range res.Spans {
		el := spans.CreateElement("span")
		el.CreateAttr("name", sp.Name)
		writeRange(el, sp.Range)
		el.CreateAttr("depth", strconv.Itoa(sp.Depth))
		el.CreateAttr("registered", strconv.FormatBool(sp.Registered))
		writeAttributes(el, sp.Attributes)
	}

	runs := root.CreateElement("runs")
	for _, run := range res.Runs() {
		el := runs.CreateElement("run")
		writeRange(el, run.Range)
		writeAttributes(el, run.Attributes)
		el.CreateElement("content").SetText(run.Text)
	}

	if len(res.Unregistered) > 0 {
		un := root.CreateElement("unregistered")
		for _, name := range res.Unregistered {
			un.CreateElement("tag").SetText(name)
		}
	}

	return doc
}

// WriteXML writes the indented XML document for res to w
func WriteXML(w io.Writer, res *style.Rendered) error {
	doc := XML(res)
	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write xml")
	}
	return nil
}

func writeRange(el *etree.Element, rng markup.Range) {
	el.CreateAttr("start", strconv.Itoa(rng.Start))
	el.CreateAttr("length", strconv.Itoa(rng.Length))
}

func writeAttributes(el *etree.Element, attrs attributes.Attributes) {
	for _, key := range attrs.Keys() {
		a := el.CreateElement("attribute")
		a.CreateAttr("key", key.String())
		a.SetText(attributes.Describe(attrs[key]))
	}
}
