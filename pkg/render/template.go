package render

import (
	"bytes"
	"text/template"

	"github.com/arthur-debert/texty/pkg/errors"
)

// Expand executes text as a Go template against data before it is
// resolved, so values can be placed inside tags:
//
//	render.Expand("<b>{{.Name}}</b>", map[string]string{"Name": "texty"})
//
// Missing keys are an error. Values are inserted verbatim, so tags in them
// are parsed like any other markup.
func Expand(text string, data any) (string, error) {
	tmpl, err := template.New("texty").Option("missingkey=error").Parse(text)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "failed to parse template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "failed to execute template")
	}
	return buf.String(), nil
}
