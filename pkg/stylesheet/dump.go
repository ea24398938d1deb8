package stylesheet

import (
	"io"

	"github.com/arthur-debert/texty/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Dump writes the sheet in the given format. The output parses back to
// an equivalent sheet.
func (s *Sheet) Dump(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return errors.Wrap(err, errors.ErrRender, "failed to encode stylesheet as yaml")
		}
		return enc.Close()
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		if err := enc.Encode(s); err != nil {
			return errors.Wrap(err, errors.ErrRender, "failed to encode stylesheet as toml")
		}
		return nil
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown stylesheet format: %s", format)
	}
}
