package stylesheet

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	texterrors "github.com/arthur-debert/texty/pkg/errors"
	"github.com/arthur-debert/texty/pkg/logging"
	"github.com/arthur-debert/texty/pkg/style"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/default.yaml
var defaultSheet []byte

// Format is a stylesheet serialization format
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", texterrors.Newf(texterrors.ErrInvalidInput, "unknown stylesheet format: %s", s).
			WithDetail("format", s)
	}
}

// FormatForPath picks the format from a file extension
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", texterrors.Newf(texterrors.ErrInvalidInput, "cannot tell stylesheet format of %s", path).
			WithDetail("path", path)
	}
	return ParseFormat(ext)
}

func (f Format) parser() koanf.Parser {
	if f == FormatTOML {
		return toml.Parser()
	}
	return yaml.Parser()
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Default returns the stylesheet embedded in the binary
func Default() (*Sheet, error) {
	return Parse(defaultSheet, FormatYAML)
}

// DefaultSource returns the embedded stylesheet as written
func DefaultSource() []byte {
	return defaultSheet
}

// Parse decodes a stylesheet from data
func Parse(data []byte, format Format) (*Sheet, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{data}, format.parser()); err != nil {
		return nil, texterrors.Wrapf(err, texterrors.ErrStylesheetLoad, "failed to parse %s stylesheet", format)
	}
	return decode(k)
}

// Load reads a single stylesheet file
func Load(path string) (*Sheet, error) {
	k := koanf.New(".")
	if err := loadFile(k, path); err != nil {
		return nil, err
	}
	return decode(k)
}

// LoadLayered starts from the embedded stylesheet and merges each file
// over it in order.
func LoadLayered(paths ...string) (*Sheet, error) {
	logger := logging.GetLogger("stylesheet")

	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{defaultSheet}, yaml.Parser()); err != nil {
		return nil, texterrors.Wrap(err, texterrors.ErrInternal, "failed to load embedded stylesheet")
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", path).Msg("Merged stylesheet")
	}

	return decode(k)
}

func loadFile(k *koanf.Koanf, path string) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return texterrors.Wrapf(err, texterrors.ErrNotFound, "stylesheet %s not found", path).
			WithDetail("path", path)
	}
	if err := k.Load(file.Provider(path), format.parser()); err != nil {
		return texterrors.Wrapf(err, texterrors.ErrStylesheetLoad, "failed to load stylesheet from %s", path).
			WithDetail("path", path)
	}
	return nil
}

func decode(k *koanf.Koanf) (*Sheet, error) {
	var sheet Sheet
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "mapstructure",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &sheet,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &sheet, unmarshalConf); err != nil {
		return nil, texterrors.Wrap(err, texterrors.ErrStylesheetInvalid, "failed to decode stylesheet")
	}

	if _, err := style.ParsePolicy(sheet.Policy); err != nil {
		return nil, texterrors.Wrap(err, texterrors.ErrStylesheetInvalid, "invalid stylesheet policy").
			WithDetail("path", "policy")
	}
	for name, c := range sheet.Colors {
		if !validColor(c.Light) || !validColor(c.Dark) {
			return nil, texterrors.Newf(texterrors.ErrStylesheetInvalid,
				"palette color %q needs a light and a dark value", name).
				WithDetail("path", fmt.Sprintf("colors.%s", name))
		}
	}

	return &sheet, nil
}
