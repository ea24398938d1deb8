package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	texterrors "github.com/arthur-debert/texty/pkg/errors"
	"github.com/arthur-debert/texty/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes environment variables read as configuration
const EnvPrefix = "TEXTY_"

// userConfigNames are searched for in the XDG config directories, in order
var userConfigNames = []string{
	filepath.Join("texty", "config.toml"),
	filepath.Join("texty", "config.yaml"),
	filepath.Join("texty", "config.yml"),
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Options controls which layers Load reads
type Options struct {
	// Path is an explicit config file. It must exist. When empty the XDG
	// config directories are searched instead.
	Path string

	// Overrides are applied last, keyed by dotted path ("render.width").
	Overrides map[string]interface{}

	// SkipUser ignores user files found in the XDG directories.
	SkipUser bool
}

// Default returns the embedded defaults alone
func Default() (*Config, error) {
	return Load(Options{SkipUser: true})
}

// DefaultSource returns the embedded defaults file as written
func DefaultSource() []byte {
	return defaultConfig
}

// Load merges all configuration layers and validates the result
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{defaultConfig}, toml.Parser()); err != nil {
		return nil, texterrors.Wrap(err, texterrors.ErrInternal, "failed to load embedded defaults")
	}

	// 2. User file
	var sources []string
	var fileStylesheet string
	path, err := userConfigPath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, texterrors.Wrapf(err, texterrors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		sources = append(sources, path)
		fileStylesheet = k.String("stylesheet")
		logger.Debug().Str("path", path).Msg("Loaded user config")
	}

	// 3. Environment
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, texterrors.Wrap(err, texterrors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Caller overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, texterrors.Wrap(err, texterrors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, texterrors.Wrap(err, texterrors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Sources = sources

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Relative stylesheet paths are relative to the file naming them
	if cfg.Stylesheet != "" && cfg.Stylesheet == fileStylesheet && !filepath.IsAbs(cfg.Stylesheet) {
		cfg.Stylesheet = filepath.Join(filepath.Dir(path), cfg.Stylesheet)
	}

	return &cfg, nil
}

func userConfigPath(opts Options) (string, error) {
	if opts.Path != "" {
		if _, err := os.Stat(opts.Path); err != nil {
			return "", texterrors.Wrapf(err, texterrors.ErrNotFound, "config file %s not found", opts.Path).
				WithDetail("path", opts.Path)
		}
		return opts.Path, nil
	}
	if opts.SkipUser {
		return "", nil
	}
	for _, name := range userConfigNames {
		if path, err := xdg.SearchConfigFile(name); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
