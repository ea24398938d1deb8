package config

import (
	"github.com/arthur-debert/texty/pkg/errors"
	"github.com/arthur-debert/texty/pkg/render"
	"github.com/rs/zerolog"
)

// Config is the complete application configuration
type Config struct {
	Stylesheet string  `koanf:"stylesheet" toml:"stylesheet" yaml:"stylesheet"`
	Logging    Logging `koanf:"logging" toml:"logging" yaml:"logging"`
	Render     Render  `koanf:"render" toml:"render" yaml:"render"`

	// Sources lists the files that were merged, in order
	Sources []string `koanf:"-" toml:"-" yaml:"-"`
}

// Logging holds logging configuration
type Logging struct {
	Level string `koanf:"level" toml:"level" yaml:"level"`
	File  bool   `koanf:"file" toml:"file" yaml:"file"`
}

// Render holds output configuration
type Render struct {
	Format     string `koanf:"format" toml:"format" yaml:"format"`
	Strict     bool   `koanf:"strict" toml:"strict" yaml:"strict"`
	Width      int    `koanf:"width" toml:"width" yaml:"width"`
	Profile    string `koanf:"profile" toml:"profile" yaml:"profile"`
	Hyperlinks bool   `koanf:"hyperlinks" toml:"hyperlinks" yaml:"hyperlinks"`
}

// Validate checks values the type system cannot
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid log level %q", c.Logging.Level).
			WithDetail("key", "logging.level")
	}
	if _, err := render.ParseFormat(c.Render.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid render format").
			WithDetail("key", "render.format")
	}
	if _, _, err := render.ParseProfile(c.Render.Profile); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid color profile").
			WithDetail("key", "render.profile")
	}
	if c.Render.Width < 0 {
		return errors.Newf(errors.ErrConfigValid, "render width must not be negative, got %d", c.Render.Width).
			WithDetail("key", "render.width")
	}
	return nil
}

// Format returns the parsed render format
func (c *Config) Format() render.Format {
	f, _ := render.ParseFormat(c.Render.Format)
	return f
}

// LogLevel returns the parsed logging level
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}
