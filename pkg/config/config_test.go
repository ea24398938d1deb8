package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/texty/pkg/errors"
	"github.com/arthur-debert/texty/pkg/render"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG directories at an empty temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "system"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Stylesheet)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Logging.File)
	assert.Equal(t, render.FormatAuto, cfg.Format())
	assert.False(t, cfg.Render.Strict)
	assert.Equal(t, 0, cfg.Render.Width)
	assert.Equal(t, "auto", cfg.Render.Profile)
	assert.True(t, cfg.Render.Hyperlinks)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel())
	assert.Empty(t, cfg.Sources)

	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, cfg, def)
	assert.Contains(t, string(DefaultSource()), "[render]")
}

func TestUserFileFromXDG(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, filepath.Join(dir, "texty", "config.toml"), `
stylesheet = "sheets/mine.yaml"

[render]
width = 72
strict = true
`)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{path}, cfg.Sources)
	assert.Equal(t, 72, cfg.Render.Width)
	assert.True(t, cfg.Render.Strict)
	assert.Equal(t, "auto", cfg.Render.Format)
	assert.Equal(t, filepath.Join(dir, "texty", "sheets", "mine.yaml"), cfg.Stylesheet)

	cfg, err = Load(Options{SkipUser: true})
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Render.Width)
}

func TestExplicitYAMLFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "texty.yaml"), `
logging:
  level: debug
  file: false
render:
  format: xml
`)

	cfg, err := Load(Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
	assert.False(t, cfg.Logging.File)
	assert.Equal(t, render.FormatXML, cfg.Format())
}

func TestMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(Options{Path: filepath.Join(t.TempDir(), "nope.toml")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestUnparsableFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "bad.toml"), "[render\nwidth = ")

	_, err := Load(Options{Path: path})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "texty", "config.toml"), "[render]\nwidth = 72\n")
	t.Setenv("TEXTY_RENDER_WIDTH", "100")
	t.Setenv("TEXTY_RENDER_STRICT", "true")
	t.Setenv("TEXTY_STYLESHEET", "/abs/sheet.yaml")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Render.Width)
	assert.True(t, cfg.Render.Strict)
	assert.Equal(t, "/abs/sheet.yaml", cfg.Stylesheet)
}

func TestOverridesWin(t *testing.T) {
	isolate(t)
	t.Setenv("TEXTY_RENDER_FORMAT", "xml")

	cfg, err := Load(Options{Overrides: map[string]interface{}{
		"render.format": "text",
		"render.width":  40,
	}})
	require.NoError(t, err)
	assert.Equal(t, render.FormatText, cfg.Format())
	assert.Equal(t, 40, cfg.Render.Width)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		key  string
	}{
		{"level", map[string]string{"TEXTY_LOGGING_LEVEL": "loud"}, "logging.level"},
		{"format", map[string]string{"TEXTY_RENDER_FORMAT": "json"}, "render.format"},
		{"profile", map[string]string{"TEXTY_RENDER_PROFILE": "cmyk"}, "render.profile"},
		{"width", map[string]string{"TEXTY_RENDER_WIDTH": "-1"}, "render.width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(Options{})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			assert.Equal(t, tt.key, errors.GetErrorDetails(err)["key"])
		})
	}
}
