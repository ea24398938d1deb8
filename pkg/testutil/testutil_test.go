package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()

	path := CreateFile(t, dir, "nested/sheet.yaml", "name: x\n")

	assert.Equal(t, filepath.Join(dir, "nested", "sheet.yaml"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name: x\n", string(data))
}

func TestIsolate(t *testing.T) {
	t.Setenv("TEXTY_RENDER_WIDTH", "80")

	env := Isolate(t)

	_, set := os.LookupEnv("TEXTY_RENDER_WIDTH")
	assert.False(t, set)
	assert.Equal(t, "false", os.Getenv("TEXTY_LOGGING_FILE"))
	assert.Equal(t, env.ConfigDir, xdg.ConfigHome)

	path := env.UserConfig(t, "config.toml", "[render]\nwidth = 10\n")
	found, err := xdg.SearchConfigFile("texty/config.toml")
	require.NoError(t, err)
	assert.Equal(t, path, found)
}
