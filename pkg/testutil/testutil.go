package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// Env describes the isolated directories created by Isolate
type Env struct {
	Root      string
	ConfigDir string
	StateDir  string
}

// UserConfig writes texty/<name> into the isolated config home
func (e *Env) UserConfig(t *testing.T, name, content string) string {
	t.Helper()
	return CreateFile(t, filepath.Join(e.ConfigDir, "texty"), name, content)
}

// Isolate points the XDG directories at a temporary root, clears every
// TEXTY_ variable and turns off the log file. Everything is restored when
// the test ends.
func Isolate(t *testing.T) *Env {
	t.Helper()

	root := t.TempDir()
	env := &Env{
		Root:      root,
		ConfigDir: filepath.Join(root, "config"),
		StateDir:  filepath.Join(root, "state"),
	}

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "TEXTY_") {
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigDir)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(root, "system"))
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	t.Setenv("TEXTY_LOGGING_FILE", "false")
	t.Setenv("NO_COLOR", "")

	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return env
}
