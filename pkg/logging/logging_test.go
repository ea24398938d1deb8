package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)
			xdg.Reload()

			SetupLogger(tt.verbosity)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "texty", "texty.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created at %s", logPath)
		})
	}
}

func TestSetupLoggerWithOptions(t *testing.T) {
	t.Run("verbosity beats a quieter configured level", func(t *testing.T) {
		var buf bytes.Buffer
		SetupLoggerWithOptions(Options{Verbosity: 2, Level: "warn", Console: &buf})
		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	})

	t.Run("configured level raises verbosity", func(t *testing.T) {
		var buf bytes.Buffer
		SetupLoggerWithOptions(Options{Verbosity: 0, Level: "trace", Console: &buf})
		assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
	})

	t.Run("unknown level is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		SetupLoggerWithOptions(Options{Verbosity: 1, Level: "loud", Console: &buf})
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("console only", func(t *testing.T) {
		tempDir := t.TempDir()
		t.Setenv("XDG_STATE_HOME", tempDir)
		xdg.Reload()

		var buf bytes.Buffer
		SetupLoggerWithOptions(Options{Verbosity: 1, Console: &buf})
		log.Info().Msg("hello console")

		assert.Contains(t, buf.String(), "hello console")
		_, err := os.Stat(filepath.Join(tempDir, "texty", "texty.log"))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("style")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"style"`)
	assert.Contains(t, buf.String(), "test message")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = zerolog.New(&buf)

	logger := WithFields(map[string]interface{}{
		"tag":   "bold",
		"count": 42,
	})
	logger.Info().Msg("test message with fields")

	output := buf.String()
	assert.Contains(t, output, `"tag":"bold"`)
	assert.Contains(t, output, `"count":42`)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "resolve")
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, `"operation":"resolve"`)
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	LogCommand("render", []string{"--styles", "sheet.yaml"})

	output := buf.String()
	require.NotEmpty(t, output)
	assert.Contains(t, output, "render")
	assert.Contains(t, output, "sheet.yaml")
	assert.Contains(t, output, "Executing command")
}
