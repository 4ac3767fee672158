package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxevent"

	"artspace/internal/app/cli"
	"artspace/internal/config"
	"artspace/internal/config/logger"
)

func Test_LoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		command cli.CommandType
		error   bool
	}{
		{name: "No config file uses defaults", command: cli.CommandView},
		{name: "Valid config file", content: "ui:\n  animate: false\n", command: cli.CommandView},
		{name: "Broken config fails for view", content: "ui: [oops\n", command: cli.CommandView, error: true},
		{name: "Broken config falls back for init", content: "ui: [oops\n", command: cli.CommandInit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)

			if tt.content != "" {
				assert.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(tt.content), 0600))
			}

			cfg, err := loadConfig(&cli.Options{Type: tt.command})

			if tt.error {
				assert.Error(t, err)
				assert.Nil(t, cfg)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, cfg)
		})
	}
}

func Test_LogOutput(t *testing.T) {
	t.Run("Gallery discards logs", func(t *testing.T) {
		output, err := logOutput(config.DefaultConfig(), &cli.Options{Type: cli.CommandView})

		assert.NoError(t, err)
		assert.Equal(t, io.Discard, output)
	})

	t.Run("Other commands log to stderr", func(t *testing.T) {
		output, err := logOutput(config.DefaultConfig(), &cli.Options{Type: cli.CommandList})

		assert.NoError(t, err)
		assert.Equal(t, os.Stderr, output)
	})

	t.Run("Log file takes precedence", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Logging.File = filepath.Join(t.TempDir(), "artspace.log")

		output, err := logOutput(cfg, &cli.Options{Type: cli.CommandView})

		assert.NoError(t, err)
		assert.IsType(t, &os.File{}, output)
		assert.FileExists(t, cfg.Logging.File)
		assert.NoError(t, output.(*os.File).Close())
	})

	t.Run("Unwritable log file", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Logging.File = filepath.Join(t.TempDir(), "missing", "artspace.log")

		_, err := logOutput(cfg, &cli.Options{Type: cli.CommandView})

		assert.Error(t, err)
	})
}

func Test_CreateApp(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		command cli.CommandType
	}{
		{name: "Gallery with info logging", level: logger.InfoLevel, command: cli.CommandView},
		{name: "List with debug logging", level: logger.DebugLevel, command: cli.CommandList},
		{name: "Init with error logging", level: logger.ErrorLevel, command: cli.CommandInit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level

			app := createApp(cfg, &cli.Options{Type: tt.command}, io.Discard)

			assert.NotNil(t, app)
			assert.NoError(t, app.Err())
		})
	}
}

func Test_CreateFxLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		command  cli.CommandType
		expected interface{}
	}{
		{name: "Debug level returns console logger", level: logger.DebugLevel, command: cli.CommandList, expected: &fxevent.ConsoleLogger{}},
		{name: "Debug level in the gallery stays quiet", level: logger.DebugLevel, command: cli.CommandView, expected: fxevent.NopLogger},
		{name: "Info level returns nop logger", level: logger.InfoLevel, command: cli.CommandList, expected: fxevent.NopLogger},
		{name: "Error level returns nop logger", level: logger.ErrorLevel, command: cli.CommandVersion, expected: fxevent.NopLogger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level

			result := createFxLogger(cfg, &cli.Options{Type: tt.command})()

			assert.NotNil(t, result)
			assert.IsType(t, tt.expected, result)
		})
	}
}
