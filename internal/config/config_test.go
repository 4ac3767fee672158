package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"artspace/internal/app/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	return path
}

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, DefaultLongPress, cfg.UI.LongPress)
	assert.True(t, cfg.UI.Tooltips)
	assert.True(t, cfg.UI.Animate)
	assert.Equal(t, []string{DefaultAssetPattern}, cfg.Assets.Patterns)
	assert.Equal(t, DefaultAssetDebounce, cfg.Assets.Debounce)
	assert.Equal(t, 1, cfg.Version)
	assert.NoError(t, cfg.Validate())
}

func Test_LoadFile(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		error   error
		inspect func(t *testing.T, cfg *Config)
	}{
		{
			name: "no config file found - uses default",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.yaml")
			},
			inspect: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultConfig(), cfg)
			},
		},
		{
			name: "valid config file",
			path: func(t *testing.T) string {
				return writeConfig(t, `version: 1
logging:
  level: DEBUG
  format: json
ui:
  long_press: 750ms
  tooltips: false
assets:
  dir: ./art
  patterns: ["*.txt", "*.art"]
  watch: true
`)
			},
			inspect: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, 750*time.Millisecond, cfg.UI.LongPress)
				assert.False(t, cfg.UI.Tooltips)
				assert.True(t, cfg.UI.Animate)
				assert.Equal(t, "./art", cfg.Assets.Dir)
				assert.Equal(t, []string{"*.txt", "*.art"}, cfg.Assets.Patterns)
				assert.True(t, cfg.Assets.Watch)
				assert.Equal(t, DefaultAssetDebounce, cfg.Assets.Debounce)
			},
		},
		{
			name: "document is not a mapping",
			path: func(t *testing.T) string {
				return writeConfig(t, "- just\n- a list\n")
			},
			error: errors.ErrFailedToParseConfig,
		},
		{
			name: "malformed yaml",
			path: func(t *testing.T) string {
				return writeConfig(t, "logging: [unclosed\n")
			},
			error: errors.ErrFailedToParseConfig,
		},
		{
			name: "path is a directory",
			path: func(t *testing.T) string {
				return t.TempDir()
			},
			error: errors.ErrFailedToReadConfig,
		},
		{
			name: "invalid long press",
			path: func(t *testing.T) string {
				return writeConfig(t, "ui:\n  long_press: 0s\n")
			},
			error: errors.ErrInvalidLongPress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFile(tt.path(t))

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				assert.Nil(t, cfg)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, cfg)

			if tt.inspect != nil {
				tt.inspect(t, cfg)
			}
		})
	}
}

func Test_LoadFile_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ARTSPACE_LOGGING_LEVEL", "warn")
	t.Setenv("ARTSPACE_UI_ANIMATE", "false")

	path := writeConfig(t, "logging:\n  level: debug\n")

	cfg, err := LoadFile(path)

	assert.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.UI.Animate)
}

func Test_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *Config)
		error  error
	}{
		{name: "defaults are valid", modify: func(cfg *Config) {}},
		{name: "unknown level", modify: func(cfg *Config) { cfg.Logging.Level = "verbose" }, error: errors.ErrInvalidLogLevel},
		{name: "unknown format", modify: func(cfg *Config) { cfg.Logging.Format = "xml" }, error: errors.ErrInvalidLogFormat},
		{name: "negative long press", modify: func(cfg *Config) { cfg.UI.LongPress = -time.Second }, error: errors.ErrInvalidLongPress},
		{name: "negative debounce", modify: func(cfg *Config) { cfg.Assets.Debounce = -time.Second }, error: errors.ErrInvalidDebounce},
		{name: "no patterns", modify: func(cfg *Config) { cfg.Assets.Patterns = nil }, error: errors.ErrAssetPatternsRequired},
		{name: "broken pattern", modify: func(cfg *Config) { cfg.Assets.Patterns = []string{"[a-"} }, error: errors.ErrInvalidAssetPattern},
		{name: "zero debounce allowed", modify: func(cfg *Config) { cfg.Assets.Debounce = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_Normalize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "  INFO "
	cfg.Assets.Dir = " ./art "
	cfg.Assets.Patterns = []string{" *.txt ", "", "  "}

	cfg.normalize()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "./art", cfg.Assets.Dir)
	assert.Equal(t, []string{"*.txt"}, cfg.Assets.Patterns)
}
