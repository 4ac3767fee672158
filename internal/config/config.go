package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"artspace/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   string `mapstructure:"file"`
	} `mapstructure:"logging"`
	UI      UI     `mapstructure:"ui"`
	Assets  Assets `mapstructure:"assets"`
	Version int    `mapstructure:"version"`
}

// UI represents presentation settings of the gallery screen
type UI struct {
	LongPress time.Duration `mapstructure:"long_press"`
	Tooltips  bool          `mapstructure:"tooltips"`
	Animate   bool          `mapstructure:"animate"`
	Stats     bool          `mapstructure:"stats"`
}

// Assets represents where artwork art is read from and how overrides are watched
type Assets struct {
	Dir      string        `mapstructure:"dir"`
	Patterns []string      `mapstructure:"patterns"`
	Watch    bool          `mapstructure:"watch"`
	Debounce time.Duration `mapstructure:"debounce"`
}

var (
	logLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}
	logFormats = []string{"console", "json"}
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Version: 1,
	}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.UI.LongPress = DefaultLongPress
	cfg.UI.Tooltips = DefaultTooltips
	cfg.UI.Animate = DefaultAnimate
	cfg.UI.Stats = DefaultStats

	cfg.Assets.Patterns = []string{DefaultAssetPattern}
	cfg.Assets.Debounce = DefaultAssetDebounce

	return cfg
}

// Load loads the configuration from artspace.yaml in the working directory
func Load() (*Config, error) {
	return LoadFile(FileName)
}

// LoadFile loads the configuration from the given file, falling back to defaults when it is absent.
// Values from .env and ARTSPACE_* environment variables take precedence over the file.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !isNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	v := newViper(DefaultConfig())

	data, err := os.ReadFile(path)

	switch {
	case err == nil:
		if err := checkDocument(data); err != nil {
			return nil, errors.ErrFailedToParseConfig
		}

		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToReadConfig
		}
	case !isNotExist(err):
		return nil, errors.ErrFailedToReadConfig
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// newViper creates a viper instance seeded with defaults so environment overrides apply without a file
func newViper(defaults *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("version", defaults.Version)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("ui.long_press", defaults.UI.LongPress)
	v.SetDefault("ui.tooltips", defaults.UI.Tooltips)
	v.SetDefault("ui.animate", defaults.UI.Animate)
	v.SetDefault("ui.stats", defaults.UI.Stats)
	v.SetDefault("assets.dir", defaults.Assets.Dir)
	v.SetDefault("assets.patterns", defaults.Assets.Patterns)
	v.SetDefault("assets.watch", defaults.Assets.Watch)
	v.SetDefault("assets.debounce", defaults.Assets.Debounce)

	return v
}

// checkDocument ensures the config document is a mapping before handing it to viper
func checkDocument(data []byte) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return err
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}

	if root.Content[0].Kind != yaml.MappingNode {
		return errors.ErrFailedToParseConfig
	}

	return nil
}

// normalize trims and lowercases free-form values
func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Assets.Dir = strings.TrimSpace(c.Assets.Dir)

	patterns := make([]string, 0, len(c.Assets.Patterns))
	for _, p := range c.Assets.Patterns {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}

	c.Assets.Patterns = patterns
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateUI(); err != nil {
		return err
	}

	return c.validateAssets()
}

// validateLogging validates logging settings
func (c *Config) validateLogging() error {
	if !contains(logLevels, c.Logging.Level) {
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidLogLevel, c.Logging.Level)
	}

	if !contains(logFormats, c.Logging.Format) {
		return fmt.Errorf("%w: '%s' (must be 'console' or 'json')", errors.ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}

// validateUI validates presentation settings
func (c *Config) validateUI() error {
	if c.UI.LongPress <= 0 {
		return errors.ErrInvalidLongPress
	}

	return nil
}

// validateAssets validates asset settings
func (c *Config) validateAssets() error {
	if c.Assets.Debounce < 0 {
		return errors.ErrInvalidDebounce
	}

	if len(c.Assets.Patterns) == 0 {
		return errors.ErrAssetPatternsRequired
	}

	for _, p := range c.Assets.Patterns {
		if _, err := glob.Compile(p); err != nil {
			return fmt.Errorf("%w: '%s'", errors.ErrInvalidAssetPattern, p)
		}
	}

	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}

	return false
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
