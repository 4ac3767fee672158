package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"artspace/internal/config"
)

func Test_NewLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		format   string
		expected zerolog.Level
	}{
		{name: "Default", level: config.DefaultLogLevel, format: config.DefaultLogFormat, expected: zerolog.InfoLevel},
		{name: "Debug level", level: DebugLevel, format: ConsoleFormat, expected: zerolog.DebugLevel},
		{name: "Warn level and json format", level: WarnLevel, format: JSONFormat, expected: zerolog.WarnLevel},
		{name: "Empty level and format (defaults)", level: "", format: "", expected: zerolog.InfoLevel},
		{name: "Trace level", level: TraceLevel, format: ConsoleFormat, expected: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format

			logger := NewLogger(cfg)

			appLogger, ok := logger.(*AppLogger)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, appLogger.log.GetLevel())
			assert.NotEmpty(t, cfg.Logging.Level)
			assert.NotEmpty(t, cfg.Logging.Format)
		})
	}
}

func Test_NewLoggerWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()
	cfg.Logging.Format = JSONFormat

	log := NewLoggerWithOutput(cfg, &buf).WithComponent("NAV")
	log.Info().Int("index", 3).Msg("Next button clicked")

	var entry map[string]interface{}
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "NAV", entry["component"])
	assert.Equal(t, "Next button clicked", entry["message"])
	assert.Equal(t, float64(3), entry["index"])
	assert.Equal(t, config.Version, entry["version"])
}

func Test_NewLoggerWithOutput_Console(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()

	log := NewLoggerWithOutput(cfg, &buf).WithComponent("UI")
	log.Warn().Err(errors.New("boom")).Msg("asset missing")

	output := buf.String()
	assert.Contains(t, output, "[UI]")
	assert.Contains(t, output, "asset missing")
	assert.Contains(t, output, "boom")
}

func Test_NewLoggerWithOutput_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()
	cfg.Logging.Level = ErrorLevel

	log := NewLoggerWithOutput(cfg, &buf)
	log.Debug().Msg("hidden")
	log.Info().Msg("hidden")

	assert.Empty(t, buf.String())
}

func Test_NewSilentLogger(t *testing.T) {
	log := NewSilentLogger()

	assert.NotNil(t, log)
	assert.NotPanics(t, func() {
		log.WithComponent("X").Error().Msg("dropped")
	})
}

func Test_getLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "Debug", level: DebugLevel, expected: zerolog.DebugLevel},
		{name: "Info", level: InfoLevel, expected: zerolog.InfoLevel},
		{name: "Warn", level: WarnLevel, expected: zerolog.WarnLevel},
		{name: "Error", level: ErrorLevel, expected: zerolog.ErrorLevel},
		{name: "Fatal", level: FatalLevel, expected: zerolog.FatalLevel},
		{name: "Panic", level: PanicLevel, expected: zerolog.PanicLevel},
		{name: "Trace", level: TraceLevel, expected: zerolog.TraceLevel},
		{name: "Unknown", level: "unknown", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.level))
		})
	}
}

func Test_Module(t *testing.T) {
	assert.NotNil(t, Module)
}
