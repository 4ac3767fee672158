package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"artspace/internal/app"
	"artspace/internal/app/cli"
	"artspace/internal/config"
	"artspace/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	options, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}

	cfg, err := loadConfig(options)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}

	output, err := logOutput(cfg, options)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}

	application := createApp(cfg, options, output)
	application.Run()
}

// loadConfig reads artspace.yaml; init falls back to defaults so a broken file can be regenerated
func loadConfig(options *cli.Options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil && options.Type == cli.CommandInit {
		return config.DefaultConfig(), nil
	}

	return cfg, err
}

// logOutput chooses where logs go; the gallery owns the terminal so its logs go to a file or nowhere
func logOutput(cfg *config.Config, options *cli.Options) (io.Writer, error) {
	if cfg.Logging.File != "" {
		return os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	}

	if options.Type == cli.CommandView {
		return io.Discard, nil
	}

	return os.Stderr, nil
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, options *cli.Options, output io.Writer) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg, options)),
		fx.Supply(cfg, options),
		app.Module,
		fx.Decorate(func(logger.Logger) logger.Logger {
			return logger.NewLoggerWithOutput(cfg, output)
		}),
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config, options *cli.Options) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel && options.Type != cli.CommandView {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
