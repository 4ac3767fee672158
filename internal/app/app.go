package app

import (
	"context"

	"go.uber.org/fx"

	"artspace/internal/app/cli"
	"artspace/internal/config/logger"
)

// App represents the main application container
type App struct {
	cli        cli.CLI
	shutdowner fx.Shutdowner
	log        logger.Logger
	done       chan struct{}
}

// NewApp creates a new application instance with its dependencies
func NewApp(cli cli.CLI, shutdowner fx.Shutdowner, log logger.Logger) *App {
	return &App{
		cli:        cli,
		shutdowner: shutdowner,
		log:        log,
		done:       make(chan struct{}),
	}
}

// Run executes the command and asks fx to stop with its exit code
func (a *App) Run() {
	exitCode := a.execute()
	close(a.done)

	if err := a.shutdowner.Shutdown(fx.ExitCode(exitCode)); err != nil {
		a.log.Error().Err(err).Msg("Failed to shut down")
	}
}

// execute runs the CLI and returns exit code - extracted for testing
func (a *App) execute() int {
	exitCode, err := a.cli.Execute()
	if err != nil {
		a.log.Error().Err(err).Msg("Application error")
	}

	return exitCode
}

// Register registers the application's lifecycle hooks with fx
func Register(lifecycle fx.Lifecycle, app *App) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Run()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-app.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
