package assets

import (
	"context"

	"go.uber.org/fx"
)

// Module provides the art provider and the override watcher
var Module = fx.Options(
	fx.Provide(
		NewProvider,
		NewWatcher,
	),
	fx.Invoke(Register),
)

// Register ties the watcher to the application lifecycle
func Register(lc fx.Lifecycle, w Watcher) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return w.Start()
		},
		OnStop: func(context.Context) error {
			w.Close()
			return nil
		},
	})
}
