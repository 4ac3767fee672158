package viewer

import "go.uber.org/fx"

// Module provides the gallery screen dependencies
var Module = fx.Options(
	fx.Provide(
		NewClipboard,
		NewController,
	),
)
