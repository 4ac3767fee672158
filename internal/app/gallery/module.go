package gallery

import "go.uber.org/fx"

// Module provides the built-in artwork collection
var Module = fx.Options(
	fx.Provide(DefaultCatalog),
)
