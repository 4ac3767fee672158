package app

import (
	"go.uber.org/fx"

	"artspace/internal/app/assets"
	"artspace/internal/app/cli"
	"artspace/internal/app/gallery"
	"artspace/internal/app/generator"
	"artspace/internal/app/monitor"
	"artspace/internal/app/navigation"
	"artspace/internal/app/ui/wire"
	"artspace/internal/config/logger"
)

var Module = fx.Options(
	logger.Module,
	gallery.Module,
	navigation.Module,
	assets.Module,
	monitor.Module,
	generator.Module,
	wire.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
