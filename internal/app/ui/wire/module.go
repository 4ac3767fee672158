package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"artspace/internal/app/assets"
	"artspace/internal/app/monitor"
	"artspace/internal/app/navigation"
	"artspace/internal/app/ui/viewer"
	"artspace/internal/config"
	"artspace/internal/config/logger"
)

// UI creates a Bubble Tea program for the gallery screen
type UI func(ctx context.Context) (*tea.Program, error)

// Module aggregates all UI modules and provides the UI factory
var Module = fx.Options(
	viewer.Module,
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config     *config.Config
	Controller viewer.Controller
	Navigator  navigation.Navigator
	Provider   assets.Provider
	Watcher    assets.Watcher
	Monitor    monitor.Monitor
	Logger     logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context) (*tea.Program, error) {
		model := viewer.NewModel(
			ctx,
			params.Config,
			params.Controller,
			params.Navigator,
			params.Provider,
			params.Watcher,
			params.Monitor,
			params.Logger,
		)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithContext(ctx),
		)

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p, nil
	}
}
