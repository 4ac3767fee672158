package viewer

import (
	"context"
	"math/rand/v2"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"artspace/internal/app/assets"
	"artspace/internal/app/gesture"
	"artspace/internal/app/monitor"
	"artspace/internal/app/navigation"
	"artspace/internal/app/ui/components"
	"artspace/internal/config"
	"artspace/internal/config/logger"
)

// Model represents the Bubble Tea model for the gallery screen
type Model struct {
	ctx        context.Context
	cfg        *config.Config
	controller Controller
	navigator  navigation.Navigator
	provider   assets.Provider
	watcher    assets.Watcher
	monitor    monitor.Monitor

	state struct {
		ready  bool
		stats  monitor.Stats
		notice string
		failed bool
		tip    int
	}

	ui struct {
		width    int
		height   int
		keys     KeyMap
		help     help.Model
		previous *gesture.Press
		next     *gesture.Press
		drag     *gesture.Drag
		dragX    int
		slide    *components.Slide
	}

	log logger.Logger
}

// NewModel creates a new gallery UI model
func NewModel(
	ctx context.Context,
	cfg *config.Config,
	controller Controller,
	navigator navigation.Navigator,
	provider assets.Provider,
	watcher assets.Watcher,
	monitor monitor.Monitor,
	log logger.Logger,
) Model {
	log = log.WithComponent("UI")

	m := Model{
		ctx:        ctx,
		cfg:        cfg,
		controller: controller,
		navigator:  navigator,
		provider:   provider,
		watcher:    watcher,
		monitor:    monitor,
		log:        log,
	}

	m.state.ready = false
	m.state.tip = rand.IntN(len(components.Tips)) //nolint:gosec // not security-critical

	m.ui.keys = DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.previous = gesture.NewPress(previousButton, cfg.UI.Tooltips, log)
	m.ui.next = gesture.NewPress(nextButton, cfg.UI.Tooltips, log)
	m.ui.drag = gesture.NewDrag(log)
	m.ui.slide = components.NewSlide()

	log.Debug().Msgf("Created model with %d artworks", navigator.Len())

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, 2)

	if m.watcher.Enabled() {
		cmds = append(cmds, waitForChangeCmd(m.watcher.Changes()))
	}

	if m.cfg.UI.Stats {
		cmds = append(cmds, statsCmd(m.ctx, m.monitor))
	}

	return tea.Batch(cmds...)
}

// button returns the press tracker for the named button
func (m Model) button(name string) *gesture.Press {
	switch name {
	case previousButton:
		return m.ui.previous
	case nextButton:
		return m.ui.next
	default:
		return nil
	}
}

// contentWidth returns the width available for rendering
func (m Model) contentWidth() int {
	if m.ui.width <= 0 {
		return components.DefaultWidth
	}

	return m.ui.width
}
