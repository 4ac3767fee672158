package viewer

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"artspace/internal/app/gesture"
	"artspace/internal/app/monitor"
	"artspace/internal/app/ui/components"
)

// longPressMsg fires when a button has been held for the long-press threshold
type longPressMsg struct {
	button string
	seq    int
}

// slideFrameMsg advances the slide animation
type slideFrameMsg time.Time

// assetChangedMsg carries the ref of art reloaded from disk
type assetChangedMsg string

// assetsClosedMsg signals the asset watcher has stopped
type assetsClosedMsg struct{}

// statsMsg carries a process stats sample
type statsMsg struct {
	stats monitor.Stats
	err   error
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width

		if !m.state.ready {
			m.state.ready = true
		}

		return m, nil

	case longPressMsg:
		return m.handleLongPress(msg)

	case slideFrameMsg:
		if m.ui.slide.Update() {
			return m, slideFrameCmd()
		}

		return m, nil

	case assetChangedMsg:
		m.log.Debug().Msgf("TUI: Art for '%s' reloaded", string(msg))

		return m, waitForChangeCmd(m.watcher.Changes())

	case assetsClosedMsg:
		m.log.Debug().Msg("TUI: Asset watcher closed")

		return m, nil

	case statsMsg:
		if msg.err != nil {
			m.log.Debug().Err(msg.err).Msg("TUI: Failed to sample process stats")
		} else {
			m.state.stats = msg.stats
		}

		return m, statsCmd(m.ctx, m.monitor)
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ui.keys.ForceQuit):
		m.log.Warn().Msg("TUI: Force quit requested, exiting immediately")
		return m, tea.Quit

	case key.Matches(msg, m.ui.keys.Quit):
		m.log.Debug().Msg("TUI: Quit requested")
		return m, tea.Quit

	case key.Matches(msg, m.ui.keys.Previous):
		return m.step(gesture.Backward, "Previous key pressed")

	case key.Matches(msg, m.ui.keys.Next):
		return m.step(gesture.Forward, "Next key pressed")

	case key.Matches(msg, m.ui.keys.Copy):
		return m.handleCopy()

	case key.Matches(msg, m.ui.keys.Help):
		m.ui.help.ShowAll = !m.ui.help.ShowAll
		return m, nil
	}

	return m, nil
}

// handleCopy copies the current citation and reports the outcome in the notice line
func (m Model) handleCopy() (tea.Model, tea.Cmd) {
	citation, err := m.controller.Copy()
	if err != nil {
		m.log.Warn().Err(err).Msg("TUI: Failed to copy citation")

		m.state.notice = "Could not copy the citation"
		m.state.failed = true

		return m, nil
	}

	m.state.notice = "Copied: " + citation
	m.state.failed = false

	return m, nil
}

// handleMouse routes pointer events to the buttons or the artwork drag
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		return m.handlePointerDown(msg.X, m.hitTest(msg.X, msg.Y))

	case tea.MouseActionMotion:
		return m.handlePointerMove(msg.X, m.hitTest(msg.X, msg.Y))

	case tea.MouseActionRelease:
		return m.handlePointerUp()
	}

	return m, nil
}

// handlePointerDown starts a button press or an artwork drag
func (m Model) handlePointerDown(x int, target region) (tea.Model, tea.Cmd) {
	switch target {
	case regionPrevious:
		return m, m.press(m.ui.previous)
	case regionNext:
		return m, m.press(m.ui.next)
	case regionArtwork:
		m.ui.drag.Start(m.ctx)
		m.ui.dragX = x
	}

	return m, nil
}

// handlePointerMove feeds drag deltas and cancels presses the pointer has left
func (m Model) handlePointerMove(x int, target region) (tea.Model, tea.Cmd) {
	if m.ui.drag.Active() {
		dx := x - m.ui.dragX
		m.ui.dragX = x

		if dir := m.ui.drag.Delta(m.ctx, float64(dx)); dir != gesture.None {
			return m.step(dir, "Swiped "+dir.String())
		}

		return m, nil
	}

	if target != regionPrevious && m.ui.previous.State() != gesture.Released {
		m.ui.previous.Cancel(m.ctx)
		m.log.Debug().Msg("Previous button press cancelled")
	}

	if target != regionNext && m.ui.next.State() != gesture.Released {
		m.ui.next.Cancel(m.ctx)
		m.log.Debug().Msg("Next button press cancelled")
	}

	return m, nil
}

// handlePointerUp ends a drag or releases a pressed button, stepping on a tap
func (m Model) handlePointerUp() (tea.Model, tea.Cmd) {
	if m.ui.drag.Active() {
		m.ui.drag.End(m.ctx)
		return m, nil
	}

	if m.ui.previous.State() != gesture.Released {
		tapped := m.ui.previous.Up(m.ctx)
		m.log.Debug().Msgf("Previous button released, showPreviousTooltip: %t", m.ui.previous.TooltipVisible())

		if tapped {
			return m.step(gesture.Backward, "Previous button clicked")
		}
	}

	if m.ui.next.State() != gesture.Released {
		tapped := m.ui.next.Up(m.ctx)
		m.log.Debug().Msgf("Next button released, showNextTooltip: %t", m.ui.next.TooltipVisible())

		if tapped {
			return m.step(gesture.Forward, "Next button clicked")
		}
	}

	return m, nil
}

// handleLongPress shows the tooltip of a button still held after the threshold
func (m Model) handleLongPress(msg longPressMsg) (tea.Model, tea.Cmd) {
	press := m.button(msg.button)
	if press == nil {
		return m, nil
	}

	if press.Hold(m.ctx, msg.seq) {
		m.log.Debug().Msgf("%s button long pressed, tooltip: %t", press.Name(), press.TooltipVisible())
	}

	return m, nil
}

// press starts a button press and schedules its long-press check
func (m Model) press(p *gesture.Press) tea.Cmd {
	seq := p.Down(m.ctx)

	return longPressCmd(m.cfg.UI.LongPress, p.Name(), seq)
}

// step navigates one artwork and starts the slide animation
func (m Model) step(dir gesture.Direction, source string) (tea.Model, tea.Cmd) {
	if !m.controller.Step(dir, source) {
		return m, nil
	}

	m.state.tip++
	m.state.notice = ""
	m.state.failed = false

	if !m.cfg.UI.Animate {
		return m, nil
	}

	from := float64(components.SlideDistance)
	if dir == gesture.Backward {
		from = -from
	}

	running := m.ui.slide.IsActive()
	m.ui.slide.Start(from)

	if running {
		return m, nil
	}

	return m, slideFrameCmd()
}

// longPressCmd reports a long press for seq once the threshold elapses
func longPressCmd(threshold time.Duration, button string, seq int) tea.Cmd {
	return tea.Tick(threshold, func(time.Time) tea.Msg {
		return longPressMsg{button: button, seq: seq}
	})
}

// slideFrameCmd returns a command that sends the next slide frame
func slideFrameCmd() tea.Cmd {
	return tea.Tick(components.SlideTickInterval, func(t time.Time) tea.Msg {
		return slideFrameMsg(t)
	})
}

// waitForChangeCmd waits for the next reloaded art ref
func waitForChangeCmd(changes <-chan string) tea.Cmd {
	return func() tea.Msg {
		ref, ok := <-changes
		if !ok {
			return assetsClosedMsg{}
		}

		return assetChangedMsg(ref)
	}
}

// statsCmd samples the viewer's own resource usage after the polling interval
func statsCmd(ctx context.Context, mon monitor.Monitor) tea.Cmd {
	return tea.Tick(components.StatsPollingInterval, func(time.Time) tea.Msg {
		sampleCtx, cancel := context.WithTimeout(ctx, components.StatsTimeout)
		defer cancel()

		stats, err := mon.Self(sampleCtx)

		return statsMsg{stats: stats, err: err}
	})
}
