package gesture

import (
	"context"

	"github.com/looplab/fsm"

	"artspace/internal/config/logger"
)

// Press states
const (
	Released = "released"
	Pressed  = "pressed"
	Held     = "held"
)

// Press events
const (
	down    = "down"
	hold    = "hold"
	release = "release"
)

// Press callbacks
const (
	OnHeld     = "enter_held"
	OnReleased = "enter_released"
)

// Press tracks the press lifecycle of one on-screen button and the visibility of its tooltip
type Press struct {
	name     string
	fsm      *fsm.FSM
	seq      int
	tooltips bool
	tooltip  bool
}

// NewPress creates a released press tracker; tooltips controls whether a long press shows the tooltip
func NewPress(name string, tooltips bool, log logger.Logger) *Press {
	p := &Press{name: name, tooltips: tooltips}

	p.fsm = fsm.NewFSM(
		Released,
		fsm.Events{
			{Name: down, Src: []string{Released}, Dst: Pressed},
			{Name: hold, Src: []string{Pressed}, Dst: Held},
			{Name: release, Src: []string{Pressed, Held}, Dst: Released},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("PRESS %s: %s → %s (trigger: %s), tooltip: %t", name, e.Src, e.Dst, e.Event, p.tooltip)
			},
			OnHeld: func(ctx context.Context, e *fsm.Event) {
				p.tooltip = p.tooltips
			},
			OnReleased: func(ctx context.Context, e *fsm.Event) {
				p.tooltip = false
			},
		},
	)

	return p
}

// Down starts a press and returns its sequence number for the long-press timer
func (p *Press) Down(ctx context.Context) int {
	if !p.fsm.Can(down) {
		return p.seq
	}

	p.seq++
	_ = p.fsm.Event(ctx, down)

	return p.seq
}

// Hold marks the press identified by seq as a long press and reports whether it was still down
func (p *Press) Hold(ctx context.Context, seq int) bool {
	if seq != p.seq || !p.fsm.Can(hold) {
		return false
	}

	_ = p.fsm.Event(ctx, hold)

	return true
}

// Up releases the press and reports whether it counts as a tap; long presses do not
func (p *Press) Up(ctx context.Context) bool {
	tapped := p.fsm.Current() == Pressed

	if p.fsm.Can(release) {
		_ = p.fsm.Event(ctx, release)
	}

	return tapped
}

// Cancel releases the press without a tap, for pointers that leave the button
func (p *Press) Cancel(ctx context.Context) {
	if p.fsm.Can(release) {
		_ = p.fsm.Event(ctx, release)
	}
}

// Name returns the button name
func (p *Press) Name() string {
	return p.name
}

// State returns the current press state
func (p *Press) State() string {
	return p.fsm.Current()
}

// TooltipVisible reports whether the tooltip should be drawn
func (p *Press) TooltipVisible() bool {
	return p.tooltip
}
