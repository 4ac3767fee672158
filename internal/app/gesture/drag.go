package gesture

import (
	"context"

	"github.com/looplab/fsm"

	"artspace/internal/config/logger"
)

// Drag states
const (
	Idle  = "idle"
	Armed = "armed"
	Spent = "spent"
)

// Drag events
const (
	begin  = "begin"
	step   = "step"
	finish = "finish"
)

// Drag tracks one horizontal drag at a time and lets it step the gallery at most once
type Drag struct {
	fsm *fsm.FSM
}

// NewDrag creates an idle drag tracker
func NewDrag(log logger.Logger) *Drag {
	return &Drag{
		fsm: fsm.NewFSM(
			Idle,
			fsm.Events{
				{Name: begin, Src: []string{Idle, Spent}, Dst: Armed},
				{Name: step, Src: []string{Armed}, Dst: Spent},
				{Name: finish, Src: []string{Armed, Spent}, Dst: Idle},
			},
			fsm.Callbacks{
				"after_event": func(ctx context.Context, e *fsm.Event) {
					log.Debug().Msgf("DRAG %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
				},
			},
		),
	}
}

// Start arms the tracker when a drag begins
func (d *Drag) Start(ctx context.Context) {
	d.fire(ctx, begin)
}

// Delta reports the direction to step for a drag movement, or None when the drag
// is not armed or did not move horizontally
func (d *Drag) Delta(ctx context.Context, dx float64) Direction {
	dir := FromDelta(dx)
	if dir == None || !d.fsm.Can(step) {
		return None
	}

	d.fire(ctx, step)

	return dir
}

// End returns the tracker to idle when the drag finishes
func (d *Drag) End(ctx context.Context) {
	d.fire(ctx, finish)
}

// Cancel returns the tracker to idle when the drag is interrupted
func (d *Drag) Cancel(ctx context.Context) {
	d.fire(ctx, finish)
}

// State returns the current tracker state
func (d *Drag) State() string {
	return d.fsm.Current()
}

// Active reports whether a drag is in progress
func (d *Drag) Active() bool {
	return d.fsm.Current() != Idle
}

func (d *Drag) fire(ctx context.Context, event string) {
	if !d.fsm.Can(event) {
		return
	}

	_ = d.fsm.Event(ctx, event)
}
