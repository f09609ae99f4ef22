package game

import (
	"context"
	"fmt"
	"time"
)

// Presenter receives each rendered frame, e.g. to blit it to a window.
type Presenter interface {
	Present(Frame) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(Frame) error

func (f PresenterFunc) Present(fr Frame) error { return f(fr) }

// Loop is the fixed-rate driver: poll input, step, render, present, then
// block for one tick period. There is no delta-time compensation; every
// speed is tuned per tick. The headless runner and tests drive sessions
// through Loop; the ebiten frontend steps the session from its own Update
// and gets its cadence from ebiten's TPS instead of Sleep.
type Loop struct {
	Session   *Session
	Input     InputSource
	Presenter Presenter // nil skips rendering
	// Sleep blocks between ticks. Nil runs ticks back to back.
	Sleep func(time.Duration)
	// MaxTicks stops a still-running session after this many ticks; 0 means
	// no limit.
	MaxTicks int
}

// Run ticks until the session ends, MaxTicks is reached, the presenter
// fails or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) (Outcome, error) {
	period := time.Second / time.Duration(l.Session.Config().TickRate)
	for ticks := 0; l.MaxTicks <= 0 || ticks < l.MaxTicks; ticks++ {
		if err := ctx.Err(); err != nil {
			return l.Session.Outcome, err
		}
		outcome := l.Session.Step(l.Input.Poll())
		if outcome.Terminal() {
			return outcome, nil
		}
		if l.Presenter != nil {
			if err := l.Presenter.Present(Render(&l.Session.State, l.Session.Config())); err != nil {
				return l.Session.Outcome, fmt.Errorf("game: present tick %d: %w", l.Session.Tick, err)
			}
		}
		if l.Sleep != nil {
			l.Sleep(period)
		}
	}
	return l.Session.Outcome, nil
}
