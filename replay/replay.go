// SPDX-License-Identifier: MIT

// Package replay paces a computed trace step by step.
//
// Structures compute a whole operation eagerly and return its Trace; a
// Player hands those steps to a callback one at a time with a fixed pause
// between them, which is what a visual front end animates.
//
//	p, _ := replay.New(replay.WithSpeed(700)) // 300ms between steps
//	err := p.Play(ctx, tr, func(i int, s core.Step) error {
//		fmt.Println(i, s)
//		return nil
//	})
//
// Play returns ctx.Err() when the context ends mid-trace and the callback's
// error when it returns one; steps after that point are not delivered.
package replay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lvheap/core"
)

// ErrOptionViolation indicates an invalid Player option.
var ErrOptionViolation = errors.New("replay: invalid option")

const (
	// DefaultInterval is the pause between steps when no option is given.
	DefaultInterval = 500 * time.Millisecond

	// MinSpeed and MaxSpeed bound the speed slider accepted by WithSpeed.
	MinSpeed = 100
	MaxSpeed = 900

	speedBase = 1000 * time.Millisecond
)

// Options configures a Player.
type Options struct {
	// Interval is the pause between two delivered steps; 0 disables pacing.
	Interval time.Duration

	err error
}

// Option configures a Player.
type Option func(*Options)

// WithInterval sets the pause between steps directly.
func WithInterval(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative interval %v", ErrOptionViolation, d)
			return
		}
		o.Interval = d
	}
}

// WithSpeed sets the interval from a speed slider in [MinSpeed, MaxSpeed]:
// interval = 1000ms - speed, so a higher speed means shorter pauses.
func WithSpeed(speed int) Option {
	return func(o *Options) {
		if speed < MinSpeed || speed > MaxSpeed {
			o.err = fmt.Errorf("%w: speed %d outside [%d, %d]", ErrOptionViolation, speed, MinSpeed, MaxSpeed)
			return
		}
		o.Interval = speedBase - time.Duration(speed)*time.Millisecond
	}
}

// Player delivers trace steps at a fixed pace.
type Player struct {
	interval time.Duration
}

// New returns a Player; invalid options fail with ErrOptionViolation.
func New(opts ...Option) (*Player, error) {
	o := Options{Interval: DefaultInterval}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Player{interval: o.Interval}, nil
}

// Interval returns the pause between steps.
func (p *Player) Interval() time.Duration { return p.interval }

// Play calls fn for each step of tr in order, pausing Interval between
// consecutive steps (not before the first, not after the last).
func (p *Player) Play(ctx context.Context, tr core.Trace, fn func(i int, s core.Step) error) error {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for i, s := range tr {
		if i > 0 && p.interval > 0 {
			if timer == nil {
				timer = time.NewTimer(p.interval)
			} else {
				timer.Reset(p.interval)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(i, s); err != nil {
			return fmt.Errorf("replay: step %d (%s): %w", i, s.Action, err)
		}
	}

	return nil
}
