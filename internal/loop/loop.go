// Package loop implements the probe's ticker loop: one counter
// incremented at a fixed cadence, with a status report every time the
// counter reaches a multiple of the report interval.
package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/and161185/liveness-probe/model"
)

// Sink receives the probe's line-oriented output. Each line must reach
// the consumer promptly (flush-on-write).
type Sink interface {
	Announce() error
	Report(model.Status) error
}

// Config is the immutable runtime config of the loop.
type Config struct {
	TickInterval   time.Duration // Minimum delay between two counter increments.
	ReportInterval uint64        // A report is emitted when the counter is a multiple of this.
	MaxTicks       uint64        // Stop after this many ticks; 0 means run forever.
}

// Loop drives an unbounded increment/suspend/report cycle. The counter
// is owned exclusively by the goroutine running Run.
type Loop struct {
	cfg     Config
	sink    Sink
	clock   Clock
	counter uint64
}

// Option overrides a Loop dependency.
type Option func(*Loop)

// WithClock replaces the real clock, for tests.
func WithClock(c Clock) Option {
	return func(l *Loop) { l.clock = c }
}

// New creates a loop with immutable config.
func New(cfg Config, sink Sink, opts ...Option) (*Loop, error) {
	if cfg.TickInterval <= 0 {
		return nil, errors.New("loop: tick interval must be > 0")
	}
	if cfg.ReportInterval == 0 {
		return nil, errors.New("loop: report interval must be > 0")
	}
	if sink == nil {
		return nil, errors.New("loop: sink required")
	}
	l := &Loop{cfg: cfg, sink: sink, clock: realClock{}}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Count returns the counter value. Not synchronized: valid only before
// Run starts or after it returns.
func (l *Loop) Count() uint64 { return l.counter }

// Run announces once, then ticks until the context is cancelled, the
// sink fails, or MaxTicks is reached. With the production config
// (MaxTicks 0, background context) it never returns unless a write
// fails.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.sink.Announce(); err != nil {
		return fmt.Errorf("announce: %w", err)
	}

	t := l.clock.NewTimer(l.cfg.TickInterval)
	defer t.Stop()

	for {
		l.counter++

		// Per-iteration timer: at least TickInterval elapses between
		// consecutive increments, never less.
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C():
		}

		if l.counter%l.cfg.ReportInterval == 0 {
			if err := l.sink.Report(model.Status{Count: l.counter, At: time.Now()}); err != nil {
				return fmt.Errorf("report %d: %w", l.counter, err)
			}
		}

		if l.cfg.MaxTicks > 0 && l.counter >= l.cfg.MaxTicks {
			return nil
		}

		t.Reset(l.cfg.TickInterval)
	}
}
