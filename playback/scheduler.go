// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"time"

	"github.com/decred/slog"
)

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithTicks replaces the internal ticker with ticks. Run stops when the
// channel is closed.
func WithTicks(ticks <-chan time.Time) SchedulerOption {
	return func(s *Scheduler) { s.ticks = ticks }
}

// WithBudget stops Run after n frames. Zero means no limit.
func WithBudget(n int) SchedulerOption {
	return func(s *Scheduler) { s.budget = n }
}

// WithFrameHook calls fn after every frame, from the Run goroutine.
func WithFrameHook(fn func(*Engine)) SchedulerOption {
	return func(s *Scheduler) { s.hook = fn }
}

func WithSchedulerLogger(log slog.Logger) SchedulerOption {
	return func(s *Scheduler) { s.log = log }
}

// Scheduler drives an Engine once per frame period: swap buffers so the
// frame decoded last tick starts playing, then decode the next one. Late
// ticks are not detected; a slow sink simply delays the next frame.
type Scheduler struct {
	engine *Engine
	ticks  <-chan time.Time
	budget int
	hook   func(*Engine)
	log    slog.Logger

	frames    int
	sinkFails int
}

func NewScheduler(e *Engine, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		engine: e,
		log:    slog.Disabled,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run blocks until ctx is done, the budget is spent or the injected tick
// channel closes. Only cancellation is reported as an error.
func (s *Scheduler) Run(ctx context.Context) error {
	ticks := s.ticks
	var ticker *time.Ticker
	period := s.engine.FramePeriod()

	if ticks == nil {
		ticker = time.NewTicker(period)
		defer ticker.Stop()
		ticks = ticker.C
	}

	s.log.Debugf("Scheduler started, frame period %v", period)

	for s.budget == 0 || s.frames < s.budget {
		select {
		case <-ctx.Done():
			s.log.Debugf("Scheduler cancelled after %d frames", s.frames)
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				s.log.Debugf("Tick source closed after %d frames", s.frames)
				return nil
			}
		}

		s.step()

		// PGDA tracks carry their own rate.
		if ticker != nil {
			if p := s.engine.FramePeriod(); p != period {
				period = p
				ticker.Reset(period)
				s.log.Debugf("Frame period now %v", period)
			}
		}
	}

	s.log.Debugf("Scheduler finished %d frames", s.frames)
	return nil
}

func (s *Scheduler) step() {
	if err := s.engine.BufferSwap(); err != nil {
		s.sinkFails++
		s.log.Warnf("Sink rejected frame %d: %v", s.frames, err)
	}
	s.engine.Tick()
	s.frames++

	if s.hook != nil {
		s.hook(s.engine)
	}
}

// Frames run so far.
func (s *Scheduler) Frames() int { return s.frames }

// SinkFailures is the number of frames the sink returned an error for.
func (s *Scheduler) SinkFailures() int { return s.sinkFails }
