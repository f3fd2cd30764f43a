// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ik5/retropbx/catalog"
	"github.com/ik5/retropbx/formats/pgda"
	"github.com/ik5/retropbx/formats/wav"
	"github.com/ik5/retropbx/internal/cli"
	"github.com/ik5/retropbx/playback"
)

// barFullScale is the per-sample band energy drawn as a full bar.
const barFullScale = 256

type PlayCmd struct {
	Dir        string `arg:"" help:"Directory holding the tracks." type:"existingdir"`
	Format     string `help:"Track format to play." enum:"pgda,8ad" default:"8ad" env:"RETROPBX_FORMAT"`
	Track      int    `help:"Index of the first track." default:"0"`
	Frames     int    `help:"Stop after this many frames, 0 plays until interrupted." default:"0" env:"RETROPBX_FRAMES"`
	Bands      int    `help:"Spectrum bands, 7 or 8." default:"7" env:"RETROPBX_BANDS"`
	Narrow     bool   `help:"Send PGDA frames without widening to 16 bits."`
	Record     string `help:"Also write everything played to this WAV file." type:"path"`
	RecordRate int    `help:"Sample rate of the recording in Hz, 0 uses the first track that plays." default:"0" env:"RETROPBX_RECORD_RATE"`
	Raw        bool   `help:"Stream frames to stdout as raw s16le PCM."`
	Fast       bool   `help:"Run frames back to back instead of in real time."`
	Quiet      bool   `help:"Do not draw the status line."`
}

func (c *PlayCmd) config() (playback.Config, error) {
	f, err := playback.ParseFormat(c.Format)
	if err != nil {
		return playback.Config{}, err
	}

	cfg := playback.DefaultConfig(f)
	cfg.Bands = c.Bands
	if c.Narrow {
		cfg.Scaling = pgda.ScaleNone
	}
	return cfg, cfg.Validate()
}

// fastTicks ticks as fast as the receiver takes them until ctx is done.
func fastTicks(ctx context.Context) <-chan time.Time {
	ticks := make(chan time.Time)
	go func() {
		defer close(ticks)
		for {
			select {
			case <-ctx.Done():
				return
			case ticks <- time.Now():
			}
		}
	}()
	return ticks
}

func (c *PlayCmd) Run(g *Globals) error {
	log := g.Logger("PLAY")

	cfg, err := c.config()
	if err != nil {
		return err
	}

	arc, err := catalog.OpenDir(c.Dir, cfg.Format.Extension())
	if err != nil {
		return err
	}

	var sinks []playback.Sink
	var rec *recorder
	if c.Record != "" {
		rec = &recorder{}
		sinks = append(sinks, rec)
	}
	if c.Raw {
		sinks = append(sinks, playback.NewWriterSink(os.Stdout))
	}

	eng, err := playback.New(cfg, arc, playback.Tee(sinks...), playback.WithLogger(log))
	if err != nil {
		return err
	}
	eng.StartTrack(c.Track)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []playback.SchedulerOption{
		playback.WithBudget(c.Frames),
		playback.WithSchedulerLogger(log),
	}
	if c.Fast {
		opts = append(opts, playback.WithTicks(fastTicks(ctx)))
	}
	var hooks []func(*playback.Engine)
	if rec != nil {
		hooks = append(hooks, rec.noteRate)
	}
	if !c.Quiet {
		hooks = append(hooks, statusHook(eng.FramePeriod()))
	}
	if len(hooks) > 0 {
		opts = append(opts, playback.WithFrameHook(func(e *playback.Engine) {
			for _, h := range hooks {
				h(e)
			}
		}))
	}

	sched := playback.NewScheduler(eng, opts...)
	err = sched.Run(ctx)
	if !c.Quiet {
		fmt.Fprintln(os.Stderr)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if rec != nil {
		samples, rate, err := rec.Render(c.RecordRate)
		if err != nil {
			return fmt.Errorf("%s: %w", c.Record, err)
		}
		if rates := rec.Rates(); len(rates) > 1 || rates[0] != rate {
			log.Warnf("Recording holds tracks at %v Hz, resampled to %d Hz", rates, rate)
		}
		if err := writeRecording(c.Record, rate, samples); err != nil {
			return err
		}
		log.Infof("Recorded %d frames to %s at %d Hz", rec.Frames(), c.Record, rate)
	}

	if n := sched.SinkFailures(); n > 0 {
		return fmt.Errorf("sink failed on %d of %d frames", n, sched.Frames())
	}
	cli.PrintSuccess(fmt.Sprintf("played %d frames", sched.Frames()))
	return nil
}

// statusHook redraws the status line about 15 times a second.
func statusHook(period time.Duration) func(*playback.Engine) {
	every := max(1, int(time.Second/15/max(period, time.Millisecond)))
	frames := 0

	return func(e *playback.Engine) {
		frames++
		if frames%every != 0 {
			return
		}

		bands, count := e.Spectrum().Snapshot()
		st := e.Status()
		progress := 0.0
		if st.Length > 0 {
			progress = float64(st.Position) / float64(st.Length)
		}

		name := st.Name
		if st.State != playback.Playing {
			name += " (" + st.State.String() + ")"
		}
		cli.StatusLine(os.Stderr, st.Track+1, st.Tracks, name, progress,
			cli.SpectrumBars(bands, count, barFullScale))
	}
}

func writeRecording(path string, rate int, samples []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	if err := wav.WriteInt16(f, rate, samples); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
