// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"path"
	"strings"
	"time"

	"github.com/decred/slog"

	"github.com/ik5/retropbx/catalog"
	"github.com/ik5/retropbx/formats/eightad"
	"github.com/ik5/retropbx/formats/pgda"
	"github.com/ik5/retropbx/spectrum"
)

// State of a playback session.
type State uint8

const (
	Idle State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Status is a point in time view of the session.
type Status struct {
	Track      int
	Tracks     int
	Name       string
	State      State
	Position   int // bytes into the track
	Length     int // track size in bytes
	SampleRate int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(log slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// Engine plays the tracks of an archive one frame at a time.
//
// Tick, StartTrack, Next, Prev, Seek and TogglePause are meant to be called
// from one goroutine. BufferSwap touches only the double buffer and the sink.
// It may run on another goroutine, but only between ticks: Tick picks the
// filling buffer once and decodes into it, so a swap during a Tick hands the
// half written frame to the sink. The Scheduler runs swap and tick in turn.
type Engine struct {
	cfg     Config
	archive catalog.Archive
	sink    Sink
	log     slog.Logger

	codec    FrameCodec
	buffers  *DoubleBuffer
	scratch  []int8
	spectrum *spectrum.Estimator

	track        int
	name         string
	state        State
	autoAdvanced bool
	// failures counts consecutive tracks that failed to load.
	failures int
}

// New builds an idle engine. A nil sink discards output.
func New(cfg Config, archive catalog.Archive, sink Sink, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	codec, err := newCodec(cfg)
	if err != nil {
		return nil, err
	}
	if sink == nil {
		sink = NullSink{}
	}

	e := &Engine{
		cfg:     cfg,
		archive: archive,
		sink:    sink,
		log:     slog.Disabled,
		codec:   codec,
		buffers: NewDoubleBuffer(cfg.FrameSamples),
		scratch: make([]int8, cfg.FrameSamples),
		spectrum: spectrum.New(
			spectrum.WithBands(cfg.Bands),
			spectrum.WithFilterShift(cfg.FilterShift),
		),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

func (e *Engine) tracks() int {
	if e.archive == nil {
		return 0
	}
	return e.archive.Count()
}

// StartTrack loads track i (taken modulo the track count) and starts playing
// it from the beginning. It does nothing when there are no tracks.
func (e *Engine) StartTrack(i int) {
	n := e.tracks()
	if n == 0 {
		return
	}
	i = ((i % n) + n) % n

	e.track = i
	e.autoAdvanced = false
	e.spectrum.Reset()
	e.state = Playing

	view, err := e.archive.Track(i)
	if err == nil {
		err = e.codec.Load(view)
	} else {
		_ = e.codec.Load(catalog.View{})
	}
	e.name = trackName(view.Name())

	if err != nil {
		e.failures++
		e.log.Warnf("Track %d/%d %q failed to load: %v", i+1, n, e.name, err)
		if e.failures >= n {
			e.log.Errorf("No playable tracks among %d, stopping", n)
			e.state = Idle
		}
		return
	}

	e.failures = 0
	e.log.Infof("Playing track %d/%d %q (%d Hz, %d bytes)",
		i+1, n, e.name, e.codec.SampleRate(), e.codec.Length())
}

// trackName strips directories and everything from the first dot.
func trackName(name string) string {
	name = path.Base(name)
	if name == "." || name == "/" {
		return ""
	}
	if i := strings.IndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return name
}

// Tick produces the next frame into the filling buffer.
func (e *Engine) Tick() {
	buf := e.buffers.Filling()

	if e.state != Playing {
		silence(buf)
		return
	}

	frameBytes := e.codec.FrameBytes(len(buf))
	if e.codec.Remaining() >= frameBytes && frameBytes > 0 {
		n, _ := e.codec.DecodeFrame(buf, e.scratch)
		silence(buf[n:])
		e.spectrum.AddFrame(e.scratch[:n])
		return
	}

	// End of track, or less than a frame left.
	silence(buf)
	if !e.autoAdvanced {
		e.autoAdvanced = true
		e.log.Debugf("Track %d ended at byte %d of %d", e.track+1, e.codec.Position(), e.codec.Length())
		e.StartTrack(e.track + 1)
	}
}

// TogglePause flips between Playing and Paused. Pausing also clears the
// spectrum so a visualizer falls to zero. It returns the resulting state.
func (e *Engine) TogglePause() State {
	switch e.state {
	case Playing:
		e.state = Paused
		e.spectrum.Reset()
	case Paused:
		e.state = Playing
	}
	return e.state
}

func (e *Engine) Next() { e.StartTrack(e.track + 1) }
func (e *Engine) Prev() { e.StartTrack(e.track - 1) }

// Seek moves the cursor by byteOffset, truncated toward zero to whole frames
// and clamped to the track. It returns the new byte position.
func (e *Engine) Seek(byteOffset int) int {
	if e.state == Idle {
		return 0
	}

	frameBytes := e.codec.FrameBytes(e.cfg.FrameSamples)
	delta := byteOffset / frameBytes * frameBytes
	if delta == 0 {
		return e.codec.Position()
	}

	pos := e.codec.Seek(delta)
	e.log.Debugf("Seek %+d bytes to %d/%d", delta, pos, e.codec.Length())
	return pos
}

// BufferSwap makes the filling buffer active and hands it to the sink.
func (e *Engine) BufferSwap() error {
	return e.sink.Play(e.buffers.Swap())
}

func (e *Engine) Status() Status {
	return Status{
		Track:      e.track,
		Tracks:     e.tracks(),
		Name:       e.name,
		State:      e.state,
		Position:   e.codec.Position(),
		Length:     e.codec.Length(),
		SampleRate: e.codec.SampleRate(),
	}
}

// Spectrum exposes the band estimator. Readers take the totals and reset it
// themselves, usually through Snapshot.
func (e *Engine) Spectrum() *spectrum.Estimator { return e.spectrum }

func (e *Engine) Buffers() *DoubleBuffer { return e.buffers }

func (e *Engine) Config() Config { return e.cfg }

// FramePeriod is how long one frame lasts at the current track rate, or at
// the format's nominal rate when no track is loaded.
func (e *Engine) FramePeriod() time.Duration {
	rate := e.codec.SampleRate()
	if rate <= 0 {
		rate = nominalRate(e.cfg.Format)
	}
	return time.Duration(e.cfg.FrameSamples) * time.Second / time.Duration(rate)
}

func nominalRate(f Format) int {
	if f == FormatPGDA {
		return pgda.MaxSampleRate
	}
	return eightad.DefaultSampleRate
}
