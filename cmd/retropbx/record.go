// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ik5/retropbx"
	"github.com/ik5/retropbx/audio"
	"github.com/ik5/retropbx/playback"
)

var errNothingRecorded = errors.New("no track was played")

// segment is a run of recorded frames that share one sample rate.
type segment struct {
	rate    int
	samples []int16
}

// recorder is a playback.Sink that keeps the sample rate of every frame it
// receives. The engine decodes into the filling buffer on one tick and hands
// it to the sink on the next swap, so noteRate must run after each tick.
type recorder struct {
	mtx      sync.Mutex
	pending  int
	lead     []int16
	segments []segment
	frames   int
}

// noteRate records the rate of the frame just decoded. A failed track has no
// rate; its silent frames join the segment before them.
func (r *recorder) noteRate(e *playback.Engine) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.pending = e.Status().SampleRate
}

func (r *recorder) Play(frame []int16) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.frames++
	last := len(r.segments) - 1

	switch {
	case r.pending == 0 && last < 0:
		r.lead = append(r.lead, frame...)
	case r.pending == 0 || (last >= 0 && r.segments[last].rate == r.pending):
		r.segments[last].samples = append(r.segments[last].samples, frame...)
	default:
		r.segments = append(r.segments, segment{rate: r.pending, samples: append(r.lead, frame...)})
		r.lead = nil
	}
	return nil
}

func (r *recorder) Frames() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.frames
}

// Rates lists the distinct sample rates recorded, in order of appearance.
func (r *recorder) Rates() []int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	var rates []int
	seen := make(map[int]bool)
	for _, s := range r.segments {
		if !seen[s.rate] {
			seen[s.rate] = true
			rates = append(rates, s.rate)
		}
	}
	return rates
}

// Render joins every segment at rate, resampling those recorded at another
// rate. A rate of 0 uses the rate of the first segment.
func (r *recorder) Render(rate int) ([]int16, int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if len(r.segments) == 0 {
		return nil, 0, errNothingRecorded
	}
	if rate <= 0 {
		rate = r.segments[0].rate
	}

	var out []int16
	for _, s := range r.segments {
		if s.rate == rate {
			out = append(out, s.samples...)
			continue
		}

		pcm, _, err := retropbx.RenderPCM16(audio.NewPCM16Source(s.rate, s.samples), rate, 0)
		if err != nil {
			return nil, rate, fmt.Errorf("resample %d Hz segment: %w", s.rate, err)
		}
		out = append(out, pcm...)
	}

	return out, rate, nil
}
