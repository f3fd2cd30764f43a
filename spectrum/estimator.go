// SPDX-License-Identifier: EPL-2.0

// Package spectrum keeps a cheap per-band energy estimate of decoded audio.
//
// It is not a Fourier analysis. A one-pole low-pass stands in for bass and the
// sample-to-sample difference stands in for treble; each band accumulates a
// fixed blend of those and the raw amplitude. The visualizer reads the totals
// once per update tick and zeroes them.
package spectrum

const (
	MaxBands     = 8
	DefaultBands = 7

	// DefaultFilterShift gives lp += (s - lp) / 8.
	DefaultFilterShift = 3
)

// Option configures an Estimator.
type Option func(*Estimator)

// WithBands selects 7 or 8 bands. Other values are ignored.
func WithBands(n int) Option {
	return func(e *Estimator) {
		if n == 7 || n == 8 {
			e.bands = n
		}
	}
}

// WithFilterShift sets the low-pass shift k (1..7).
func WithFilterShift(k uint) Option {
	return func(e *Estimator) {
		if k >= 1 && k <= 7 {
			e.shift = k
		}
	}
}

// Estimator accumulates band energy for 8-bit range samples.
// It is not safe for concurrent use.
type Estimator struct {
	energy [MaxBands]int64
	count  uint32

	lowPass int
	prev    int

	bands int
	shift uint
}

func New(opts ...Option) *Estimator {
	e := &Estimator{bands: DefaultBands, shift: DefaultFilterShift}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Add folds one sample in [-128, 127] into the band totals.
func (e *Estimator) Add(sample int) {
	e.lowPass += (sample - e.lowPass) >> e.shift

	amp := abs(sample)
	bass := abs(e.lowPass)
	treble := abs(sample - e.prev)
	e.prev = sample

	e.energy[0] += int64(bass + bass>>1 + amp>>6)
	e.energy[1] += int64(bass + amp>>5)
	e.energy[2] += int64(amp + bass>>1 + treble>>2)
	e.energy[3] += int64(amp + treble>>1)
	e.energy[4] += int64(amp + treble)
	e.energy[5] += int64(amp + treble + treble>>1)
	e.energy[6] += int64(amp + amp>>3)
	if e.bands == MaxBands {
		e.energy[7] += int64(treble<<1 + amp>>2)
	}

	baseline := int64(amp >> 7)
	for i := range e.bands {
		e.energy[i] += baseline
	}

	e.count++
}

// AddFrame adds every sample of frame.
func (e *Estimator) AddFrame(frame []int8) {
	for _, s := range frame {
		e.Add(int(s))
	}
}

// NumBands is 7 or 8.
func (e *Estimator) NumBands() int { return e.bands }

// Bands returns a copy of the accumulated totals, one per band.
func (e *Estimator) Bands() []int64 {
	out := make([]int64, e.bands)
	copy(out, e.energy[:e.bands])
	return out
}

// Band returns the total for band i, 0 when i is out of range.
func (e *Estimator) Band(i int) int64 {
	if i < 0 || i >= e.bands {
		return 0
	}
	return e.energy[i]
}

// SampleCount is the number of samples added since the last reset.
func (e *Estimator) SampleCount() uint32 { return e.count }

// Reset zeroes the totals, the counter and the filter memory.
// Call it on track change and when pausing.
func (e *Estimator) Reset() {
	e.energy = [MaxBands]int64{}
	e.count = 0
	e.lowPass = 0
	e.prev = 0
}

// Snapshot returns the totals and sample count, then resets the totals and
// counter. Filter memory is kept so a continuous stream stays continuous.
func (e *Estimator) Snapshot() ([]int64, uint32) {
	bands, count := e.Bands(), e.count
	e.energy = [MaxBands]int64{}
	e.count = 0
	return bands, count
}
