// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/retropbx/utils"
)

// Resampler converts a mono Source to another sample rate with cubic
// interpolation. Decoded PGDA tracks run at 4-8 kHz and 8AD at ~18 kHz, so it
// is mostly used to bring both to a common rate before export.
type Resampler struct {
	src     Source
	dstRate int
	step    float64 // source samples per output sample

	// hist[0..3] = s[t-1], s[t], s[t+1], s[t+2]
	hist   [4]float32
	primed bool
	frac   float64

	srcBuf []float32
	srcPos int
	srcLen int
	srcEOF bool
	tail   int // samples left to emit after the source ended
}

// NewResampler wraps src. It fails if src is not mono or dstRate is not
// positive.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if src.Channels() != 1 {
		return nil, ErrNotMono
	}
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidRate
	}

	return &Resampler{
		src:     src,
		dstRate: dstRate,
		step:    float64(src.SampleRate()) / float64(dstRate),
		srcBuf:  make([]float32, max(src.BufSize(), 256)),
	}, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return 1 }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// next pulls one sample from the source, refilling srcBuf as needed.
func (r *Resampler) next() (float32, bool, error) {
	for r.srcPos >= r.srcLen {
		if r.srcEOF {
			return 0, false, nil
		}

		n, err := r.src.ReadSamples(r.srcBuf)
		r.srcPos, r.srcLen = 0, n
		if errors.Is(err, io.EOF) {
			r.srcEOF = true
		} else if err != nil {
			return 0, false, fmt.Errorf("%w", err)
		}
		if n == 0 && !r.srcEOF {
			return 0, false, io.ErrNoProgress
		}
	}

	v := r.srcBuf[r.srcPos]
	r.srcPos++
	return v, true, nil
}

// shift moves the history window one source sample forward. Past the end of
// the source the last sample is repeated so the tail still interpolates.
func (r *Resampler) shift() (bool, error) {
	v, ok, err := r.next()
	if err != nil {
		return false, err
	}
	if !ok {
		if r.tail == 0 {
			return false, nil
		}
		r.tail--
		v = r.hist[3]
	}

	r.hist[0], r.hist[1], r.hist[2], r.hist[3] = r.hist[1], r.hist[2], r.hist[3], v
	return true, nil
}

func (r *Resampler) prime() (bool, error) {
	first, ok, err := r.next()
	if err != nil || !ok {
		return false, err
	}

	r.hist = [4]float32{first, first, first, first}
	consumed := 1
	for i := 2; i < 4; i++ {
		v, ok, err := r.next()
		if err != nil {
			return false, err
		}
		if !ok {
			break
		}
		r.hist[i] = v
		r.hist[3] = v
		consumed++
	}
	// Every look-ahead sample read here must still pass through hist[1].
	r.tail = consumed - 1
	r.primed = true

	return true, nil
}

// ReadSamples produces up to len(dst) samples at the destination rate.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if !r.primed {
		ok, err := r.prime()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, io.EOF
		}
	}

	written := 0
	for written < len(dst) {
		for r.frac >= 1.0 {
			r.frac -= 1.0
			ok, err := r.shift()
			if err != nil {
				return written, err
			}
			if !ok {
				return written, io.EOF
			}
		}

		dst[written] = utils.CubicInterpolate(r.hist[0], r.hist[1], r.hist[2], r.hist[3], float32(r.frac))
		written++
		r.frac += r.step
	}

	return written, nil
}
