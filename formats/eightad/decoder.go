// SPDX-License-Identifier: EPL-2.0

package eightad

import (
	"fmt"
	"io"

	"github.com/ik5/retropbx/audio"
	"github.com/ik5/retropbx/utils"
)

const sourceBlock = 2048 // samples decoded per refill, must be even

type source struct {
	state      State
	data       []byte
	pos        int
	sampleRate int
	block      []int8
	head, tail int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return 1 }
func (s *source) BufSize() int    { return sourceBlock }
func (s *source) Close() error    { return nil }

func (s *source) refill() bool {
	left := len(s.data) - s.pos
	if left <= 0 {
		return false
	}

	n := min(sourceBlock, SamplesForBytes(left))
	s.pos += s.state.Decode(s.block[:n], s.data[s.pos:], n)
	s.head, s.tail = 0, n

	return true
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	written := 0
	for written < len(dst) {
		if s.head >= s.tail && !s.refill() {
			if written == 0 {
				return 0, io.EOF
			}
			return written, nil
		}

		n := copy32(dst[written:], s.block[s.head:s.tail])
		s.head += n
		written += n
	}

	return written, nil
}

func copy32(dst []float32, src []int8) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = utils.Int8ToFloat32(src[i])
	}
	return n
}

// Decoder reads a whole 8AD stream and exposes it as an audio.Source.
// SampleRate defaults to DefaultSampleRate when zero.
type Decoder struct {
	SampleRate int
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading 8ad data: %w", err)
	}

	rate := d.SampleRate
	if rate <= 0 {
		rate = DefaultSampleRate
	}

	return &source{
		data:       data,
		sampleRate: rate,
		block:      make([]int8, sourceBlock),
	}, nil
}
