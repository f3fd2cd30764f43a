// SPDX-License-Identifier: EPL-2.0

package pgda

import (
	"fmt"
	"io"

	"github.com/ik5/retropbx/audio"
	"github.com/ik5/retropbx/utils"
)

type source struct {
	stream *Stream
	pcm    []int16
}

func (s *source) SampleRate() int { return s.stream.SampleRate() }
func (s *source) Channels() int   { return 1 }
func (s *source) BufSize() int    { return BufferSize }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.stream.IsEndOfStream() {
		return 0, io.EOF
	}

	written := 0
	for written < len(dst) {
		n := s.stream.Decode(s.pcm, len(dst)-written)
		if n == 0 {
			break
		}

		for i, v := range s.pcm[:n] {
			if s.stream.Scaling() == ScaleNone {
				dst[written+i] = utils.Int8ToFloat32(int8(v))
			} else {
				dst[written+i] = utils.Int16ToFloat32(v)
			}
		}
		written += n
	}

	return written, nil
}

// Decoder reads a PGDA file and exposes it as an audio.Source.
type Decoder struct {
	Scaling Scaling
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading pgda data: %w", err)
	}

	st, err := NewStream(data, WithScaling(d.Scaling))
	if err != nil {
		return nil, err
	}

	return &source{
		stream: st,
		pcm:    make([]int16, BufferSize),
	}, nil
}
