// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/retropbx/utils"
)

// PCMWriter accepts integer PCM. The go-audio WAV and AIFF encoders satisfy it.
type PCMWriter interface {
	Write(buf *goaudio.IntBuffer) error
}

// CopyPCM drains src into w as 16-bit integer PCM, blockSize samples at a
// time, and returns the number of samples written.
func CopyPCM(w PCMWriter, src Source, blockSize int) (int, error) {
	if blockSize <= 0 {
		blockSize = src.BufSize()
	}

	floats := make([]float32, blockSize)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: src.Channels(),
			SampleRate:  src.SampleRate(),
		},
		Data:           make([]int, blockSize),
		SourceBitDepth: 16,
	}

	total := 0
	for {
		n, err := src.ReadSamples(floats)
		if n > 0 {
			buf.Data = buf.Data[:n]
			for i, v := range floats[:n] {
				buf.Data[i] = int(utils.Float32ToInt16(v))
			}
			if werr := w.Write(buf); werr != nil {
				return total, fmt.Errorf("%w", werr)
			}
			total += n
		}

		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, fmt.Errorf("%w", err)
		}
	}
}

// PCM16Source serves a mono int16 buffer as a Source.
type PCM16Source struct {
	rate    int
	samples []int16
	pos     int
}

// NewPCM16Source wraps samples without copying them.
func NewPCM16Source(sampleRate int, samples []int16) *PCM16Source {
	return &PCM16Source{rate: sampleRate, samples: samples}
}

func (s *PCM16Source) SampleRate() int { return s.rate }
func (s *PCM16Source) Channels() int   { return 1 }
func (s *PCM16Source) BufSize() int    { return 4096 }
func (s *PCM16Source) Close() error    { return nil }

func (s *PCM16Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	n := copy16(dst, s.samples[s.pos:])
	s.pos += n
	return n, nil
}

func copy16(dst []float32, src []int16) int {
	n := min(len(dst), len(src))
	for i, v := range src[:n] {
		dst[i] = utils.Int16ToFloat32(v)
	}
	return n
}
