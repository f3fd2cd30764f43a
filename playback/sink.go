// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"
)

// Sink receives each frame as it becomes active. The buffer is only valid
// until the next swap; implementations that keep it must copy.
type Sink interface {
	Play(frame []int16) error
}

// NullSink discards everything.
type NullSink struct{}

func (NullSink) Play([]int16) error { return nil }

// RecordSink appends every frame to memory.
type RecordSink struct {
	mtx     sync.Mutex
	samples []int16
	frames  int
}

func (r *RecordSink) Play(frame []int16) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.samples = append(r.samples, frame...)
	r.frames++
	return nil
}

// Samples returns a copy of everything played so far.
func (r *RecordSink) Samples() []int16 {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]int16(nil), r.samples...)
}

func (r *RecordSink) Frames() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.frames
}

// WriterSink streams frames as raw little-endian 16-bit mono PCM.
type WriterSink struct {
	w   io.Writer
	buf []byte
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Play(frame []int16) error {
	s.buf = s.buf[:0]
	for _, v := range frame {
		s.buf = binary.LittleEndian.AppendUint16(s.buf, uint16(v))
	}

	if _, err := s.w.Write(s.buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

type teeSink []Sink

// Tee plays every frame to each sink in order. All sinks are called; the
// first error is returned.
func Tee(sinks ...Sink) Sink {
	return teeSink(sinks)
}

func (t teeSink) Play(frame []int16) error {
	var first error
	for _, s := range t {
		if err := s.Play(frame); err != nil && first == nil {
			first = err
		}
	}
	return first
}
