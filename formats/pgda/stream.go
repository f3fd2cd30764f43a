// SPDX-License-Identifier: EPL-2.0

package pgda

// Scaling selects how the 8-bit running sample is written to the int16 output.
type Scaling uint8

const (
	// ScaleWide shifts the sample left by 8 to use the full int16 range.
	ScaleWide Scaling = iota
	// ScaleNone writes the 8-bit value unchanged.
	ScaleNone
)

func (s Scaling) String() string {
	switch s {
	case ScaleWide:
		return "wide"
	case ScaleNone:
		return "none"
	default:
		return "unknown"
	}
}

// apply widens v according to s.
func (s Scaling) apply(v int8) int16 {
	if s == ScaleNone {
		return int16(v)
	}
	return int16(v) << 8
}

// Option configures a Stream.
type Option func(*Stream)

// WithScaling sets the output scaling, ScaleWide by default.
func WithScaling(s Scaling) Option {
	return func(st *Stream) { st.scaling = s }
}

// Stream is a PGDA decode cursor over a caller owned byte slice.
// The slice is read only and must stay valid while the stream is used.
type Stream struct {
	header   Header
	deltas   []byte
	position uint32
	running  int8
	scaling  Scaling
	ready    bool
}

// NewStream validates data and returns a stream positioned at the first delta.
func NewStream(data []byte, opts ...Option) (*Stream, error) {
	s := &Stream{}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Init(data); err != nil {
		return nil, err
	}

	return s, nil
}

// Init (re)binds s to data. On error s is left uninitialized.
func (s *Stream) Init(data []byte) error {
	if s == nil || data == nil {
		return ErrNullInput
	}

	s.ready = false
	if err := Validate(data); err != nil {
		return err
	}

	s.header = parseHeader(data)
	s.deltas = data[HeaderSize : HeaderSize+int(s.header.DeltaCount)]
	s.position = 0
	s.running = s.header.FirstSample
	s.ready = true

	return nil
}

// Decode writes up to n samples into dst and returns how many were produced.
// n is clamped to BufferSize, len(dst) and the samples remaining. A return of
// 0 means end of stream, or that the stream was never initialized.
func (s *Stream) Decode(dst []int16, n int) int {
	if s == nil || !s.ready || n <= 0 {
		return 0
	}

	n = min(n, BufferSize, len(dst), s.remaining())
	if n == 0 {
		return 0
	}

	cur := int16(s.running)
	for i, d := range s.deltas[s.position : s.position+uint32(n)] {
		cur = clamp8(cur + int16(int8(d)))
		dst[i] = s.scaling.apply(int8(cur))
	}

	s.position += uint32(n)
	s.running = int8(cur)

	return n
}

// Skip advances the cursor by up to n samples without producing output and
// returns how many were skipped. The running sample is kept exact.
func (s *Stream) Skip(n int) int {
	if s == nil || !s.ready || n <= 0 {
		return 0
	}

	n = min(n, s.remaining())
	cur := int16(s.running)
	for _, d := range s.deltas[s.position : s.position+uint32(n)] {
		cur = clamp8(cur + int16(int8(d)))
	}

	s.position += uint32(n)
	s.running = int8(cur)

	return n
}

// SeekTo moves the cursor to pos (clamped to the stream length) and rebuilds
// the running sample.
func (s *Stream) SeekTo(pos uint32) {
	if s == nil || !s.ready {
		return
	}

	pos = min(pos, s.header.DeltaCount)
	if pos < s.position {
		s.Reset()
	}
	s.Skip(int(pos - s.position))
}

// Reset rewinds to the first delta. No-op if never initialized.
func (s *Stream) Reset() {
	if s == nil || !s.ready {
		return
	}

	s.position = 0
	s.running = s.header.FirstSample
}

func (s *Stream) remaining() int {
	return int(s.header.DeltaCount - s.position)
}

// Header returns the parsed header, zero if never initialized.
func (s *Stream) Header() Header {
	if s == nil || !s.ready {
		return Header{}
	}
	return s.header
}

func (s *Stream) SampleRate() int {
	return int(s.Header().SampleRate)
}

func (s *Stream) TotalSamples() uint32 {
	return s.Header().DeltaCount
}

// Position is the index of the next delta to be decoded.
func (s *Stream) Position() uint32 {
	if s == nil || !s.ready {
		return 0
	}
	return s.position
}

// Running is the current (last produced) 8-bit sample.
func (s *Stream) Running() int8 {
	if s == nil {
		return 0
	}
	return s.running
}

func (s *Stream) Scaling() Scaling {
	if s == nil {
		return ScaleWide
	}
	return s.scaling
}

// IsEndOfStream reports whether every delta has been consumed. An
// uninitialized stream is always at end of stream.
func (s *Stream) IsEndOfStream() bool {
	if s == nil || !s.ready {
		return true
	}
	return s.position >= s.header.DeltaCount
}

func clamp8(v int16) int16 {
	if v > 127 {
		return 127
	}
	if v < -128 {
		return -128
	}
	return v
}
