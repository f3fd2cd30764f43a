// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"github.com/ik5/retropbx/catalog"
	"github.com/ik5/retropbx/formats/eightad"
	"github.com/ik5/retropbx/formats/pgda"
)

// FrameCodec is the per-format decode cursor behind an Engine. Positions and
// lengths are in source bytes.
type FrameCodec interface {
	// Load binds the codec to a track and rewinds it. On error the cursor is
	// left empty so Remaining reports 0.
	Load(track catalog.View) error
	Remaining() int
	// FrameBytes is the source bytes a frame of frameSamples consumes.
	FrameBytes(frameSamples int) int
	// DecodeFrame fills dst with int16 output and scratch with the same
	// samples in 8-bit range. It returns samples written and bytes consumed.
	DecodeFrame(dst []int16, scratch []int8) (samples, consumed int)
	// Seek moves the cursor by delta bytes, clamped to the track, and returns
	// the new position.
	Seek(delta int) int
	Position() int
	Length() int
	SampleRate() int
}

func newCodec(cfg Config) (FrameCodec, error) {
	switch cfg.Format {
	case FormatPGDA:
		return &pgdaCodec{scaling: cfg.Scaling}, nil
	case FormatADPCM8:
		return &adpcm8Codec{}, nil
	default:
		return nil, ErrUnknownFormat
	}
}

type pgdaCodec struct {
	stream  *pgda.Stream
	scaling pgda.Scaling
}

func (c *pgdaCodec) Load(track catalog.View) error {
	s, err := pgda.NewStream(track.Bytes(), pgda.WithScaling(c.scaling))
	if err != nil {
		c.stream = nil
		return err
	}
	c.stream = s
	return nil
}

func (c *pgdaCodec) Remaining() int {
	return c.Length() - c.Position()
}

// FrameBytes is one delta byte per sample.
func (c *pgdaCodec) FrameBytes(frameSamples int) int { return frameSamples }

func (c *pgdaCodec) DecodeFrame(dst []int16, scratch []int8) (int, int) {
	n := c.stream.Decode(dst, len(dst))
	for i := range min(n, len(scratch)) {
		if c.scaling == pgda.ScaleNone {
			scratch[i] = int8(dst[i])
		} else {
			scratch[i] = int8(dst[i] >> 8)
		}
	}
	return n, n
}

func (c *pgdaCodec) Seek(delta int) int {
	pos := max(0, min(c.Position()+delta, c.Length()))
	c.stream.SeekTo(uint32(pos))
	return c.Position()
}

func (c *pgdaCodec) Position() int   { return int(c.stream.Position()) }
func (c *pgdaCodec) Length() int     { return int(c.stream.TotalSamples()) }
func (c *pgdaCodec) SampleRate() int { return c.stream.SampleRate() }

type adpcm8Codec struct {
	track  catalog.View
	state  eightad.State
	cursor int
}

// Load never fails: an 8AD track has no header and any byte string decodes.
func (c *adpcm8Codec) Load(track catalog.View) error {
	c.track = track
	c.cursor = 0
	c.state.Reset()
	return nil
}

func (c *adpcm8Codec) Remaining() int { return c.track.Len() - c.cursor }

func (c *adpcm8Codec) FrameBytes(frameSamples int) int {
	return eightad.BytesForSamples(frameSamples)
}

func (c *adpcm8Codec) DecodeFrame(dst []int16, scratch []int8) (int, int) {
	n := min(len(dst), len(scratch))
	src := c.track.Slice(c.cursor, eightad.BytesForSamples(n))

	consumed := c.state.Decode(scratch[:n], src, n)
	for i, s := range scratch[:n] {
		dst[i] = int16(s) << 8
	}
	c.cursor += consumed

	return n, consumed
}

// Seek keeps the adaptive state; the predictor settles within a few samples.
func (c *adpcm8Codec) Seek(delta int) int {
	c.cursor = max(0, min(c.cursor+delta, c.track.Len()))
	return c.cursor
}

func (c *adpcm8Codec) Position() int   { return c.cursor }
func (c *adpcm8Codec) Length() int     { return c.track.Len() }
func (c *adpcm8Codec) SampleRate() int { return eightad.DefaultSampleRate }
