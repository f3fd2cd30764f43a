// SPDX-License-Identifier: EPL-2.0

package pgda

import (
	"bytes"
	"encoding/binary"
)

const (
	// HeaderSize is magic(4) + sample rate(4) + delta count(4) + first sample(1).
	HeaderSize = 13

	MinSampleRate = 4000
	MaxSampleRate = 8000

	// MaxDeltas is the payload ceiling accepted by Validate.
	MaxDeltas = 5_000_000

	// BufferSize is the most samples a single Decode call will produce.
	BufferSize = 1024
)

// Magic is the four byte tag every PGDA file starts with.
var Magic = [4]byte{'F', 'Q', 'W', 'T'}

// Header is the parsed fixed-size PGDA header.
type Header struct {
	Magic       [4]byte
	SampleRate  uint32
	DeltaCount  uint32
	FirstSample int8
}

// Validate checks data for a well formed PGDA header whose declared payload
// fits inside data. It does not allocate or retain data.
func Validate(data []byte) error {
	if len(data) < HeaderSize {
		return ErrTooLarge
	}

	if !bytes.Equal(data[:4], Magic[:]) {
		return ErrInvalidMagic
	}

	rate := binary.LittleEndian.Uint32(data[4:8])
	if rate < MinSampleRate || rate > MaxSampleRate {
		return ErrInvalidSampleRate
	}

	count := binary.LittleEndian.Uint32(data[8:12])
	if count > MaxDeltas || uint64(HeaderSize)+uint64(count) > uint64(len(data)) {
		return ErrTooLarge
	}

	return nil
}

// ParseHeader validates data and returns its header.
func ParseHeader(data []byte) (Header, error) {
	if err := Validate(data); err != nil {
		return Header{}, err
	}

	return parseHeader(data), nil
}

func parseHeader(data []byte) Header {
	var h Header
	copy(h.Magic[:], data[:4])
	h.SampleRate = binary.LittleEndian.Uint32(data[4:8])
	h.DeltaCount = binary.LittleEndian.Uint32(data[8:12])
	h.FirstSample = int8(data[12])
	return h
}

// Duration in seconds of the stream described by h.
func (h Header) Duration() float64 {
	if h.SampleRate == 0 {
		return 0
	}
	return float64(h.DeltaCount) / float64(h.SampleRate)
}

// AppendHeader appends the 13 byte encoding of h to dst.
func AppendHeader(dst []byte, h Header) []byte {
	dst = append(dst, h.Magic[:]...)
	dst = binary.LittleEndian.AppendUint32(dst, h.SampleRate)
	dst = binary.LittleEndian.AppendUint32(dst, h.DeltaCount)
	return append(dst, byte(h.FirstSample))
}
