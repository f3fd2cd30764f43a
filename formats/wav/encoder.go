// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/retropbx/audio"
)

const (
	bitDepth  = 16
	formatPCM = 1
)

// Write encodes src as a mono 16-bit PCM WAV at the source rate and returns
// the number of samples written. The encoder patches the RIFF sizes when it
// is closed, so w must be seekable.
func Write(w io.WriteSeeker, src audio.Source) (int, error) {
	if src.Channels() != 1 {
		return 0, audio.ErrNotMono
	}
	if src.SampleRate() <= 0 {
		return 0, ErrInvalidSampleRate
	}

	enc := wav.NewEncoder(w, src.SampleRate(), bitDepth, 1, formatPCM)
	n, err := audio.CopyPCM(enc, src, 0)
	if err != nil {
		return n, fmt.Errorf("encoding wav: %w", err)
	}
	if n == 0 {
		return 0, ErrNoSamples
	}

	if err := enc.Close(); err != nil {
		return n, fmt.Errorf("closing wav: %w", err)
	}
	return n, nil
}

// WriteInt16 writes samples already in 16-bit form, such as frames recorded
// from the playback engine.
func WriteInt16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if len(samples) == 0 {
		return ErrNoSamples
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav: %w", err)
	}
	return nil
}
