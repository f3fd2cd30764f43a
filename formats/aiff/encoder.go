// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/retropbx/audio"
)

const bitDepth = 16

// Write encodes src as a mono 16-bit AIFF and returns the samples written.
// w must be seekable; go-audio rewrites the COMM and SSND sizes on close.
func Write(w io.WriteSeeker, src audio.Source) (int, error) {
	if src.Channels() != 1 {
		return 0, audio.ErrNotMono
	}
	if src.SampleRate() <= 0 {
		return 0, ErrInvalidSampleRate
	}

	enc := aiff.NewEncoder(w, src.SampleRate(), bitDepth, 1)
	n, err := audio.CopyPCM(enc, src, 0)
	if err != nil {
		return n, fmt.Errorf("encoding aiff: %w", err)
	}
	if n == 0 {
		return 0, ErrNoSamples
	}

	if err := enc.Close(); err != nil {
		return n, fmt.Errorf("closing aiff: %w", err)
	}
	return n, nil
}
