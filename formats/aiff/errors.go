// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrInvalidSampleRate is returned for sources reporting a rate <= 0.
	ErrInvalidSampleRate = errors.New("AIFF sample rate must be positive")

	// ErrNoSamples is returned when the source produced nothing.
	ErrNoSamples = errors.New("no samples to write")
)
