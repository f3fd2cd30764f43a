// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrInvalidSampleRate = errors.New("WAV sample rate must be positive")
	ErrNoSamples         = errors.New("no samples to write")
)
