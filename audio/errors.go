// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNotMono       = errors.New("resampler accepts mono sources only")
	ErrInvalidRate   = errors.New("sample rate must be positive")
	ErrUnknownFormat = errors.New("no decoder registered for format")
)
