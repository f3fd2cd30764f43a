// SPDX-License-Identifier: EPL-2.0

package pgda

import "errors"

var (
	ErrInvalidMagic      = errors.New("pgda: invalid magic")
	ErrInvalidSampleRate = errors.New("pgda: sample rate out of range")
	ErrTooLarge          = errors.New("pgda: payload does not fit buffer or exceeds format ceiling")
	ErrNullInput         = errors.New("pgda: missing stream or data")
)
