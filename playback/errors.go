// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown track format")
	ErrFrameTooLarge = errors.New("frame size out of range for format")
	ErrInvalidConfig = errors.New("invalid playback configuration")
)
