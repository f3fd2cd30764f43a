// SPDX-License-Identifier: EPL-2.0

package catalog

import "errors"

var (
	ErrTrackOutOfRange = errors.New("track index out of range")
	ErrEmptyArchive    = errors.New("archive has no tracks")
)
