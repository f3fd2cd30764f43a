// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"strings"
)

// Format selects the frame codec an Engine is built with.
type Format uint8

const (
	FormatPGDA Format = iota + 1
	FormatADPCM8
)

func (f Format) String() string {
	switch f {
	case FormatPGDA:
		return "pgda"
	case FormatADPCM8:
		return "8ad"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Extension is the file extension tracks of f carry, without the dot.
func (f Format) Extension() string {
	return f.String()
}

// ParseFormat accepts "pgda", "8ad" and "adpcm8", case insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pgda":
		return FormatPGDA, nil
	case "8ad", "adpcm8":
		return FormatADPCM8, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}
