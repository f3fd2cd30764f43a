// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"

	"github.com/ik5/retropbx/formats/pgda"
	"github.com/ik5/retropbx/spectrum"
)

const (
	// ADPCM8FrameSamples is one frame of 8AD audio, decoded from 152 bytes.
	ADPCM8FrameSamples = 304
	// PGDAFrameSamples is the largest frame a PGDA stream decodes at once.
	PGDAFrameSamples = pgda.BufferSize
)

type Config struct {
	Format Format

	// FrameSamples is the size of each output buffer.
	FrameSamples int

	// Scaling applies to PGDA output only.
	Scaling pgda.Scaling

	// Bands is 7 or 8.
	Bands int
	// FilterShift is the spectrum low-pass shift.
	FilterShift uint
}

// DefaultConfig returns the frame size and spectrum settings used for f.
func DefaultConfig(f Format) Config {
	cfg := Config{
		Format:      f,
		Scaling:     pgda.ScaleWide,
		Bands:       spectrum.DefaultBands,
		FilterShift: spectrum.DefaultFilterShift,
	}

	switch f {
	case FormatPGDA:
		cfg.FrameSamples = PGDAFrameSamples
	case FormatADPCM8:
		cfg.FrameSamples = ADPCM8FrameSamples
	}

	return cfg
}

func (c Config) Validate() error {
	switch c.Format {
	case FormatPGDA:
		if c.FrameSamples <= 0 || c.FrameSamples > pgda.BufferSize {
			return fmt.Errorf("pgda frame of %d samples (max %d): %w", c.FrameSamples, pgda.BufferSize, ErrFrameTooLarge)
		}
	case FormatADPCM8:
		// An odd frame would split a byte between two frames.
		if c.FrameSamples <= 0 || c.FrameSamples%2 != 0 {
			return fmt.Errorf("8ad frame of %d samples must be positive and even: %w", c.FrameSamples, ErrFrameTooLarge)
		}
	default:
		return fmt.Errorf("%v: %w", c.Format, ErrUnknownFormat)
	}

	if c.Bands != 7 && c.Bands != spectrum.MaxBands {
		return fmt.Errorf("%d bands: %w", c.Bands, ErrInvalidConfig)
	}
	if c.FilterShift < 1 || c.FilterShift > 7 {
		return fmt.Errorf("filter shift %d: %w", c.FilterShift, ErrInvalidConfig)
	}
	if c.Scaling != pgda.ScaleWide && c.Scaling != pgda.ScaleNone {
		return fmt.Errorf("scaling %v: %w", c.Scaling, ErrInvalidConfig)
	}

	return nil
}

