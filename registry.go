// SPDX-License-Identifier: EPL-2.0

package retropbx

import (
	"fmt"
	"os"

	"github.com/ik5/retropbx/audio"
	"github.com/ik5/retropbx/formats/eightad"
	"github.com/ik5/retropbx/formats/pgda"
)

// NewRegistry returns a registry with both track formats: "pgda" and "8ad"
// (alias "adpcm8"). PGDA decodes with wide scaling.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("pgda", pgda.Decoder{})
	reg.Register("8ad", eightad.Decoder{}, "adpcm8")
	return reg
}

// Open decodes the track at path, picking the decoder from its extension.
func Open(reg *audio.Registry, path string) (audio.Source, error) {
	dec, ok := reg.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, audio.ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}
