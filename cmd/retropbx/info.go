// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/retropbx/formats/eightad"
	"github.com/ik5/retropbx/formats/pgda"
	"github.com/ik5/retropbx/internal/cli"
	"github.com/ik5/retropbx/playback"
)

type InfoCmd struct {
	Paths []string `arg:"" help:"Track files (.pgda or .8ad)." type:"existingfile"`
}

// trackInfo is what info prints for one file.
type trackInfo struct {
	Format      playback.Format
	SampleRate  int
	Samples     int
	Bytes       int
	FirstSample int8
}

func (t trackInfo) Duration() time.Duration {
	if t.SampleRate <= 0 {
		return 0
	}
	return time.Duration(t.Samples) * time.Second / time.Duration(t.SampleRate)
}

func inspect(path string, data []byte) (trackInfo, error) {
	f, err := playback.ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return trackInfo{}, err
	}

	info := trackInfo{Format: f, Bytes: len(data)}
	switch f {
	case playback.FormatPGDA:
		h, err := pgda.ParseHeader(data)
		if err != nil {
			return trackInfo{}, fmt.Errorf("%w", err)
		}
		info.SampleRate = int(h.SampleRate)
		info.Samples = int(h.DeltaCount)
		info.FirstSample = h.FirstSample
	case playback.FormatADPCM8:
		info.SampleRate = eightad.DefaultSampleRate
		info.Samples = eightad.SamplesForBytes(len(data))
	}

	return info, nil
}

func (c *InfoCmd) Run(g *Globals) error {
	log := g.Logger("INFO")

	failed := 0
	for _, path := range c.Paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		info, err := inspect(path, data)
		if err != nil {
			failed++
			log.Warnf("%s: %v", path, err)
			cli.PrintError(fmt.Sprintf("%s: %v", path, err))
			continue
		}

		cli.PrintSection(filepath.Base(path))
		cli.PrintInfo("Format", info.Format.String())
		cli.PrintInfo("Sample rate", fmt.Sprintf("%d Hz", info.SampleRate))
		cli.PrintInfo("Samples", fmt.Sprintf("%d", info.Samples))
		cli.PrintInfo("Duration", cli.FormatDuration(info.Duration()))
		cli.PrintInfo("Size", cli.FormatBytes(int64(info.Bytes)))
		if info.Format == playback.FormatPGDA {
			cli.PrintInfo("First sample", fmt.Sprintf("%d", info.FirstSample))
		} else {
			frames := info.Bytes / (playback.ADPCM8FrameSamples / 2)
			cli.PrintInfo("Frames", fmt.Sprintf("%d of %d samples", frames, playback.ADPCM8FrameSamples))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(c.Paths))
	}
	return nil
}
