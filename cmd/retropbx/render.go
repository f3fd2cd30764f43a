// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/retropbx"
	"github.com/ik5/retropbx/audio"
	"github.com/ik5/retropbx/formats/aiff"
	"github.com/ik5/retropbx/formats/eightad"
	"github.com/ik5/retropbx/formats/wav"
	"github.com/ik5/retropbx/internal/cli"
)

type RenderCmd struct {
	Input     string `arg:"" help:"Track file (.pgda or .8ad)." type:"existingfile"`
	Output    string `arg:"" help:"Output file. A .aif or .aiff extension selects AIFF." type:"path"`
	Rate      int    `help:"Output sample rate in Hz, 0 keeps the track rate." default:"0" env:"RETROPBX_RATE"`
	Container string `help:"Output container." enum:"auto,wav,aiff" default:"auto"`
	AdpcmRate int    `help:"Sample rate assumed for 8AD tracks." default:"18157" env:"RETROPBX_ADPCM_RATE"`
}

func (c *RenderCmd) container() string {
	if c.Container != "auto" {
		return c.Container
	}
	switch strings.ToLower(filepath.Ext(c.Output)) {
	case ".aif", ".aiff":
		return "aiff"
	default:
		return "wav"
	}
}

func (c *RenderCmd) Run(g *Globals) error {
	log := g.Logger("RNDR")
	start := time.Now()

	reg := retropbx.NewRegistry()
	reg.Register("8ad", eightad.Decoder{SampleRate: c.AdpcmRate}, "adpcm8")

	src, err := retropbx.Open(reg, c.Input)
	if err != nil {
		return err
	}
	defer src.Close()

	trackRate := src.SampleRate()
	if c.Rate > 0 && c.Rate != trackRate {
		r, err := audio.NewResampler(src, c.Rate)
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		src = r
		log.Debugf("Resampling %d Hz to %d Hz", trackRate, c.Rate)
	}

	out, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer out.Close()

	var n int
	switch c.container() {
	case "aiff":
		n, err = aiff.Write(out, src)
	default:
		n, err = wav.Write(out, src)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", c.Output, err)
	}

	var size int64
	if st, err := out.Stat(); err == nil {
		size = st.Size()
	}

	elapsed := time.Since(start)
	played := time.Duration(n) * time.Second / time.Duration(src.SampleRate())
	log.Infof("Rendered %s to %s in %v", c.Input, c.Output, elapsed)

	speed := "n/a"
	if elapsed > 0 {
		speed = fmt.Sprintf("%.0fx realtime", played.Seconds()/elapsed.Seconds())
	}

	cli.PrintBox(
		cli.SuccessStyle.Render("✓ "+filepath.Base(c.Output)),
		"",
		cli.InfoLine("Samples", fmt.Sprintf("%d @ %d Hz", n, src.SampleRate())),
		cli.InfoLine("Duration", cli.FormatDuration(played)),
		cli.InfoLine("Size", cli.FormatBytes(size)),
		cli.InfoLine("Speed", speed),
	)
	return nil
}
