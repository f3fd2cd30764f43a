// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/decred/slog"
	goaudiowav "github.com/go-audio/wav"

	"github.com/ik5/retropbx/formats/eightad"
	"github.com/ik5/retropbx/formats/pgda"
	"github.com/ik5/retropbx/internal/audiotest"
	"github.com/ik5/retropbx/playback"
)

func quietGlobals() *Globals {
	return &Globals{Backend: slog.NewBackend(io.Discard), Level: slog.LevelOff}
}

func TestInspect(t *testing.T) {
	t.Parallel()

	pgdaData := audiotest.BuildPGDA(8000, 5, make([]int8, 16000))
	adData := audiotest.Pattern(152 * 4)

	tests := []struct {
		name     string
		path     string
		data     []byte
		format   playback.Format
		rate     int
		samples  int
		duration time.Duration
		wantErr  error
	}{
		{"pgda", "a/intro.pgda", pgdaData, playback.FormatPGDA, 8000, 16000, 2 * time.Second, nil},
		{"8ad", "loop.8AD", adData, playback.FormatADPCM8, eightad.DefaultSampleRate, 304 * 4, 66 * time.Millisecond, nil},
		{"unknown extension", "song.mp3", adData, 0, 0, 0, 0, playback.ErrUnknownFormat},
		{"bad header", "x.pgda", []byte("nope"), 0, 0, 0, 0, pgda.ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info, err := inspect(tt.path, tt.data)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("inspect() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("inspect() error = %v", err)
			}
			if info.Format != tt.format || info.SampleRate != tt.rate || info.Samples != tt.samples {
				t.Errorf("inspect() = %+v", info)
			}
			if got := info.Duration().Truncate(time.Millisecond); got != tt.duration {
				t.Errorf("Duration() = %v, want %v", got, tt.duration)
			}
		})
	}
}

func TestRenderContainer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		container, output, want string
	}{
		{"auto", "out.wav", "wav"},
		{"auto", "out.AIFF", "aiff"},
		{"auto", "out.aif", "aiff"},
		{"auto", "out.raw", "wav"},
		{"wav", "out.aiff", "wav"},
		{"aiff", "out.wav", "aiff"},
	}

	for _, tt := range tests {
		c := &RenderCmd{Container: tt.container, Output: tt.output}
		if got := c.container(); got != tt.want {
			t.Errorf("container(%q, %q) = %q, want %q", tt.container, tt.output, got, tt.want)
		}
	}
}

func TestRenderRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "tone.8ad")
	if err := os.WriteFile(in, audiotest.EncodeADPCM8(audiotest.SineInt16(608, 32, 8000)), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "tone.wav")
	c := &RenderCmd{Input: in, Output: out, Container: "auto", AdpcmRate: eightad.DefaultSampleRate}
	if err := c.Run(quietGlobals()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	samples, rate := readWAV(t, out)
	if rate != eightad.DefaultSampleRate {
		t.Errorf("rate = %d, want %d", rate, eightad.DefaultSampleRate)
	}
	if samples != 608 {
		t.Errorf("samples = %d, want 608", samples)
	}
}

func TestPlayConfig(t *testing.T) {
	t.Parallel()

	cfg, err := (&PlayCmd{Format: "pgda", Bands: 8, Narrow: true}).config()
	if err != nil {
		t.Fatalf("config() error = %v", err)
	}
	if cfg.Format != playback.FormatPGDA || cfg.Bands != 8 || cfg.Scaling != pgda.ScaleNone {
		t.Errorf("config() = %+v", cfg)
	}

	if _, err := (&PlayCmd{Format: "8ad", Bands: 5}).config(); !errors.Is(err, playback.ErrInvalidConfig) {
		t.Errorf("config() with 5 bands error = %v, want ErrInvalidConfig", err)
	}
}

func TestPlayRun_Record(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"a.8ad", "b.8ad", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), audiotest.Pattern(152*3), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	rec := filepath.Join(t.TempDir(), "session.wav")
	c := &PlayCmd{Dir: dir, Format: "8ad", Bands: 7, Frames: 10, Fast: true, Quiet: true, Record: rec}
	if err := c.Run(quietGlobals()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	samples, rate := readWAV(t, rec)
	if rate != eightad.DefaultSampleRate {
		t.Errorf("rate = %d, want %d", rate, eightad.DefaultSampleRate)
	}
	if want := 10 * playback.ADPCM8FrameSamples; samples != want {
		t.Errorf("recorded %d samples, want %d", samples, want)
	}
}

func TestPlayRun_RecordSkipsBadFirstTrack(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string][]byte{
		"a.pgda": []byte("garbage"),
		"b.pgda": audiotest.BuildPGDA(8000, 0, make([]int8, 4*pgda.BufferSize)),
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	rec := filepath.Join(t.TempDir(), "s.wav")
	c := &PlayCmd{Dir: dir, Format: "pgda", Bands: 7, Frames: 4, Fast: true, Quiet: true, Record: rec}
	if err := c.Run(quietGlobals()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	samples, rate := readWAV(t, rec)
	if rate != 8000 {
		t.Errorf("rate = %d, want 8000", rate)
	}
	if want := 4 * pgda.BufferSize; samples != want {
		t.Errorf("recorded %d samples, want %d", samples, want)
	}
}

func TestPlayRun_RecordMixedRates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string][]byte{
		"a.pgda": audiotest.BuildPGDA(4000, 0, make([]int8, pgda.BufferSize)),
		"b.pgda": audiotest.BuildPGDA(8000, 0, make([]int8, 4*pgda.BufferSize)),
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	rec := filepath.Join(t.TempDir(), "s.wav")
	c := &PlayCmd{Dir: dir, Format: "pgda", Bands: 7, Frames: 6, Fast: true, Quiet: true, Record: rec}
	if err := c.Run(quietGlobals()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Two frames at 4000 Hz, then four frames at 8000 Hz that halve.
	samples, rate := readWAV(t, rec)
	if rate != 4000 {
		t.Errorf("rate = %d, want 4000", rate)
	}
	if want := 4 * pgda.BufferSize; samples < want-32 || samples > want+32 {
		t.Errorf("recorded %d samples, want about %d", samples, want)
	}
}

func TestPlayRun_EmptyDir(t *testing.T) {
	t.Parallel()

	c := &PlayCmd{Dir: t.TempDir(), Format: "pgda", Bands: 7, Frames: 1, Fast: true, Quiet: true}
	if err := c.Run(quietGlobals()); err == nil {
		t.Fatal("Run() on an empty directory succeeded")
	}
}

func readWAV(t *testing.T, path string) (samples, rate int) {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dec := goaudiowav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}
	return len(buf.Data), int(dec.SampleRate)
}
