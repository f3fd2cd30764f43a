// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Duration
		want string
	}{
		{16 * time.Millisecond, "16ms"},
		{1500 * time.Millisecond, "1.5s"},
		{125 * time.Second, "2:05"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int64
		want string
	}{
		{152, "152 B"},
		{2048, "2.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}

	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSpectrumBars(t *testing.T) {
	t.Parallel()

	bands := []int64{0, 100, 200, 400, 9999}
	bars := SpectrumBars(bands, 1, 200)

	if w := lipgloss.Width(bars); w != len(bands) {
		t.Errorf("width = %d, want %d", w, len(bands))
	}
	if !strings.Contains(bars, "▄") || !strings.Contains(bars, "█") {
		t.Errorf("bars = %q, want half and full glyphs", bars)
	}

	if empty := SpectrumBars(bands, 0, 200); strings.ContainsAny(empty, "▁▂▃▄▅▆▇█") {
		t.Errorf("zero count drew %q", empty)
	}
}

func TestStatusLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	StatusLine(&buf, 2, 5, "title", 0.5, "▁▂")

	got := buf.String()
	for _, part := range []string{"\r", "[2/5]", "title", "50%", "▁▂"} {
		if !strings.Contains(got, part) {
			t.Errorf("StatusLine() = %q, missing %q", got, part)
		}
	}
}

type helpCLI struct {
	LogLevel string `help:"Log level." default:"info"`

	Info struct {
		Paths []string `arg:"" help:"Track files."`
	} `cmd:"" help:"Print track details."`
}

func TestStyledHelpPrinter(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	var c helpCLI
	parser, err := kong.New(&c,
		kong.Name(AppName),
		kong.Writers(&out, &out),
		kong.Exit(func(int) {}),
		kong.Help(StyledHelpPrinter(kong.HelpOptions{})),
	)
	if err != nil {
		t.Fatal(err)
	}

	_, _ = parser.Parse([]string{"--help"})
	root := out.String()
	for _, want := range []string{"Commands:", "info", "--log-level", "(default: info)"} {
		if !strings.Contains(root, want) {
			t.Errorf("root help missing %q:\n%s", want, root)
		}
	}

	out.Reset()
	_, _ = parser.Parse([]string{"info", "--help"})
	sub := out.String()
	for _, want := range []string{"Print track details.", "Arguments:", "Global Flags:"} {
		if !strings.Contains(sub, want) {
			t.Errorf("info help missing %q:\n%s", want, sub)
		}
	}
}
