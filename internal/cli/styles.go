// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	AppName    = "retropbx"
	AppTagline = "Play and export PGDA and 8AD handheld audio tracks."
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ShadeGlow).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ShadeLight).
			MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ShadeLight)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Magenta)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ShadeGlow)

	BarStyle = lipgloss.NewStyle().
			Foreground(ShadeLight)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ShadeMid).
			Padding(0, 2).
			MarginTop(1)
)

// PrintBanner prints the application banner
func PrintBanner() {
	fmt.Println(TitleStyle.Render(AppName))
	fmt.Println(SubtitleStyle.Render(AppTagline))
	fmt.Println()
}

// PrintError prints an error message to stderr
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", SuccessStyle.Render("✓"), message)
}

// PrintInfo prints a key value line
func PrintInfo(key, value string) {
	fmt.Println(InfoLine(key, value))
}

func InfoLine(key, value string) string {
	return KeyStyle.Render(key+":") + " " + ValueStyle.Render(value)
}

// PrintSection prints a section header
func PrintSection(title string) {
	fmt.Println(HeaderStyle.Render(title))
}

// PrintBox prints lines in a rounded box
func PrintBox(lines ...string) {
	fmt.Println(BoxStyle.Render(strings.Join(lines, "\n")))
}

// FormatDuration formats a duration nicely
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", d.Seconds()*1000)
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// FormatBytes formats bytes into human-readable format
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// bar glyphs from empty to full
var barGlyphs = []rune(" ▁▂▃▄▅▆▇█")

// SpectrumBars draws one glyph per band. Each band total is divided by the
// sample count and scaled against full, the per-sample value that fills a
// bar. A zero count draws empty bars.
func SpectrumBars(bands []int64, count uint32, full int64) string {
	var sb strings.Builder
	top := len(barGlyphs) - 1

	for _, b := range bands {
		level := 0
		if count > 0 && full > 0 {
			level = int(b / int64(count) * int64(top) / full)
		}
		level = max(0, min(level, top))
		sb.WriteRune(barGlyphs[level])
	}

	return BarStyle.Render(sb.String())
}

// StatusLine writes a single, carriage-return terminated playback line.
func StatusLine(w io.Writer, track, tracks int, name string, progress float64, bars string) {
	fmt.Fprintf(w, "\r%s %s %s %s ",
		KeyStyle.Render(fmt.Sprintf("[%d/%d]", track, tracks)),
		ValueStyle.Render(name),
		KeyStyle.Render(fmt.Sprintf("%3.0f%%", progress*100)),
		bars,
	)
}
