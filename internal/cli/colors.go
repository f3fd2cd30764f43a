// SPDX-License-Identifier: EPL-2.0

package cli

import "github.com/charmbracelet/lipgloss"

// Handheld LCD palette, darkest to lightest.
var (
	ShadeDark  = lipgloss.Color("#0F380F")
	ShadeMid   = lipgloss.Color("#306230")
	ShadeLight = lipgloss.Color("#8BAC0F")
	ShadeGlow  = lipgloss.Color("#9BBC0F")

	// Accent for errors and warnings
	Magenta = lipgloss.Color("#C0287F")
	Muted   = lipgloss.Color("#888888")
)
