// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

// Help styles
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ShadeGlow).
			MarginBottom(1)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(ShadeLight).
			Italic(true).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ShadeLight).
				MarginTop(1)

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(ShadeGlow).
			Bold(true)

	helpArgStyle = lipgloss.NewStyle().
			Foreground(Magenta).
			Bold(true)

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Italic(true)
)

// StyledHelpPrinter creates a help printer with Lipgloss styling. It shows
// the commands of the root node, or the arguments and flags of the selected
// command.
func StyledHelpPrinter(options kong.HelpOptions) kong.HelpPrinter {
	return kong.HelpPrinter(func(options kong.HelpOptions, ctx *kong.Context) error {
		var sb strings.Builder

		node := ctx.Selected()
		if node == nil {
			node = ctx.Model.Node
		}

		sb.WriteString(helpTitleStyle.Render(AppName))
		sb.WriteString("\n")
		desc := AppTagline
		if node != ctx.Model.Node && node.Help != "" {
			desc = node.Help
		}
		sb.WriteString(helpDescStyle.Render(desc))
		sb.WriteString("\n")

		sb.WriteString(helpSectionStyle.Render("Usage:"))
		sb.WriteString("\n  ")
		sb.WriteString(usage(ctx.Model.Name, node, ctx.Model.Node))
		sb.WriteString("\n")

		if cmds := getCommands(node); len(cmds) > 0 {
			sb.WriteString("\n")
			sb.WriteString(helpSectionStyle.Render("Commands:"))
			sb.WriteString("\n")
			writeRows(&sb, cmds, helpArgStyle)
		}

		if args := getArguments(node); len(args) > 0 {
			sb.WriteString("\n")
			sb.WriteString(helpSectionStyle.Render("Arguments:"))
			sb.WriteString("\n")
			writeRows(&sb, args, helpArgStyle)
		}

		if flags := getFlags(node, node == ctx.Model.Node); len(flags) > 0 {
			sb.WriteString("\n")
			sb.WriteString(helpSectionStyle.Render("Flags:"))
			sb.WriteString("\n")
			writeRows(&sb, flags, helpFlagStyle)
		}

		if node != ctx.Model.Node {
			if flags := getFlags(ctx.Model.Node, true); len(flags) > 0 {
				sb.WriteString("\n")
				sb.WriteString(helpSectionStyle.Render("Global Flags:"))
				sb.WriteString("\n")
				writeRows(&sb, flags, helpFlagStyle)
			}
		}

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	})
}

type row struct {
	name       string
	help       string
	defaultVal string
}

func writeRows(sb *strings.Builder, rows []row, style lipgloss.Style) {
	width := 0
	for _, r := range rows {
		width = max(width, len(r.name))
	}

	for _, r := range rows {
		sb.WriteString("  ")
		sb.WriteString(style.Render(r.name))
		if r.help != "" {
			sb.WriteString(strings.Repeat(" ", width-len(r.name)+2))
			sb.WriteString(r.help)
		}
		if r.defaultVal != "" {
			sb.WriteString(" ")
			sb.WriteString(helpDefaultStyle.Render("(default: " + r.defaultVal + ")"))
		}
		sb.WriteString("\n")
	}
}

func usage(app string, node, root *kong.Node) string {
	if node == root {
		return app + " <command> [flags]"
	}

	parts := []string{app, node.Name}
	for _, arg := range node.Positional {
		parts = append(parts, arg.Summary())
	}
	parts = append(parts, "[flags]")
	return strings.Join(parts, " ")
}

func getCommands(node *kong.Node) []row {
	var rows []row
	for _, child := range node.Children {
		if child.Hidden {
			continue
		}
		rows = append(rows, row{name: child.Name, help: child.Help})
	}
	return rows
}

func getArguments(node *kong.Node) []row {
	var rows []row
	for _, arg := range node.Positional {
		rows = append(rows, row{name: arg.Summary(), help: arg.Help})
	}
	return rows
}

func getFlags(node *kong.Node, withHelp bool) []row {
	var rows []row

	if withHelp {
		rows = append(rows, row{
			name: "-h, --help",
			help: "Show context-sensitive help.",
		})
	}

	for _, f := range node.Flags {
		if f.Name == "help" || f.Hidden {
			continue
		}

		name := ""
		if f.Short != 0 {
			name = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
		} else {
			name = fmt.Sprintf("--%s", f.Name)
		}

		if !f.IsBool() && f.PlaceHolder != "" {
			name += "=" + strings.ToUpper(f.PlaceHolder)
		}

		// Only show meaningful defaults
		defaultVal := ""
		if f.HasDefault && !f.IsBool() && f.Default != "" {
			defaultVal = f.Default
		}

		rows = append(rows, row{
			name:       name,
			help:       f.Help,
			defaultVal: defaultVal,
		})
	}

	return rows
}
