// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/decred/slog"

	"github.com/ik5/retropbx/internal/cli"
)

// version is set via ldflags at build time
var version = "dev"

// Globals are bound into every command's Run method.
type Globals struct {
	Backend *slog.Backend
	Level   slog.Level
}

// Logger returns a subsystem logger at the configured level.
func (g *Globals) Logger(tag string) slog.Logger {
	log := g.Backend.Logger(tag)
	log.SetLevel(g.Level)
	return log
}

var CLI struct {
	LogLevel string           `help:"Log level: trace, debug, info, warn, error, critical or off." default:"info" env:"RETROPBX_LOG_LEVEL"`
	Version  kong.VersionFlag `help:"Show version information."`

	Info   InfoCmd   `cmd:"" help:"Print the header details of track files."`
	Render RenderCmd `cmd:"" help:"Decode a track and export it as WAV or AIFF."`
	Play   PlayCmd   `cmd:"" help:"Play a directory of tracks through the real-time engine."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(cli.AppName),
		kong.Description(cli.AppTagline),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	level, ok := slog.LevelFromString(strings.ToLower(CLI.LogLevel))
	if !ok {
		cli.PrintError(fmt.Sprintf("invalid log level: %q", CLI.LogLevel))
		os.Exit(1)
	}

	globals := &Globals{
		Backend: slog.NewBackend(os.Stderr),
		Level:   level,
	}

	if err := ctx.Run(globals); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
