// Package cli assembles calc: its top-level usage text, its route table and
// its entry point.
package cli

import (
	"fmt"
	"os"

	"github.com/footprint-tools/climux/internal/actions"
	"github.com/footprint-tools/climux/internal/app"
	"github.com/footprint-tools/climux/internal/decoder"
	"github.com/footprint-tools/climux/internal/dispatchers"
	"github.com/footprint-tools/climux/internal/domain"
)

// Name is the tool name. It also picks ~/.calcrc and CALC_* variables.
const Name = "calc"

// Usage is the top-level usage text.
const Usage = `Calc does integer arithmetic from the command line.

Usage:
  calc [options] help [<command>] [<args>...]
  calc [options] <command> [<args>...]
  calc [options]

Options:
  -h, --help     Show this screen
  -l, --list     List installed commands
  -v, --verbose  Use verbose output
  -V, --version  Print version info and exit
`

// BuildTable registers calc's commands in listing order.
func BuildTable(deps actions.Deps) *dispatchers.Table {
	var table *dispatchers.Table
	deps.Table = func() *dispatchers.Table { return table }

	table = dispatchers.MustTable(
		dispatchers.Route("sum", actions.NewSum),
		dispatchers.Route("product", actions.NewProduct),
		dispatchers.Route("echo", actions.NewEcho),
		dispatchers.Route("config", actions.NewConfig(deps)),
		dispatchers.Route("theme", actions.NewTheme(deps)),
		dispatchers.Route("completions", actions.NewCompletions(deps)),
		dispatchers.Route("version", actions.NewVersion(deps)),
	)
	return table
}

// NewRunner wires a Runner for application. opts apply to both decoders.
func NewRunner(application *domain.Application, version string, opts ...decoder.Option) *app.Runner {
	deps := actions.Deps{
		Tool:     Name,
		Version:  version,
		TopUsage: Usage,
		Config:   application.Config,
		Styler:   application.Styler,
	}

	return &app.Runner{
		Name:            Name,
		Usage:           Usage,
		Version:         Name + " " + version,
		Table:           BuildTable(deps),
		Decoder:         decoder.New(opts...),
		TopLevelDecoder: decoder.NewTopLevel(opts...),
		Logger:          application.Logger,
	}
}

// Main runs calc against os.Args and returns the exit status.
func Main(version string) int {
	application, err := app.New(app.DefaultOptions(Name))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", Name, err)
		return dispatchers.ExitFailure
	}
	defer func() { _ = app.Close(application) }()

	runner := NewRunner(application, version, decoder.WithLogger(application.Logger))
	return runner.Main(application)
}
