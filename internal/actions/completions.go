package actions

import (
	"github.com/footprint-tools/climux/internal/completions"
	"github.com/footprint-tools/climux/internal/dispatchers"
	"github.com/footprint-tools/climux/internal/domain"
)

const completionsUsage = `Prints a shell completion script.

Usage:
  calc completions <shell>

Options:
  -h, --help  Show this help

Supported shells are bash, zsh and fish.
`

// Completions writes a completion script for the route table.
type Completions struct {
	Shell string `docopt:"<shell>"`

	deps Deps
}

func NewCompletions(deps Deps) func() dispatchers.Command {
	return func() dispatchers.Command { return &Completions{deps: deps} }
}

func (c *Completions) Name() string  { return "completions" }
func (c *Completions) Usage() string { return completionsUsage }

func (c *Completions) Execute(sh domain.Shell) error {
	shell, err := completions.ParseShell(c.Shell)
	if err != nil {
		return err
	}

	spec := completions.ExtractSpec(c.deps.Tool, c.deps.TopUsage, c.deps.Table())
	if err := completions.Write(sh, shell, spec); err != nil {
		return err
	}

	if sh.Verbose() {
		sh.Status("Install", "add to "+completions.RcFile(shell)+": "+completions.SourceInstructions(shell, c.deps.Tool))
	}
	return nil
}
