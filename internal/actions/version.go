package actions

import (
	"github.com/footprint-tools/climux/internal/dispatchers"
	"github.com/footprint-tools/climux/internal/domain"
)

const versionUsage = `Prints the version.

Usage:
  calc version
`

// Version prints the tool version.
type Version struct {
	deps Deps
}

func NewVersion(deps Deps) func() dispatchers.Command {
	return func() dispatchers.Command { return &Version{deps: deps} }
}

func (c *Version) Name() string  { return "version" }
func (c *Version) Usage() string { return versionUsage }

func (c *Version) Execute(sh domain.Shell) error {
	_, err := sh.Printf("%s version %s\n", c.deps.Tool, c.deps.Version)
	return err
}
