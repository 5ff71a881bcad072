package actions

import (
	"strings"

	"github.com/footprint-tools/climux/internal/dispatchers"
	"github.com/footprint-tools/climux/internal/domain"
)

const echoUsage = `Prints its arguments separated by spaces.

Usage:
  echo [-n] [<words>...]

Options:
  -n  Do not print the trailing newline
`

// Echo has no stable name: it receives the tokens after its selector
// exactly as typed.
type Echo struct {
	Words     []string `docopt:"<words>"`
	NoNewline bool     `docopt:"-n"`
}

func NewEcho() dispatchers.Command { return &Echo{} }

func (c *Echo) Name() string  { return "" }
func (c *Echo) Usage() string { return echoUsage }

func (c *Echo) Execute(sh domain.Shell) error {
	line := strings.Join(c.Words, " ")
	if c.NoNewline {
		_, err := sh.Print(line)
		return err
	}
	_, err := sh.Println(line)
	return err
}
