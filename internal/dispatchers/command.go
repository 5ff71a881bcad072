package dispatchers

import (
	"strings"

	"github.com/footprint-tools/climux/internal/domain"
)

// Command is one subcommand of a tool. A Command value doubles as its own
// options record: the decoder fills its exported fields from the usage
// text before Execute runs.
type Command interface {
	// Name is the stable token the subcommand's usage text expects first,
	// or "" for an anonymous command that receives its tokens unchanged.
	Name() string

	// Usage is the usage text: a one-line summary, then the docopt
	// "Usage:" and "Options:" sections.
	Usage() string

	// Execute does the command's work.
	Execute(sh domain.Shell) error
}

// CommandSpec is the static description of a command.
type CommandSpec struct {
	Name  string
	Usage string
}

// SpecOf captures the name and usage of cmd.
func SpecOf(cmd Command) CommandSpec {
	return CommandSpec{Name: cmd.Name(), Usage: cmd.Usage()}
}

// Anonymous reports whether the command has no stable name.
func (s CommandSpec) Anonymous() bool {
	return s.Name == ""
}

// Summary returns the first line of the trimmed usage, itself trimmed.
func (s CommandSpec) Summary() string {
	first, _, _ := strings.Cut(strings.TrimSpace(s.Usage), "\n")
	return strings.TrimSpace(first)
}

// Help returns the usage trimmed of surrounding whitespace.
func (s CommandSpec) Help() string {
	return strings.TrimSpace(s.Usage)
}
