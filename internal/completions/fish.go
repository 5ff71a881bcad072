package completions

import (
	"fmt"
	"strings"
)

// GenerateFish renders a fish completion script.
func GenerateFish(spec Spec) string {
	var b strings.Builder
	tool := spec.Tool

	fmt.Fprintf(&b, "# %s fish completion script\n", tool)
	fmt.Fprintf(&b, "complete -c %s -f\n\n", tool)

	fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' -a 'help' -d 'Show help for a command'\n", tool)
	for _, c := range spec.Commands {
		fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' -a '%s' -d '%s'\n", tool, c.Name, fishEscape(c.Summary))
	}
	for _, f := range spec.GlobalFlags {
		fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand'%s\n", tool, fishFlag(f))
	}

	fmt.Fprintf(&b, "\ncomplete -c %s -n '__fish_seen_subcommand_from help' -a '%s'\n", tool, strings.Join(spec.CommandNames(), " "))
	for _, c := range spec.Commands {
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c %s -n '__fish_seen_subcommand_from %s'%s\n", tool, c.Name, fishFlag(f))
		}
	}

	return b.String()
}

func fishFlag(f FlagInfo) string {
	var b strings.Builder
	if s := f.Short(); s != "" {
		b.WriteString(" -s " + s)
	}
	if l := f.Long(); l != "" {
		b.WriteString(" -l " + l)
	}
	if f.HasValue {
		b.WriteString(" -r")
	}
	if f.Description != "" {
		b.WriteString(" -d '" + fishEscape(f.Description) + "'")
	}
	return b.String()
}

func fishEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "'", `\'`)
}
