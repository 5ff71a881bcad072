// Package completions generates shell completion scripts from a tool's
// route table and usage texts.
package completions

import (
	"strings"

	"github.com/footprint-tools/climux/internal/dispatchers"
)

// CommandInfo is one completable command.
type CommandInfo struct {
	Name    string // selector typed on the command line
	Summary string
	Flags   []FlagInfo
}

// FlagInfo is one option from an "Options:" section.
type FlagInfo struct {
	Names       []string // e.g. ["-v", "--verbose"]
	Description string
	HasValue    bool
}

// Long returns the first long name without dashes, or "".
func (f FlagInfo) Long() string {
	for _, n := range f.Names {
		if strings.HasPrefix(n, "--") {
			return strings.TrimPrefix(n, "--")
		}
	}
	return ""
}

// Short returns the first short name without the dash, or "".
func (f FlagInfo) Short() string {
	for _, n := range f.Names {
		if len(n) == 2 && n[0] == '-' && n[1] != '-' {
			return n[1:]
		}
	}
	return ""
}

// Spec is everything a generator needs.
type Spec struct {
	Tool        string
	GlobalFlags []FlagInfo
	Commands    []CommandInfo
}

// ExtractSpec collects the commands of t and the options of the top-level
// usage text.
func ExtractSpec(tool, topUsage string, t *dispatchers.Table) Spec {
	spec := Spec{
		Tool:        tool,
		GlobalFlags: ParseOptions(topUsage),
	}
	if t == nil {
		return spec
	}
	for _, e := range t.Entries() {
		spec.Commands = append(spec.Commands, CommandInfo{
			Name:    string(e.Selector),
			Summary: e.Spec.Summary(),
			Flags:   ParseOptions(e.Spec.Usage),
		})
	}
	return spec
}

// CommandNames returns every command selector in order.
func (s Spec) CommandNames() []string {
	names := make([]string, len(s.Commands))
	for i, c := range s.Commands {
		names[i] = c.Name
	}
	return names
}

// ParseOptions reads the option lines of the "Options:" section of a usage
// text, in the docopt layout "  -v, --verbose  Description".
func ParseOptions(usage string) []FlagInfo {
	var flags []FlagInfo
	inOptions := false

	for _, line := range strings.Split(usage, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(strings.ToLower(trimmed), "options:") {
			inOptions = true
			continue
		}
		if !inOptions {
			continue
		}
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, "-") {
			if line == trimmed {
				// next unindented section
				inOptions = false
			}
			continue
		}

		if f, ok := parseOptionLine(trimmed); ok {
			flags = append(flags, f)
		}
	}

	return flags
}

func parseOptionLine(line string) (FlagInfo, bool) {
	spec, desc, _ := strings.Cut(line, "  ")
	desc = strings.TrimSpace(desc)
	if i := strings.Index(desc, "[default:"); i >= 0 {
		desc = strings.TrimSpace(desc[:i])
	}

	var f FlagInfo
	f.Description = desc

	for _, tok := range strings.FieldsFunc(spec, func(r rune) bool { return r == ',' || r == ' ' }) {
		if !strings.HasPrefix(tok, "-") {
			// separate value placeholder: "-o FILE"
			f.HasValue = true
			continue
		}
		name, _, hasValue := strings.Cut(tok, "=")
		if hasValue {
			f.HasValue = true
		}
		f.Names = append(f.Names, name)
	}

	return f, len(f.Names) > 0
}

// funcName turns a tool name into a shell identifier: "my-tool" -> "my_tool".
func funcName(tool string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || r == ' ' {
			return '_'
		}
		return r
	}, tool)
}
