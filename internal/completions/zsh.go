package completions

import (
	"fmt"
	"strings"
)

// GenerateZsh renders a zsh completion script.
func GenerateZsh(spec Spec) string {
	fn := "_" + funcName(spec.Tool)
	var b strings.Builder

	fmt.Fprintf(&b, "#compdef %s\n", spec.Tool)
	fmt.Fprintf(&b, "# %s zsh completion script\n\n", spec.Tool)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range spec.Commands {
		fmt.Fprintf(&b, "        '%s:%s'\n", zshEscape(c.Name), zshEscape(c.Summary))
	}
	b.WriteString("    )\n\n")

	b.WriteString("    if (( CURRENT == 2 )); then\n")
	fmt.Fprintf(&b, "        _describe -t commands '%s command' commands\n", zshEscape(spec.Tool))
	if words := flagWords(spec.GlobalFlags); len(words) > 0 {
		fmt.Fprintf(&b, "        compadd -- %s\n", strings.Join(words, " "))
	}
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case $words[2] in\n")
	b.WriteString("        help)\n")
	fmt.Fprintf(&b, "            _describe -t commands '%s command' commands\n", zshEscape(spec.Tool))
	b.WriteString("            ;;\n")
	for _, c := range spec.Commands {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		fmt.Fprintf(&b, "            _arguments %s\n", strings.Join(zshArgSpecs(c.Flags), " "))
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "compdef %s %s\n", fn, spec.Tool)

	return b.String()
}

func zshArgSpecs(flags []FlagInfo) []string {
	var specs []string
	for _, f := range flags {
		suffix := ""
		if f.HasValue {
			suffix = ":value:"
		}
		for _, n := range f.Names {
			specs = append(specs, fmt.Sprintf("'%s[%s]%s'", n, zshEscape(f.Description), suffix))
		}
	}
	return specs
}

// zshEscape makes s safe inside a single-quoted _describe entry.
func zshEscape(s string) string {
	s = strings.ReplaceAll(s, "'", `'\''`)
	s = strings.ReplaceAll(s, ":", `\:`)
	s = strings.ReplaceAll(s, "[", `\[`)
	return strings.ReplaceAll(s, "]", `\]`)
}
