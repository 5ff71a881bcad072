package completions

import (
	"fmt"
	"strings"
)

// GenerateBash renders a bash completion script.
func GenerateBash(spec Spec) string {
	fn := "_" + funcName(spec.Tool) + "_completions"
	var b strings.Builder

	fmt.Fprintf(&b, "# %s bash completion script\n", spec.Tool)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	fmt.Fprintf(&b, "    local commands=%q\n", strings.Join(spec.CommandNames(), " "))
	fmt.Fprintf(&b, "    local global_flags=%q\n\n", strings.Join(flagWords(spec.GlobalFlags), " "))

	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	b.WriteString("        COMPREPLY=( $(compgen -W \"${commands} help ${global_flags}\" -- \"${cur}\") )\n")
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")
	b.WriteString("        help)\n")
	b.WriteString("            COMPREPLY=( $(compgen -W \"${commands}\" -- \"${cur}\") )\n")
	b.WriteString("            ;;\n")
	for _, c := range spec.Commands {
		words := flagWords(c.Flags)
		if len(words) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", strings.Join(words, " "))
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, spec.Tool)

	return b.String()
}

// flagWords lists every name of every flag.
func flagWords(flags []FlagInfo) []string {
	var words []string
	for _, f := range flags {
		words = append(words, f.Names...)
	}
	return words
}
