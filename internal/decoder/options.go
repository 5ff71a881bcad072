package decoder

import (
	"regexp"
	"strings"
)

// optionName matches "-x" and "--long" where they start a word.
var optionName = regexp.MustCompile(`(?:^|[^\w-])(-{1,2}[A-Za-z0-9?][\w-]*)`)

// declaredOptions collects every option name mentioned in a usage text.
func declaredOptions(usageText string) (short map[byte]bool, long []string) {
	short = make(map[byte]bool)
	for _, m := range optionName.FindAllStringSubmatch(usageText, -1) {
		name := m[1]
		if strings.HasPrefix(name, "--") {
			long = append(long, name)
		} else {
			short[name[1]] = true
		}
	}
	return short, long
}

// unknownOptions lists the option tokens in argv the usage text does not
// declare, in order. A long token may abbreviate a declared option. For a
// short cluster only the first letter is checked; the rest may be a value.
func unknownOptions(usageText string, argv []string, optionsFirst bool) []string {
	short, long := declaredOptions(usageText)

	var unknown []string
	for _, tok := range argv {
		if tok == "--" {
			break
		}
		if !strings.HasPrefix(tok, "-") || tok == "-" {
			if optionsFirst {
				break
			}
			continue
		}

		if strings.HasPrefix(tok, "--") {
			name, _, _ := strings.Cut(tok, "=")
			if !hasLongPrefix(long, name) {
				unknown = append(unknown, name)
			}
			continue
		}

		if !short[tok[1]] {
			unknown = append(unknown, tok[:2])
		}
	}
	return unknown
}

func hasLongPrefix(long []string, name string) bool {
	for _, l := range long {
		if strings.HasPrefix(l, name) {
			return true
		}
	}
	return false
}
