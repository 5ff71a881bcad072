package config

import "strings"

// lineKey returns the key assigned on line, or "" for blanks, comments and
// malformed lines.
func lineKey(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return ""
	}
	key, _, ok := splitAssignment(trimmed)
	if !ok {
		return ""
	}
	return key
}

// Set assigns key=value in lines, replacing the first existing assignment
// and keeping any trailing comment on it. It reports whether an existing
// assignment was replaced.
func Set(lines []string, key, value string) ([]string, bool) {
	if strings.Contains(value, " ") {
		value = "\"" + value + "\""
	}

	for i, line := range lines {
		if lineKey(line) != key {
			continue
		}

		_, rhs, _ := strings.Cut(line, "=")
		if idx := strings.Index(rhs, " #"); idx >= 0 {
			lines[i] = key + "=" + value + " " + strings.TrimSpace(rhs[idx:])
		} else {
			lines[i] = key + "=" + value
		}
		return lines, true
	}

	return append(lines, key+"="+value), false
}

// Unset removes every assignment of key and reports whether any was found.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if lineKey(line) == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}
