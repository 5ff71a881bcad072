package config

import (
	"fmt"
	"strings"
)

const bom = "\uFEFF"

// Parse turns rc file lines into a key/value map. Blank lines and lines
// starting with '#' are skipped; a trailing " #" comment is dropped; values
// wrapped in double quotes are unquoted. The last assignment of a key wins.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, bom)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := splitAssignment(trimmed)
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected key=value, got %q", i+1, trimmed)
		}
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = value
	}

	return cfg, nil
}

func splitAssignment(line string) (key, value string, ok bool) {
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	key = strings.TrimSpace(parts[0])
	value = stripComment(parts[1])
	value = strings.TrimSpace(value)
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

func stripComment(value string) string {
	if idx := strings.Index(value, " #"); idx >= 0 {
		return value[:idx]
	}
	return value
}
