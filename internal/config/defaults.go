package config

import "github.com/footprint-tools/climux/internal/domain"

// Defaults returns the built-in value of every known key that has one.
func Defaults() map[string]string {
	result := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		if key.Default != "" {
			result[key.Name] = key.Default
		}
	}
	return result
}

// Load reads the rc file at path and merges it over Defaults. A missing or
// unreadable file yields the defaults alone.
func Load(path string) (map[string]string, error) {
	result := Defaults()

	lines, err := ReadLines(path)
	if err != nil {
		return result, err
	}

	cfg, err := Parse(lines)
	if err != nil {
		return result, err
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}
