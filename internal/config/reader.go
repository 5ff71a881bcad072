package config

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/footprint-tools/climux/internal/domain"
)

// ReadLines returns the raw lines of the rc file at path. A missing file
// reads as empty.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		line = strings.TrimSuffix(line, "\r") // Windows CRLF
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// initializeDefaults creates rc lines with default values for visible keys.
func initializeDefaults(app string) []string {
	var lines []string

	lines = append(lines, "# "+app+" configuration")
	lines = append(lines, "# Edit values below or use: "+app+" config <key> <value>")
	lines = append(lines, "")

	for _, key := range domain.ConfigKeys {
		if key.Hidden {
			continue
		}

		value := key.Default
		if strings.Contains(value, " ") {
			value = "\"" + value + "\""
		}

		// HideIfEmpty keys are commented out (optional overrides)
		if key.HideIfEmpty {
			lines = append(lines, "# "+key.Name+"=")
		} else {
			lines = append(lines, key.Name+"="+value)
		}
	}

	return lines
}
