package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// AppDataDir returns the application data directory for logs and state.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir(app string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, app)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the rc file for app, e.g. ~/.calcrc.
func ConfigFilePath(app string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, "."+app+"rc"), nil
}

// LogFilePath returns the path to the application log file.
//   - macOS: ~/Library/Application Support/<app>/<app>.log
//   - Linux: $XDG_CONFIG_HOME/<app>/<app>.log or ~/.config/<app>/<app>.log
//   - Windows: %AppData%\<app>\<app>.log
func LogFilePath(app string) string {
	return filepath.Join(AppDataDir(app), app+".log")
}

// EnvPrefix returns the environment variable prefix for app: "calc" -> "CALC_".
func EnvPrefix(app string) string {
	upper := strings.ToUpper(app)
	upper = strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, upper)
	return upper + "_"
}
