// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Success, Warning, Error, etc.) rather than visual (RedBold, etc.).
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/footprint-tools/climux/internal/paths"
)

var (
	mu      sync.RWMutex
	enabled bool
	colors  ColorConfig

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
)

// ShouldEnable resolves the "color" setting (auto, always, never) against
// whether the output is a terminal.
func ShouldEnable(setting string, isTTY bool) bool {
	switch strings.ToLower(strings.TrimSpace(setting)) {
	case "always", "true", "on":
		return true
	case "never", "false", "off":
		return false
	default:
		return isTTY
	}
}

// Init configures styling for app. NO_COLOR and <APP>_NO_COLOR (for "calc",
// CALC_NO_COLOR) disable styling regardless of enable. cfg supplies the
// theme and per-color overrides; nil means defaults.
func Init(app string, enable bool, cfg map[string]string) {
	mu.Lock()
	defer mu.Unlock()

	if os.Getenv("NO_COLOR") != "" || os.Getenv(paths.EnvPrefix(app)+"NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if !enabled {
		return
	}

	colors = LoadColorConfig(app, cfg)

	// Pin the profile so output does not depend on TTY detection of stdout.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)
}

// GetColors returns the active color configuration.
func GetColors() ColorConfig {
	mu.RLock()
	defer mu.RUnlock()
	return colors
}

// makeStyle turns "bold" or an ANSI color number (0-255) into a style.
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func render(s *lipgloss.Style, text string) string {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Success styles text for successful operations.
func Success(text string) string { return render(&successStyle, text) }

// Warning styles text for warning messages.
func Warning(text string) string { return render(&warningStyle, text) }

// Error styles text for error messages.
func Error(text string) string { return render(&errorStyle, text) }

// Info styles text for informational messages.
func Info(text string) string { return render(&infoStyle, text) }

// Header styles text for section headers or titles.
func Header(text string) string { return render(&headerStyle, text) }

// Muted styles text for less important or secondary information.
func Muted(text string) string { return render(&mutedStyle, text) }
