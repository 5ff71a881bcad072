package style

import (
	"os"
	"sort"
	"strings"

	"github.com/muesli/termenv"

	"github.com/footprint-tools/climux/internal/paths"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// Themes contains the built-in color themes. Dark variants use bright
// colors, light variants use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",
		Warning: "11",
		Error:   "9",
		Info:    "14",
		Muted:   "245",
		Header:  "bold",
	},
	"default-light": {
		Success: "28",
		Warning: "130",
		Error:   "124",
		Info:    "27",
		Muted:   "242",
		Header:  "bold",
	},
	"mono-dark": {
		Success: "15",
		Warning: "250",
		Error:   "15",
		Info:    "252",
		Muted:   "243",
		Header:  "bold",
	},
	"mono-light": {
		Success: "232",
		Warning: "238",
		Error:   "232",
		Info:    "236",
		Muted:   "245",
		Header:  "bold",
	},
	"contrast-dark": {
		Success: "46",
		Warning: "226",
		Error:   "196",
		Info:    "51",
		Muted:   "250",
		Header:  "15",
	},
	"contrast-light": {
		Success: "22",
		Warning: "94",
		Error:   "88",
		Info:    "18",
		Muted:   "238",
		Header:  "16",
	},
}

// colorConfigKeys maps config key names to setters on ColorConfig.
var colorConfigKeys = map[string]func(*ColorConfig, string){
	"color_success": func(c *ColorConfig, v string) { c.Success = v },
	"color_warning": func(c *ColorConfig, v string) { c.Warning = v },
	"color_error":   func(c *ColorConfig, v string) { c.Error = v },
	"color_info":    func(c *ColorConfig, v string) { c.Info = v },
	"color_muted":   func(c *ColorConfig, v string) { c.Muted = v },
	"color_header":  func(c *ColorConfig, v string) { c.Header = v },
}

// BaseThemeNames lists the theme bases, sorted.
func BaseThemeNames() []string {
	seen := make(map[string]bool)
	var names []string
	for name := range Themes {
		base := strings.TrimSuffix(strings.TrimSuffix(name, "-dark"), "-light")
		if !seen[base] {
			seen[base] = true
			names = append(names, base)
		}
	}
	sort.Strings(names)
	return names
}

// isDarkBackground is swapped in tests; termenv queries the terminal.
var isDarkBackground = termenv.HasDarkBackground

// ResolveThemeName appends -dark or -light to a base theme name based on
// the terminal background. Names that already carry a suffix are kept.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if isDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds the colors for app. Resolution, highest first:
// <APP>_COLOR_* env vars, color_* config keys, the configured theme, and
// finally the default theme.
func LoadColorConfig(app string, cfg map[string]string) ColorConfig {
	prefix := paths.EnvPrefix(app)

	themeName := "default"
	if envTheme := os.Getenv(prefix + "THEME"); envTheme != "" {
		themeName = envTheme
	} else if cfgTheme := cfg["theme"]; cfgTheme != "" {
		themeName = cfgTheme
	}

	result, ok := Themes[ResolveThemeName(themeName)]
	if !ok {
		result = Themes["default-dark"]
	}

	for key, set := range colorConfigKeys {
		if envVal := os.Getenv(prefix + strings.ToUpper(key)); envVal != "" {
			set(&result, envVal)
			continue
		}
		if cfgVal := cfg[key]; cfgVal != "" {
			set(&result, cfgVal)
		}
	}

	return result
}
