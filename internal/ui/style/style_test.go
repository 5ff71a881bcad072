package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func fixedBackground(t *testing.T, dark bool) {
	t.Helper()
	saved := isDarkBackground
	isDarkBackground = func() bool { return dark }
	t.Cleanup(func() { isDarkBackground = saved })
}

func clearColorEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NO_COLOR", "")
	t.Setenv("CALC_NO_COLOR", "")
	t.Setenv("CALC_THEME", "")
	for key := range colorConfigKeys {
		t.Setenv("CALC_"+strings.ToUpper(key), "")
	}
}

var helpers = []struct {
	name string
	fn   func(string) string
}{
	{"Success", Success},
	{"Warning", Warning},
	{"Error", Error},
	{"Info", Info},
	{"Header", Header},
	{"Muted", Muted},
}

func TestDisabledReturnsPlainText(t *testing.T) {
	clearColorEnv(t)
	Init("calc", false, nil)

	for _, h := range helpers {
		require.Equal(t, "plain", h.fn("plain"), h.name)
	}
	require.False(t, Enabled())
}

func TestEnabledAddsANSI(t *testing.T) {
	clearColorEnv(t)
	fixedBackground(t, true)
	Init("calc", true, nil)
	t.Cleanup(func() { Init("calc", false, nil) })

	for _, h := range helpers {
		out := h.fn("styled")
		require.Contains(t, out, "styled", h.name)
		require.Contains(t, out, "\x1b[", h.name)
	}
}

func TestNoColorEnvWins(t *testing.T) {
	for _, env := range []string{"NO_COLOR", "CALC_NO_COLOR"} {
		t.Run(env, func(t *testing.T) {
			clearColorEnv(t)
			t.Setenv(env, "1")

			Init("calc", true, nil)

			require.False(t, Enabled())
			require.Equal(t, "x", Error("x"))
		})
	}
}

func TestShouldEnable(t *testing.T) {
	tests := []struct {
		setting string
		tty     bool
		want    bool
	}{
		{"auto", true, true},
		{"auto", false, false},
		{"", true, true},
		{"always", false, true},
		{"ALWAYS", false, true},
		{"never", true, false},
		{"false", true, false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ShouldEnable(tt.setting, tt.tty), "%q tty=%v", tt.setting, tt.tty)
	}
}

func TestLoadColorConfig(t *testing.T) {
	t.Run("config theme and override", func(t *testing.T) {
		clearColorEnv(t)
		fixedBackground(t, false)

		got := LoadColorConfig("calc", map[string]string{"theme": "contrast", "color_error": "160"})
		want := Themes["contrast-light"]
		want.Error = "160"
		require.Equal(t, want, got)
	})

	t.Run("env beats config", func(t *testing.T) {
		clearColorEnv(t)
		fixedBackground(t, false)
		t.Setenv("CALC_COLOR_ERROR", "99")
		t.Setenv("CALC_THEME", "mono")

		got := LoadColorConfig("calc", map[string]string{"theme": "contrast", "color_error": "160"})
		want := Themes["mono-light"]
		want.Error = "99"
		require.Equal(t, want, got)
	})

	t.Run("unknown theme falls back to default-dark", func(t *testing.T) {
		clearColorEnv(t)
		fixedBackground(t, false)

		got := LoadColorConfig("calc", map[string]string{"theme": "nope-dark"})
		require.Equal(t, Themes["default-dark"], got)
	})
}

func TestResolveThemeName(t *testing.T) {
	fixedBackground(t, true)
	require.Equal(t, "mono-dark", ResolveThemeName("mono"))
	require.Equal(t, "mono-light", ResolveThemeName("mono-light"))
}

func TestBaseThemeNames(t *testing.T) {
	require.Equal(t, []string{"contrast", "default", "mono"}, BaseThemeNames())
}

func TestNopStyler(t *testing.T) {
	var s NopStyler
	require.False(t, s.Enabled())
	require.Equal(t, "x", s.Header("x"))
}
