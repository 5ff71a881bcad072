package actions

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/climux/internal/dispatchers"
)

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// feed applies msgs to m in order, stopping at the first quit.
func feed(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		if cmd != nil {
			if _, ok := cmd().(tea.QuitMsg); ok {
				break
			}
		}
	}
	return m
}

func TestThemePicker_StartsOnCurrent(t *testing.T) {
	m := newThemePicker([]string{"contrast", "default", "mono"}, "mono")
	require.Equal(t, 2, m.cursor)

	m = newThemePicker([]string{"contrast", "default", "mono"}, "unknown")
	require.Equal(t, 0, m.cursor)
}

func TestThemePicker_MovesAndWraps(t *testing.T) {
	m := newThemePicker([]string{"contrast", "default", "mono"}, "contrast")

	got := feed(m, keyUp).(themePicker)
	require.Equal(t, 2, got.cursor)

	got = feed(got, keyDown, runeKey('j')).(themePicker)
	require.Equal(t, 1, got.cursor)

	got = feed(got, runeKey('k')).(themePicker)
	require.Equal(t, 0, got.cursor)
}

func TestThemePicker_Choose(t *testing.T) {
	m := newThemePicker([]string{"contrast", "default", "mono"}, "default")

	got := feed(m, keyDown, keyEnter, keyUp).(themePicker)
	require.Equal(t, "mono", got.chosen)
	require.Equal(t, 2, got.cursor)
}

func TestThemePicker_Cancel(t *testing.T) {
	for _, msg := range []tea.Msg{keyEsc, runeKey('q'), tea.KeyMsg{Type: tea.KeyCtrlC}} {
		m := newThemePicker([]string{"contrast", "default"}, "default")
		got := feed(m, keyUp, msg).(themePicker)
		require.Empty(t, got.chosen)
	}
}

func TestThemePicker_View(t *testing.T) {
	m := newThemePicker([]string{"contrast", "default", "mono"}, "default")
	m = feed(m, keyDown).(themePicker)

	view := m.View()
	require.Contains(t, view, "Select a theme:")
	require.Contains(t, view, "  * default\n")
	require.Contains(t, view, ">   mono\n")
	require.Contains(t, view, "success")
	require.Contains(t, view, "select")
}

func TestTheme_PickWithoutTerminalListsThemes(t *testing.T) {
	cfg := newMemConfig()
	deps := testDeps(cfg)
	deps.Interactive = func() bool { return false }
	deps.RunProgram = func(tea.Model) (tea.Model, error) {
		t.Fatal("picker must not start without a terminal")
		return nil, nil
	}
	entry := dispatchers.Route("theme", NewTheme(deps))

	out, stderr, err := invoke(t, entry, "--pick")
	require.NoError(t, err)
	require.Equal(t, "  contrast\n* default\n  mono\n", out)
	require.Equal(t, "warning: theme picker needs an interactive terminal\n", stderr)
}

func TestTheme_PickStoresChoice(t *testing.T) {
	cfg := newMemConfig()
	deps := testDeps(cfg)
	deps.Interactive = func() bool { return true }
	deps.RunProgram = func(m tea.Model) (tea.Model, error) {
		return feed(m, keyDown, keyEnter), nil
	}
	entry := dispatchers.Route("theme", NewTheme(deps))

	_, stderr, err := invoke(t, entry, "--pick")
	require.NoError(t, err)
	require.Equal(t, "mono", cfg.values["theme"])
	require.Equal(t, "       Theme mono\n", stderr)
}

func TestTheme_PickCancelled(t *testing.T) {
	cfg := newMemConfig()
	deps := testDeps(cfg)
	deps.Interactive = func() bool { return true }
	deps.RunProgram = func(m tea.Model) (tea.Model, error) {
		return feed(m, keyDown, keyEsc), nil
	}
	entry := dispatchers.Route("theme", NewTheme(deps))

	out, stderr, err := invoke(t, entry, "--pick")
	require.NoError(t, err)
	require.Equal(t, "default", cfg.values["theme"])
	require.Empty(t, out)
	require.Empty(t, stderr)
}

func TestTheme_PickSameTheme(t *testing.T) {
	cfg := newMemConfig()
	deps := testDeps(cfg)
	deps.Interactive = func() bool { return true }
	deps.RunProgram = func(m tea.Model) (tea.Model, error) {
		return feed(m, keyEnter), nil
	}
	entry := dispatchers.Route("theme", NewTheme(deps))

	_, stderr, err := invoke(t, entry, "--pick")
	require.NoError(t, err)
	require.Equal(t, "       Theme default is already active\n", stderr)
}
