package actions

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/climux/internal/ui/style"
)

type pickerKeys struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

func (k pickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Quit}
}

func (k pickerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultPickerKeys = pickerKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Choose: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "cancel")),
}

// themePicker is the bubbletea model behind "theme --pick".
type themePicker struct {
	themes  []string
	current string
	cursor  int
	chosen  string

	keys pickerKeys
	help help.Model
}

func newThemePicker(themes []string, current string) themePicker {
	m := themePicker{
		themes:  themes,
		current: current,
		keys:    defaultPickerKeys,
		help:    help.New(),
	}
	for i, name := range themes {
		if name == current {
			m.cursor = i
		}
	}
	return m
}

func (m themePicker) Init() tea.Cmd {
	return nil
}

func (m themePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		n := len(m.themes)
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case n == 0:
		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor - 1 + n) % n
		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % n
		case key.Matches(msg, m.keys.Choose):
			m.chosen = m.themes[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m themePicker) View() string {
	var b strings.Builder
	b.WriteString("Select a theme:\n\n")

	for i, name := range m.themes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		mark := "  "
		if name == m.current {
			mark = "* "
		}
		b.WriteString(cursor + mark + name + "\n")
	}

	if len(m.themes) > 0 {
		colors := style.Themes[style.ResolveThemeName(m.themes[m.cursor])]
		b.WriteString("\n" + themePreview(colors) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

// themePreview renders each semantic role in its theme color.
func themePreview(c style.ColorConfig) string {
	swatch := func(label, color string) string {
		s := lipgloss.NewStyle()
		switch color {
		case "":
		case "bold":
			s = s.Bold(true)
		default:
			s = s.Foreground(lipgloss.Color(color))
		}
		return s.Render(label)
	}

	return strings.Join([]string{
		swatch("success", c.Success),
		swatch("warning", c.Warning),
		swatch("error", c.Error),
		swatch("info", c.Info),
		swatch("muted", c.Muted),
		swatch("header", c.Header),
	}, "  ")
}
