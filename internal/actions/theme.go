package actions

import (
	"fmt"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/footprint-tools/climux/internal/dispatchers"
	"github.com/footprint-tools/climux/internal/domain"
	"github.com/footprint-tools/climux/internal/ui/style"
)

const themeUsage = `Lists color themes or picks one.

Usage:
  calc theme [<name>]
  calc theme --pick

Options:
  --pick      Choose a theme interactively
  -h, --help  Show this help
`

// Theme lists the built-in themes, or stores one in the rc file.
type Theme struct {
	Choice string `docopt:"<name>"`
	Pick   bool   `docopt:"--pick"`

	deps Deps
}

func NewTheme(deps Deps) func() dispatchers.Command {
	return func() dispatchers.Command { return &Theme{deps: deps} }
}

func (c *Theme) Name() string  { return "theme" }
func (c *Theme) Usage() string { return themeUsage }

func (c *Theme) Execute(sh domain.Shell) error {
	switch {
	case c.Pick:
		return c.pick(sh)
	case c.Choice != "":
		return c.set(sh, c.Choice)
	default:
		return c.list(sh)
	}
}

func (c *Theme) set(sh domain.Shell, name string) error {
	if !slices.Contains(style.BaseThemeNames(), name) {
		return fmt.Errorf("unknown theme %q", name)
	}
	if err := c.deps.Config.Set("theme", name); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	sh.Status("Theme", name)
	return nil
}

func (c *Theme) list(sh domain.Shell) error {
	current, _ := c.deps.Config.Get("theme")
	for _, name := range style.BaseThemeNames() {
		marker := " "
		if name == current {
			marker = "*"
		}
		if _, err := sh.Printf("%s %s\n", marker, name); err != nil {
			return err
		}
	}
	return nil
}

// pick runs the picker, which needs a terminal on both ends. Anywhere else
// the plain listing is printed instead.
func (c *Theme) pick(sh domain.Shell) error {
	if !c.interactive() {
		sh.Warn("theme picker needs an interactive terminal")
		return c.list(sh)
	}

	current, _ := c.deps.Config.Get("theme")
	final, err := c.runProgram(newThemePicker(style.BaseThemeNames(), current))
	if err != nil {
		return fmt.Errorf("theme picker: %w", err)
	}

	picked, _ := final.(themePicker)
	switch picked.chosen {
	case "":
		sh.Verbosef("theme unchanged")
		return nil
	case current:
		sh.Status("Theme", current+" is already active")
		return nil
	}
	return c.set(sh, picked.chosen)
}

func (c *Theme) interactive() bool {
	if c.deps.Interactive != nil {
		return c.deps.Interactive()
	}
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func (c *Theme) runProgram(m tea.Model) (tea.Model, error) {
	if c.deps.RunProgram != nil {
		return c.deps.RunProgram(m)
	}
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}
