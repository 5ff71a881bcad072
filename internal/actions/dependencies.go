package actions

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/climux/internal/dispatchers"
	"github.com/footprint-tools/climux/internal/domain"
)

// Deps are what commands need beyond their shell.
type Deps struct {
	Tool     string
	Version  string
	TopUsage string
	Config   domain.ConfigProvider
	Styler   domain.Styler

	// Table is resolved lazily: the completions command lives in the
	// table it describes.
	Table func() *dispatchers.Table

	// Interactive and RunProgram drive the theme picker. When nil, the
	// picker checks stdin/stdout for a terminal and runs a full-screen
	// bubbletea program.
	Interactive func() bool
	RunProgram  func(tea.Model) (tea.Model, error)
}
