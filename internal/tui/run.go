package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gridlegend/gridlegend/internal/legend"
	"github.com/gridlegend/gridlegend/internal/types"
)

// Run starts the legend browser. An empty loc uses the saved preference.
func Run(reg *legend.Registry, loc types.Locale) error {
	if loc == "" {
		loc = types.Locale(LoadPrefs().Locale)
	}
	m := NewModel(reg, loc)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
