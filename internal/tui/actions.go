package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gridlegend/gridlegend/internal/types"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		h := msg.Height - 6
		if h < 3 {
			h = 3
		}
		m.table.SetHeight(h)
		return m, nil

	case statusMsg:
		m.statusMessage = string(msg)
		return m, nil

	case tea.KeyMsg:
		if m.searchMode {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.tab == TabCategories {
				m.tab = TabRegions
			} else {
				m.tab = TabCategories
			}
			m.table.SetCursor(0)
			m.refresh()
			return m, nil
		case "l":
			return m, m.toggleLocale()
		case "/":
			m.searchMode = true
			m.searchInput.SetValue(m.searchQuery)
			return m, m.searchInput.Focus()
		case "esc":
			if m.searchQuery != "" {
				m.searchQuery = ""
				m.refresh()
			}
			return m, nil
		case "c":
			return m, m.copyColor()
		}
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.searchQuery = m.searchInput.Value()
		m.searchInput.Blur()
		m.table.SetCursor(0)
		m.refresh()
		return m, nil
	case "esc":
		m.searchMode = false
		m.searchInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// toggleLocale cycles through the registry's locales and persists the
// choice.
func (m *Model) toggleLocale() tea.Cmd {
	locs := m.reg.Locales()
	next := locs[0]
	for i, l := range locs {
		if l == m.locale {
			next = locs[(i+1)%len(locs)]
			break
		}
	}
	m.locale = next
	m.refresh()
	save := m.savePrefs
	return func() tea.Msg {
		if save == nil {
			return statusMsg(fmt.Sprintf("Locale: %s", next))
		}
		if err := save(Prefs{Locale: string(next)}); err != nil {
			return statusMsg(fmt.Sprintf("Locale: %s (prefs not saved: %v)", next, err))
		}
		return statusMsg(fmt.Sprintf("Locale: %s", next))
	}
}

// copyColor copies the selected category's color value to the clipboard.
func (m Model) copyColor() tea.Cmd {
	c, ok := m.selectedCategory()
	if !ok {
		return func() tea.Msg { return statusMsg("No category selected") }
	}
	col := m.reg.ColorOrFallback(c)
	copyFn := m.copyFn
	return func() tea.Msg {
		if err := copyFn(string(col)); err != nil {
			return statusMsg(fmt.Sprintf("Copy failed: %v", err))
		}
		return statusMsg(fmt.Sprintf("Copied %s color %s", c, col))
	}
}

// Locale returns the locale currently displayed.
func (m Model) Locale() types.Locale { return m.locale }
