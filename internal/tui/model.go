package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gridlegend/gridlegend/internal/legend"
	"github.com/gridlegend/gridlegend/internal/report"
	"github.com/gridlegend/gridlegend/internal/types"
	"github.com/gridlegend/gridlegend/internal/validate"
)

var (
	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	detailPaneBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("232")).
			Background(lipgloss.Color("208")).
			Bold(true).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Tab selects which table the browser shows.
type Tab int

const (
	TabCategories Tab = iota
	TabRegions
)

func (t Tab) String() string {
	if t == TabRegions {
		return "Regions"
	}
	return "Categories"
}

type statusMsg string

// Model is the legend browser state.
type Model struct {
	reg    *legend.Registry
	table  table.Model
	locale types.Locale
	tab    Tab

	// rows currently shown, parallel to the table rows
	categories []types.Category
	regions    []types.Region

	searchMode  bool
	searchInput textinput.Model
	searchQuery string

	statusMessage string
	copyFn        func(string) error
	savePrefs     func(Prefs) error

	ready    bool
	quitting bool
	width    int
	height   int
}

// NewModel builds a browser over reg starting in locale loc. An unknown
// locale falls back to the registry's fallback locale.
func NewModel(reg *legend.Registry, loc types.Locale) Model {
	if !reg.HasLocale(loc) {
		loc = reg.FallbackLocale()
	}

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(12),
	)
	s := table.DefaultStyles()
	s.Header = lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("15")).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Left)
	s.Selected = lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(lipgloss.Color("208")).
		Bold(true).
		Padding(0, 1)
	s.Cell = lipgloss.NewStyle().Padding(0, 1)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "Search id or label..."
	ti.CharLimit = 64
	ti.Width = 40
	ti.Prompt = "/ "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))

	m := Model{
		reg:           reg,
		table:         t,
		locale:        loc,
		searchInput:   ti,
		copyFn:        clipboard.WriteAll,
		savePrefs:     SavePrefs,
		statusMessage: "q: quit | tab: categories/regions | l: locale | /: search | c: copy color",
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// refresh rebuilds the table for the current tab, locale and search query.
func (m *Model) refresh() {
	q := strings.ToLower(strings.TrimSpace(m.searchQuery))
	matches := func(id, label string) bool {
		return q == "" || strings.Contains(id, q) || strings.Contains(strings.ToLower(label), q)
	}

	var rows []table.Row
	m.categories, m.regions = nil, nil
	switch m.tab {
	case TabRegions:
		m.table.SetRows(nil)
		m.table.SetColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Region", Width: 12},
			{Title: "Label", Width: 16},
		})
		for i, reg := range m.reg.Regions() {
			label, _ := m.reg.RegionLabel(m.locale, reg)
			if !matches(string(reg), label) {
				continue
			}
			m.regions = append(m.regions, reg)
			rows = append(rows, table.Row{fmt.Sprintf("%d", i+1), string(reg), label})
		}
	default:
		m.table.SetRows(nil)
		m.table.SetColumns([]table.Column{
			{Title: "Class", Width: 14},
			{Title: "Category", Width: 18},
			{Title: "Label", Width: 28},
			{Title: "Color", Width: 10},
		})
		for _, c := range m.reg.AllCategories() {
			label, _ := m.reg.CategoryLabel(m.locale, c)
			if !matches(string(c), label) {
				continue
			}
			cl, _ := m.reg.ClassOf(c)
			m.categories = append(m.categories, c)
			rows = append(rows, table.Row{string(cl), string(c), label, string(m.reg.ColorOrFallback(c))})
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// selectedCategory returns the category under the cursor on the
// categories tab.
func (m Model) selectedCategory() (types.Category, bool) {
	if m.tab != TabCategories {
		return "", false
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.categories) {
		return "", false
	}
	return m.categories[i], true
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	tabs := []string{}
	for _, t := range []Tab{TabCategories, TabRegions} {
		if t == m.tab {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(t.String()))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("gridlegend"),
		strings.Join(tabs, " "),
		dimStyle.Render(fmt.Sprintf("  locale: %s  fingerprint: %s", m.locale, m.reg.Fingerprint())),
	)
	b.WriteString(header + "\n")

	if m.searchMode {
		b.WriteString(m.searchInput.View() + "\n")
	} else if m.searchQuery != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("search: '%s' (esc to clear)", m.searchQuery)) + "\n")
	}

	body := tableBorderStyle.Render(m.table.View())
	if detail := m.detailView(); detail != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, detailPaneBorderStyle.Render(detail))
	}
	b.WriteString(body + "\n")
	b.WriteString(statusStyle.Width(m.width).Render(m.statusMessage))
	return b.String()
}

func (m Model) detailView() string {
	c, ok := m.selectedCategory()
	if !ok {
		return ""
	}
	col := m.reg.ColorOrFallback(c)
	hex, err := validate.ToHex(string(col))
	if err != nil {
		hex = "invalid"
	}
	var b strings.Builder
	b.WriteString(keyStyle.Render(string(c)) + "\n\n")
	for _, loc := range m.reg.Locales() {
		label, err := m.reg.CategoryLabel(loc, c)
		if err != nil {
			label = "-"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", dimStyle.Render(string(loc)+":"), label))
	}
	b.WriteString(fmt.Sprintf("\n%s %s (%s)\n", dimStyle.Render("color:"), col, hex))
	b.WriteString(report.Swatch(col, false) + report.Swatch(col, false) + report.Swatch(col, false))
	return b.String()
}
