package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gridlegend/gridlegend/internal/legend"
	"github.com/gridlegend/gridlegend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(legend.Default(), types.LocaleEN)
	m.savePrefs = nil
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestNewModel_ListsAllCategories(t *testing.T) {
	m := newTestModel(t)
	rows := m.table.Rows()
	all := legend.Default().AllCategories()
	require.Len(t, rows, len(all))
	for i, c := range all {
		assert.Equal(t, string(c), rows[i][1])
	}
	assert.Equal(t, "renewable", rows[0][0])
	assert.Equal(t, "Hydropower", rows[0][2])
	assert.Equal(t, "blue", rows[0][3])
}

func TestNewModel_UnknownLocaleUsesFallback(t *testing.T) {
	m := NewModel(legend.Default(), types.Locale("fr"))
	assert.Equal(t, types.LocaleEN, m.Locale())
}

func TestTab_SwitchesToRegions(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, key("tab"))
	assert.Equal(t, TabRegions, m.tab)
	rows := m.table.Rows()
	require.Len(t, rows, 10)
	assert.Equal(t, "japan", rows[0][1])
	assert.Equal(t, "Tohoku", rows[3][2])

	_, ok := m.selectedCategory()
	assert.False(t, ok)

	m, _ = send(t, m, key("tab"))
	assert.Equal(t, TabCategories, m.tab)
}

func TestToggleLocale(t *testing.T) {
	m := newTestModel(t)
	var saved Prefs
	m.savePrefs = func(p Prefs) error {
		saved = p
		return nil
	}

	m, cmd := send(t, m, key("l"))
	assert.Equal(t, types.LocaleJP, m.Locale())
	assert.Equal(t, "水力", m.table.Rows()[0][2])
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, statusMsg("Locale: jp"), msg)
	assert.Equal(t, "jp", saved.Locale)

	m, _ = send(t, m, key("l"))
	assert.Equal(t, types.LocaleEN, m.Locale())
}

func TestToggleLocale_SaveError(t *testing.T) {
	m := newTestModel(t)
	m.savePrefs = func(Prefs) error { return errors.New("read-only") }
	_, cmd := send(t, m, key("l"))
	msg := cmd()
	assert.Contains(t, string(msg.(statusMsg)), "prefs not saved")
}

func TestSearch_FiltersByIDAndLabel(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, key("/"))
	assert.True(t, m.searchMode)

	m.searchInput.SetValue("thermal_")
	m, _ = send(t, m, key("enter"))
	assert.False(t, m.searchMode)
	assert.Equal(t, "thermal_", m.searchQuery)
	assert.Len(t, m.table.Rows(), 4)

	// labels match too, in the current locale
	m.searchQuery = "需要"
	m.locale = types.LocaleJP
	m.refresh()
	rows := m.table.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "demand", rows[0][1])

	m, _ = send(t, m, key("esc"))
	assert.Empty(t, m.searchQuery)
	assert.Len(t, m.table.Rows(), len(legend.Default().AllCategories()))
}

func TestSearch_EscCancelsInput(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, key("/"))
	m.searchInput.SetValue("wind")
	m, _ = send(t, m, key("esc"))
	assert.False(t, m.searchMode)
	assert.Empty(t, m.searchQuery)
}

func TestSearch_NoMatches(t *testing.T) {
	m := newTestModel(t)
	m.searchQuery = "zzz"
	m.refresh()
	assert.Empty(t, m.table.Rows())
	_, ok := m.selectedCategory()
	assert.False(t, ok)

	_, cmd := send(t, m, key("c"))
	assert.Equal(t, statusMsg("No category selected"), cmd())
}

func TestCopyColor(t *testing.T) {
	m := newTestModel(t)
	var copied string
	m.copyFn = func(s string) error {
		copied = s
		return nil
	}
	_, cmd := send(t, m, key("c"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, "blue", copied)
	assert.True(t, strings.HasPrefix(string(msg.(statusMsg)), "Copied hydropower"))

	m.copyFn = func(string) error { return errors.New("no clipboard") }
	_, cmd = send(t, m, key("c"))
	assert.Contains(t, string(cmd().(statusMsg)), "Copy failed")
}

func TestStatusMsg_UpdatesStatusLine(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, statusMsg("hello"))
	assert.Equal(t, "hello", m.statusMessage)
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newTestModel(t)
		m, cmd := send(t, m, key(k))
		assert.True(t, m.quitting, k)
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd(), k)
	}
}
