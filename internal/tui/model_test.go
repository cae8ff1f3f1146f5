package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenbrowser/toolbarkit/internal/action"
	"github.com/wrenbrowser/toolbarkit/internal/middleware"
	"github.com/wrenbrowser/toolbarkit/internal/state"
	"github.com/wrenbrowser/toolbarkit/internal/toolbar"
)

func newTestModel(t *testing.T) (*Model, uuid.UUID) {
	t.Helper()
	window := uuid.New()
	screens := state.NewStore()
	screens.Set(window, state.Screen{Position: state.PositionTop, TabCount: 2})
	router := middleware.NewRouter(screens, nil, nil)
	return NewModel(screens, router, window), window
}

// collectMsgs runs a command tree and flattens batch messages.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collectMsgs(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func TestInitDispatchesBrowserDidLoad(t *testing.T) {
	m, window := newTestModel(t)
	msgs := collectMsgs(m.Init())
	require.Len(t, msgs, 1)
	load, ok := msgs[0].(action.BrowserDidLoad)
	require.True(t, ok)
	assert.Equal(t, window, load.WindowID())
	assert.Equal(t, 2, load.TabCount)
}

func TestLoadCycleProducesToolbars(t *testing.T) {
	m, _ := newTestModel(t)

	// Route the initial load action through Update like the runtime would.
	load := collectMsgs(m.Init())[0]
	_, cmd := m.Update(load)
	for _, msg := range collectMsgs(cmd) {
		m.Update(msg)
	}

	require.Len(t, m.Navigation().Buttons, 5)
	assert.Equal(t, 2, m.Navigation().Buttons[3].Badge)
	require.Len(t, m.Address().PageButtons, 1)
	assert.Equal(t, toolbar.ButtonQRCode, m.Address().PageButtons[0].Kind)
	assert.Equal(t, []string{"toolbars-loaded"}, m.Events())
}

func TestHomeKeyDispatchesGoToHomepage(t *testing.T) {
	m, window := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 1)
	home, ok := msgs[0].(action.GoToHomepage)
	require.True(t, ok)
	assert.Equal(t, window, home.WindowID())

	m.Update(msgs[0])
	assert.Equal(t, []string{"go-to-homepage"}, m.Events())
}

func TestTabsLongPressKey(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'T'}})
	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 1)
	_, ok := msgs[0].(action.ShowTabsLongPressMenu)
	assert.True(t, ok)
}

func TestMenuTapHasNoEffect(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	assert.Empty(t, collectMsgs(cmd))
}

func TestNewTabUpdatesBadges(t *testing.T) {
	m, window := newTestModel(t)

	// Complete the load cycle first.
	load := collectMsgs(m.Init())[0]
	_, cmd := m.Update(load)
	for _, msg := range collectMsgs(cmd) {
		m.Update(msg)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 1)
	updated, ok := msgs[0].(action.BrowserActionsUpdated)
	require.True(t, ok)
	assert.Equal(t, 3, updated.Buttons[0].Badge)

	m.Update(msgs[0])
	assert.Equal(t, 3, m.Address().BrowserButtons[0].Badge)
	assert.Equal(t, 3, m.Navigation().Buttons[3].Badge)

	screen, ok := m.screens.Lookup(window)
	require.True(t, ok)
	assert.Equal(t, 3, screen.TabCount)
}

func TestScrollToggleRefreshesBorders(t *testing.T) {
	m, _ := newTestModel(t)
	load := collectMsgs(m.Init())[0]
	_, cmd := m.Update(load)
	for _, msg := range collectMsgs(cmd) {
		m.Update(msg)
	}
	assert.False(t, m.Address().BottomBorder)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.True(t, m.Address().BottomBorder)
	assert.True(t, m.Navigation().Border)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.False(t, m.Address().BottomBorder)
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewRendersToolbars(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Contains(t, m.View(), "loading")

	load := collectMsgs(m.Init())[0]
	_, cmd := m.Update(load)
	for _, msg := range collectMsgs(cmd) {
		m.Update(msg)
	}

	view := m.View()
	assert.Contains(t, view, toolbar.IconHome)
	assert.Contains(t, view, toolbar.IconTabs)
	assert.Contains(t, view, "about:blank")
	assert.Contains(t, view, "toolbars-loaded")
}
