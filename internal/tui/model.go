// Package tui implements the toolbar preview: a bubbletea program playing
// the host role the middleware expects. It owns one window's screen state,
// turns key presses into browser actions, feeds them through the router,
// and reduces the dispatched toolbar actions into the rendered models.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/wrenbrowser/toolbarkit/internal/action"
	"github.com/wrenbrowser/toolbarkit/internal/middleware"
	"github.com/wrenbrowser/toolbarkit/internal/state"
	"github.com/wrenbrowser/toolbarkit/internal/toolbar"
)

// maxEvents bounds the dispatched-action log shown in the preview.
const maxEvents = 8

// previewScrollY is the scroll offset simulated by the scroll toggle.
const previewScrollY = 120

// Model is the preview's bubbletea model.
type Model struct {
	window  uuid.UUID
	screens *state.Store
	router  *middleware.Router
	keys    keyMap

	address    toolbar.AddressModel
	navigation toolbar.NavigationModel
	loaded     bool
	events     []string
	width      int
}

// NewModel creates a preview model for one window. The window must already
// have screen state registered in screens.
func NewModel(screens *state.Store, router *middleware.Router, window uuid.UUID) *Model {
	return &Model{
		window:  window,
		screens: screens,
		router:  router,
		keys:    defaultKeyMap(),
	}
}

// Init dispatches the initial browser-did-load action.
func (m *Model) Init() tea.Cmd {
	screen, _ := m.screens.Lookup(m.window)
	a := action.BrowserDidLoad{Scope: action.ScopeFor(m.window), TabCount: screen.TabCount}
	return func() tea.Msg { return a }
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case action.ToolbarAction:
		m.reduce(msg)
		return m, nil
	}
	return m, nil
}

// handleKey maps a key press to a browser action and routes it.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := action.ScopeFor(m.window)
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m, m.route(action.ButtonTapped{Scope: scope, Button: toolbar.ButtonBack, Gesture: toolbar.GestureTap})
	case key.Matches(msg, m.keys.Forward):
		return m, m.route(action.ButtonTapped{Scope: scope, Button: toolbar.ButtonForward, Gesture: toolbar.GestureTap})
	case key.Matches(msg, m.keys.Home):
		return m, m.route(action.ButtonTapped{Scope: scope, Button: toolbar.ButtonHome, Gesture: toolbar.GestureTap})
	case key.Matches(msg, m.keys.Tabs):
		return m, m.route(action.ButtonTapped{Scope: scope, Button: toolbar.ButtonTabs, Gesture: toolbar.GestureTap})
	case key.Matches(msg, m.keys.Menu):
		return m, m.route(action.ButtonTapped{Scope: scope, Button: toolbar.ButtonMenu, Gesture: toolbar.GestureTap})
	case key.Matches(msg, m.keys.QRCode):
		return m, m.route(action.ButtonTapped{Scope: scope, Button: toolbar.ButtonQRCode, Gesture: toolbar.GestureTap})
	case key.Matches(msg, m.keys.Tracking):
		return m, m.route(action.ButtonTapped{Scope: scope, Button: toolbar.ButtonTrackingProtection, Gesture: toolbar.GestureTap})
	case key.Matches(msg, m.keys.BackLong):
		return m, m.route(action.ButtonTapped{Scope: scope, Button: toolbar.ButtonBack, Gesture: toolbar.GestureLongPress})
	case key.Matches(msg, m.keys.ForwardLong):
		return m, m.route(action.ButtonTapped{Scope: scope, Button: toolbar.ButtonForward, Gesture: toolbar.GestureLongPress})
	case key.Matches(msg, m.keys.TabsLong):
		return m, m.route(action.ButtonTapped{Scope: scope, Button: toolbar.ButtonTabs, Gesture: toolbar.GestureLongPress})
	case key.Matches(msg, m.keys.NewTab):
		return m, m.changeTabCount(1)
	case key.Matches(msg, m.keys.CloseTab):
		return m, m.changeTabCount(-1)
	case key.Matches(msg, m.keys.Scroll):
		return m, m.toggleScroll()
	case key.Matches(msg, m.keys.Position):
		return m, m.togglePosition()
	}
	return m, nil
}

// route runs the router over a browser action and converts each dispatched
// toolbar action into a bubbletea message.
func (m *Model) route(a action.BrowserAction) tea.Cmd {
	var cmds []tea.Cmd
	m.router.Handle(a, func(out action.ToolbarAction) {
		cmds = append(cmds, func() tea.Msg { return out })
	})
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// reduce applies a dispatched toolbar action to the preview's view state.
// This is the reducer role the library leaves to hosts.
func (m *Model) reduce(a action.ToolbarAction) {
	m.pushEvent(a.Kind())
	switch a := a.(type) {
	case action.ToolbarsLoaded:
		m.address = a.Address
		m.navigation = a.Navigation
		m.loaded = true
	case action.BrowserActionsUpdated:
		m.address.BrowserButtons = a.Buttons
	case action.URLUpdated:
		m.address.URL = a.URL
	}
}

// pushEvent records a dispatched action kind, newest first.
func (m *Model) pushEvent(kind string) {
	m.events = append([]string{kind}, m.events...)
	if len(m.events) > maxEvents {
		m.events = m.events[:maxEvents]
	}
}

// changeTabCount mutates the simulated screen state and routes the
// tab-count-changed action.
func (m *Model) changeTabCount(delta int) tea.Cmd {
	screen, _ := m.screens.Lookup(m.window)
	screen.TabCount += delta
	if screen.TabCount < 1 {
		screen.TabCount = 1
	}
	m.screens.Set(m.window, screen)
	// The navigation toolbar's tabs badge is rebuilt locally; the address
	// toolbar list arrives via the routed dispatch.
	m.navigation.Buttons = toolbar.NavigationButtons(screen.TabCount)
	return m.route(action.TabCountChanged{Scope: action.ScopeFor(m.window), TabCount: screen.TabCount})
}

// toggleScroll flips the simulated scroll offset and refreshes borders.
func (m *Model) toggleScroll() tea.Cmd {
	screen, _ := m.screens.Lookup(m.window)
	if screen.ScrollY == 0 {
		screen.ScrollY = previewScrollY
	} else {
		screen.ScrollY = 0
	}
	m.screens.Set(m.window, screen)
	cmd := m.route(action.ScrollChanged{Scope: action.ScopeFor(m.window), OffsetY: screen.ScrollY})
	m.refreshBorders()
	return cmd
}

// togglePosition moves the address toolbar between top and bottom.
func (m *Model) togglePosition() tea.Cmd {
	screen, _ := m.screens.Lookup(m.window)
	if screen.Position == state.PositionTop {
		screen.Position = state.PositionBottom
	} else {
		screen.Position = state.PositionTop
	}
	m.screens.Set(m.window, screen)
	m.refreshBorders()
	return nil
}

// refreshBorders re-pulls border visibility from the router.
func (m *Model) refreshBorders() {
	m.address.TopBorder, m.address.BottomBorder = m.router.AddressBorders(m.window)
	m.navigation.Border = m.router.NavigationBorder(m.window)
}

// Events returns the dispatched-action log, newest first.
func (m *Model) Events() []string {
	return m.events
}

// Address returns the current address toolbar model.
func (m *Model) Address() toolbar.AddressModel {
	return m.address
}

// Navigation returns the current navigation toolbar model.
func (m *Model) Navigation() toolbar.NavigationModel {
	return m.navigation
}
