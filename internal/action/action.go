// Package action defines the closed vocabulary of actions exchanged between
// a browser host and the toolbar middleware.
//
// Actions come in two sealed categories: BrowserAction (events flowing from
// the host into the middleware) and ToolbarAction (state-change requests the
// middleware emits for the host's reducers). Both interfaces carry an
// unexported marker method, so the set of actions is closed at compile time
// and routing is an exhaustive type switch rather than a stringly-typed
// lookup with a silent fallback.
package action

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Action is a discrete, tagged event scoped to one browser window.
// Kind returns a stable identifier for logging and debugging.
type Action interface {
	Kind() string
	WindowID() uuid.UUID
}

// BrowserAction is an event coming from the browser host: a lifecycle hook
// or user input. Consumed by the middleware router.
type BrowserAction interface {
	Action
	browserAction()
}

// ToolbarAction is a state-change request emitted by the middleware,
// consumed by the host's reducers and view layer.
type ToolbarAction interface {
	Action
	toolbarAction()
}

// Scope carries the originating window identifier. Every action embeds it,
// so multi-window state stays isolated: the middleware reads state only for
// the scoped window and stamps the same scope on everything it dispatches.
type Scope struct {
	Window uuid.UUID
}

// WindowID returns the originating window identifier.
func (s Scope) WindowID() uuid.UUID {
	return s.Window
}

// ScopeFor returns a Scope for the given window.
func ScopeFor(window uuid.UUID) Scope {
	return Scope{Window: window}
}

// Actions double as bubbletea messages in hosts built on it.
var (
	_ tea.Msg = BrowserDidLoad{}
	_ tea.Msg = ToolbarsLoaded{}
)
