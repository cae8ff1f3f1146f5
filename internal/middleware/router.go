// Package middleware translates browser actions into toolbar state
// dispatches.
//
// The Router is the middleware of the host's store pipeline: given an
// incoming BrowserAction it emits zero or more ToolbarActions through an
// injected Dispatcher. It never mutates state; mutation belongs to the
// host's reducers.
package middleware

import (
	"github.com/google/uuid"

	"github.com/wrenbrowser/toolbarkit/internal/action"
	"github.com/wrenbrowser/toolbarkit/internal/logging"
	"github.com/wrenbrowser/toolbarkit/internal/state"
	"github.com/wrenbrowser/toolbarkit/internal/toolbar"
)

// Dispatcher receives the actions the router emits. Injected per call so the
// router holds no ambient dispatch sink.
type Dispatcher func(action.ToolbarAction)

// Router routes browser actions for all windows. Safe for use from a single
// store pipeline; actions are handled to completion, one at a time.
type Router struct {
	screens *state.Store
	policy  BorderPolicy
	log     logging.Logger
}

// NewRouter creates a Router reading screen state from screens. A nil policy
// selects DefaultBorderPolicy; a nil logger selects the global logger.
func NewRouter(screens *state.Store, policy BorderPolicy, log logging.Logger) *Router {
	if policy == nil {
		policy = DefaultBorderPolicy{}
	}
	if log == nil {
		log = logging.GetGlobal()
	}
	return &Router{screens: screens, policy: policy, log: log}
}

// Handle routes one browser action. Every dispatched action carries the
// incoming action's window scope unchanged.
func (r *Router) Handle(a action.BrowserAction, dispatch Dispatcher) {
	r.log.Debug("routing browser action", "kind", a.Kind(), "window", a.WindowID())
	switch a := a.(type) {
	case action.BrowserDidLoad:
		r.handleBrowserDidLoad(a, dispatch)
	case action.ButtonTapped:
		r.handleButtonTapped(a, dispatch)
	case action.TabCountChanged:
		dispatch(action.BrowserActionsUpdated{
			Scope:   a.Scope,
			Buttons: toolbar.AddressBrowserButtons(a.TabCount),
		})
	case action.LocationChanged:
		dispatch(action.URLUpdated{Scope: a.Scope, URL: a.URL})
	case action.ScrollChanged:
		// Border visibility is recomputed on demand via AddressBorders and
		// NavigationBorder; nothing to dispatch.
	}
}

// handleBrowserDidLoad builds both toolbar models and dispatches them.
func (r *Router) handleBrowserDidLoad(a action.BrowserDidLoad, dispatch Dispatcher) {
	top, bottom := r.AddressBorders(a.WindowID())
	addr := toolbar.AddressModel{
		PageButtons:    toolbar.AddressPageButtons(),
		BrowserButtons: toolbar.AddressBrowserButtons(a.TabCount),
		TopBorder:      top,
		BottomBorder:   bottom,
	}
	if screen, ok := r.screens.Lookup(a.WindowID()); ok {
		addr.URL = screen.URL
	}
	nav := toolbar.NavigationModel{
		Buttons: toolbar.NavigationButtons(a.TabCount),
		Border:  r.NavigationBorder(a.WindowID()),
	}
	dispatch(action.ToolbarsLoaded{Scope: a.Scope, Address: addr, Navigation: nav})
}

// handleButtonTapped maps a button activation to its effect. Recognized
// buttons with no behavior for the gesture dispatch nothing; that is logged
// at debug level so missing cases stay observable.
func (r *Router) handleButtonTapped(a action.ButtonTapped, dispatch Dispatcher) {
	switch a.Gesture {
	case toolbar.GestureTap:
		switch a.Button {
		case toolbar.ButtonHome:
			dispatch(action.GoToHomepage{Scope: a.Scope})
		case toolbar.ButtonQRCode:
			dispatch(action.ShowQRReader{Scope: a.Scope})
		case toolbar.ButtonBack:
			dispatch(action.NavigateBack{Scope: a.Scope})
		case toolbar.ButtonForward:
			dispatch(action.NavigateForward{Scope: a.Scope})
		case toolbar.ButtonTabs:
			dispatch(action.ShowTabTray{Scope: a.Scope})
		case toolbar.ButtonTrackingProtection:
			dispatch(action.ShowTrackingProtection{Scope: a.Scope})
		default:
			r.log.Debug("no tap effect for button", "button", a.Button.String(), "window", a.WindowID())
		}
	case toolbar.GestureLongPress:
		switch a.Button {
		case toolbar.ButtonBack, toolbar.ButtonForward:
			dispatch(action.ShowBackForwardList{Scope: a.Scope})
		case toolbar.ButtonTabs:
			dispatch(action.ShowTabsLongPressMenu{Scope: a.Scope})
		default:
			r.log.Debug("no long-press effect for button", "button", a.Button.String(), "window", a.WindowID())
		}
	}
}

// AddressBorders returns border visibility for the window's address toolbar.
// A window with no registered screen state gets no borders.
func (r *Router) AddressBorders(window uuid.UUID) (top, bottom bool) {
	screen, ok := r.screens.Lookup(window)
	if !ok {
		return false, false
	}
	return r.policy.AddressBorders(screen.Position, screen.Private, screen.ScrollY)
}

// NavigationBorder returns border visibility for the window's navigation
// toolbar. A window with no registered screen state gets no border.
func (r *Router) NavigationBorder(window uuid.UUID) bool {
	screen, ok := r.screens.Lookup(window)
	if !ok {
		return false
	}
	return r.policy.NavigationBorder(screen.Position, screen.Private, screen.ScrollY)
}
