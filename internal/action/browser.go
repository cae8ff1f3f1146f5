package action

import "github.com/wrenbrowser/toolbarkit/internal/toolbar"

// BrowserDidLoad is sent once when a window's browser screen finishes
// loading. TabCount is the number of open tabs at that moment.
type BrowserDidLoad struct {
	Scope
	TabCount int
}

// Kind implements Action.
func (BrowserDidLoad) Kind() string { return "browser-did-load" }

func (BrowserDidLoad) browserAction() {}

// ButtonTapped is sent when the user activates a toolbar button.
type ButtonTapped struct {
	Scope
	Button  toolbar.ButtonKind
	Gesture toolbar.Gesture
}

// Kind implements Action.
func (ButtonTapped) Kind() string { return "button-tapped" }

func (ButtonTapped) browserAction() {}

// TabCountChanged is sent when the number of open tabs changes.
type TabCountChanged struct {
	Scope
	TabCount int
}

// Kind implements Action.
func (TabCountChanged) Kind() string { return "tab-count-changed" }

func (TabCountChanged) browserAction() {}

// LocationChanged is sent when the window navigates to a new URL.
type LocationChanged struct {
	Scope
	URL string
}

// Kind implements Action.
func (LocationChanged) Kind() string { return "location-changed" }

func (LocationChanged) browserAction() {}

// ScrollChanged is sent when the page scroll offset changes. Border
// visibility is recomputed on demand, so this carries no payload beyond the
// new offset.
type ScrollChanged struct {
	Scope
	OffsetY int
}

// Kind implements Action.
func (ScrollChanged) Kind() string { return "scroll-changed" }

func (ScrollChanged) browserAction() {}

var (
	_ BrowserAction = BrowserDidLoad{}
	_ BrowserAction = ButtonTapped{}
	_ BrowserAction = TabCountChanged{}
	_ BrowserAction = LocationChanged{}
	_ BrowserAction = ScrollChanged{}
)
