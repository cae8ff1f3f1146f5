package action

import "github.com/wrenbrowser/toolbarkit/internal/toolbar"

// ToolbarsLoaded carries the initial display models for both toolbars.
type ToolbarsLoaded struct {
	Scope
	Address    toolbar.AddressModel
	Navigation toolbar.NavigationModel
}

// Kind implements Action.
func (ToolbarsLoaded) Kind() string { return "toolbars-loaded" }

func (ToolbarsLoaded) toolbarAction() {}

// BrowserActionsUpdated carries a rebuilt browser-action button list for the
// address toolbar, e.g. after the tab count changed.
type BrowserActionsUpdated struct {
	Scope
	Buttons []toolbar.Button
}

// Kind implements Action.
func (BrowserActionsUpdated) Kind() string { return "browser-actions-updated" }

func (BrowserActionsUpdated) toolbarAction() {}

// URLUpdated carries the new address-bar URL after navigation.
type URLUpdated struct {
	Scope
	URL string
}

// Kind implements Action.
func (URLUpdated) Kind() string { return "url-updated" }

func (URLUpdated) toolbarAction() {}

// GoToHomepage requests navigation to the user's homepage.
type GoToHomepage struct{ Scope }

// Kind implements Action.
func (GoToHomepage) Kind() string { return "go-to-homepage" }

func (GoToHomepage) toolbarAction() {}

// ShowQRReader requests the QR code reader UI.
type ShowQRReader struct{ Scope }

// Kind implements Action.
func (ShowQRReader) Kind() string { return "show-qr-reader" }

func (ShowQRReader) toolbarAction() {}

// NavigateBack requests history navigation one entry back.
type NavigateBack struct{ Scope }

// Kind implements Action.
func (NavigateBack) Kind() string { return "navigate-back" }

func (NavigateBack) toolbarAction() {}

// NavigateForward requests history navigation one entry forward.
type NavigateForward struct{ Scope }

// Kind implements Action.
func (NavigateForward) Kind() string { return "navigate-forward" }

func (NavigateForward) toolbarAction() {}

// ShowTabTray requests the tab tray UI.
type ShowTabTray struct{ Scope }

// Kind implements Action.
func (ShowTabTray) Kind() string { return "show-tab-tray" }

func (ShowTabTray) toolbarAction() {}

// ShowTrackingProtection requests the tracking-protection details UI.
type ShowTrackingProtection struct{ Scope }

// Kind implements Action.
func (ShowTrackingProtection) Kind() string { return "show-tracking-protection" }

func (ShowTrackingProtection) toolbarAction() {}

// ShowBackForwardList requests the combined back/forward history list.
type ShowBackForwardList struct{ Scope }

// Kind implements Action.
func (ShowBackForwardList) Kind() string { return "show-back-forward-list" }

func (ShowBackForwardList) toolbarAction() {}

// ShowTabsLongPressMenu requests the tabs button context menu.
type ShowTabsLongPressMenu struct{ Scope }

// Kind implements Action.
func (ShowTabsLongPressMenu) Kind() string { return "show-tabs-long-press-menu" }

func (ShowTabsLongPressMenu) toolbarAction() {}

var (
	_ ToolbarAction = ToolbarsLoaded{}
	_ ToolbarAction = BrowserActionsUpdated{}
	_ ToolbarAction = URLUpdated{}
	_ ToolbarAction = GoToHomepage{}
	_ ToolbarAction = ShowQRReader{}
	_ ToolbarAction = NavigateBack{}
	_ ToolbarAction = NavigateForward{}
	_ ToolbarAction = ShowTabTray{}
	_ ToolbarAction = ShowTrackingProtection{}
	_ ToolbarAction = ShowBackForwardList{}
	_ ToolbarAction = ShowTabsLongPressMenu{}
)
