package action

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/wrenbrowser/toolbarkit/internal/toolbar"
)

func TestActionKinds(t *testing.T) {
	cases := []struct {
		action Action
		kind   string
	}{
		{BrowserDidLoad{}, "browser-did-load"},
		{ButtonTapped{}, "button-tapped"},
		{TabCountChanged{}, "tab-count-changed"},
		{LocationChanged{}, "location-changed"},
		{ScrollChanged{}, "scroll-changed"},
		{ToolbarsLoaded{}, "toolbars-loaded"},
		{BrowserActionsUpdated{}, "browser-actions-updated"},
		{URLUpdated{}, "url-updated"},
		{GoToHomepage{}, "go-to-homepage"},
		{ShowQRReader{}, "show-qr-reader"},
		{NavigateBack{}, "navigate-back"},
		{NavigateForward{}, "navigate-forward"},
		{ShowTabTray{}, "show-tab-tray"},
		{ShowTrackingProtection{}, "show-tracking-protection"},
		{ShowBackForwardList{}, "show-back-forward-list"},
		{ShowTabsLongPressMenu{}, "show-tabs-long-press-menu"},
	}
	seen := make(map[string]bool)
	for _, tc := range cases {
		assert.Equal(t, tc.kind, tc.action.Kind())
		assert.False(t, seen[tc.kind], "duplicate kind %s", tc.kind)
		seen[tc.kind] = true
	}
}

func TestScopeCarriesWindowID(t *testing.T) {
	window := uuid.New()
	a := ButtonTapped{
		Scope:   ScopeFor(window),
		Button:  toolbar.ButtonHome,
		Gesture: toolbar.GestureTap,
	}
	assert.Equal(t, window, a.WindowID())

	out := GoToHomepage{Scope: a.Scope}
	assert.Equal(t, window, out.WindowID())
}

func TestZeroScopeIsNilWindow(t *testing.T) {
	assert.Equal(t, uuid.Nil, BrowserDidLoad{}.WindowID())
}
