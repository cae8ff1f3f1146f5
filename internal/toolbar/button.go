// Package toolbar defines the display models for the browser's address and
// navigation toolbars: button descriptors, the two toolbar models, and the
// pure builders that produce them.
package toolbar

// ButtonKind identifies a toolbar button.
type ButtonKind int

const (
	ButtonBack ButtonKind = iota
	ButtonForward
	ButtonHome
	ButtonTabs
	ButtonMenu
	ButtonQRCode
	ButtonTrackingProtection
	ButtonShare
	ButtonReload
)

// String returns the stable name of the button kind, used in logs and
// accessibility identifiers.
func (k ButtonKind) String() string {
	switch k {
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	case ButtonHome:
		return "home"
	case ButtonTabs:
		return "tabs"
	case ButtonMenu:
		return "menu"
	case ButtonQRCode:
		return "qr-code"
	case ButtonTrackingProtection:
		return "tracking-protection"
	case ButtonShare:
		return "share"
	case ButtonReload:
		return "reload"
	}
	return "unknown"
}

// Gesture identifies how a toolbar button was activated.
type Gesture int

const (
	GestureTap Gesture = iota
	GestureLongPress
)

// String returns the stable name of the gesture.
func (g Gesture) String() string {
	switch g {
	case GestureTap:
		return "tap"
	case GestureLongPress:
		return "long-press"
	}
	return "unknown"
}

// Button is the immutable display descriptor for one toolbar button.
// Descriptors are rebuilt wholesale on each relevant state change, never
// patched in place.
type Button struct {
	Kind      ButtonKind `json:"kind"`
	Icon      string     `json:"icon"`
	Enabled   bool       `json:"enabled"`
	Badge     int        `json:"badge,omitempty"`
	HasBadge  bool       `json:"hasBadge,omitempty"`
	A11yLabel string     `json:"a11yLabel"`
	A11yID    string     `json:"a11yId"`
}
