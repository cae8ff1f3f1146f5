package toolbar

// Icon asset names. These match the host application's image catalog; the
// view layer resolves them to actual assets.
const (
	IconBack               = "chevron-left"
	IconForward            = "chevron-right"
	IconHome               = "home"
	IconTabs               = "tabs-tray"
	IconMenu               = "app-menu"
	IconQRCode             = "qr-code"
	IconTrackingProtection = "shield"
	IconShare              = "share"
	IconReload             = "arrow-clockwise"
)

// Accessibility identifier prefix shared by all toolbar buttons.
const a11yIDPrefix = "Toolbar.Button."

// icons maps each button kind to its icon asset name.
var icons = map[ButtonKind]string{
	ButtonBack:               IconBack,
	ButtonForward:            IconForward,
	ButtonHome:               IconHome,
	ButtonTabs:               IconTabs,
	ButtonMenu:               IconMenu,
	ButtonQRCode:             IconQRCode,
	ButtonTrackingProtection: IconTrackingProtection,
	ButtonShare:              IconShare,
	ButtonReload:             IconReload,
}

// labels maps each button kind to its accessibility label.
var labels = map[ButtonKind]string{
	ButtonBack:               "Back",
	ButtonForward:            "Forward",
	ButtonHome:               "Home",
	ButtonTabs:               "Show Tabs",
	ButtonMenu:               "Menu",
	ButtonQRCode:             "Scan QR Code",
	ButtonTrackingProtection: "Tracking Protection",
	ButtonShare:              "Share",
	ButtonReload:             "Reload",
}

// IconFor returns the icon asset name for a button kind.
func IconFor(kind ButtonKind) string {
	return icons[kind]
}

// LabelFor returns the accessibility label for a button kind.
func LabelFor(kind ButtonKind) string {
	return labels[kind]
}

// A11yIDFor returns the accessibility identifier for a button kind.
func A11yIDFor(kind ButtonKind) string {
	return a11yIDPrefix + kind.String()
}
