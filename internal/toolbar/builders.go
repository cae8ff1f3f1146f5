package toolbar

// newButton builds a descriptor from the catalogs.
func newButton(kind ButtonKind, enabled bool) Button {
	return Button{
		Kind:      kind,
		Icon:      IconFor(kind),
		Enabled:   enabled,
		A11yLabel: LabelFor(kind),
		A11yID:    A11yIDFor(kind),
	}
}

// TabsButton builds the tabs-tray button with the current tab count as badge.
// It is the only descriptor that depends on browsing state, and the only one
// rebuilt on its own when the tab count changes.
func TabsButton(tabCount int) Button {
	b := newButton(ButtonTabs, true)
	b.Badge = tabCount
	b.HasBadge = true
	return b
}

// NavigationButtons builds the fixed navigation toolbar button list:
// back and forward start disabled, home, tabs and menu start enabled.
func NavigationButtons(tabCount int) []Button {
	return []Button{
		newButton(ButtonBack, false),
		newButton(ButtonForward, false),
		newButton(ButtonHome, true),
		TabsButton(tabCount),
		newButton(ButtonMenu, true),
	}
}

// AddressPageButtons builds the page-action list for the address toolbar.
func AddressPageButtons() []Button {
	return []Button{
		newButton(ButtonQRCode, true),
	}
}

// AddressBrowserButtons builds the browser-action list for the address
// toolbar.
func AddressBrowserButtons(tabCount int) []Button {
	return []Button{
		TabsButton(tabCount),
		newButton(ButtonMenu, true),
	}
}
