package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap maps preview keys to toolbar interactions.
type keyMap struct {
	Back     key.Binding
	Forward  key.Binding
	Home     key.Binding
	Tabs     key.Binding
	Menu     key.Binding
	QRCode   key.Binding
	Tracking key.Binding

	BackLong    key.Binding
	ForwardLong key.Binding
	TabsLong    key.Binding

	NewTab   key.Binding
	CloseTab key.Binding
	Scroll   key.Binding
	Position key.Binding

	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Back:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "tap back")),
		Forward:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "tap forward")),
		Home:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "tap home")),
		Tabs:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tap tabs")),
		Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "tap menu")),
		QRCode:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "tap qr code")),
		Tracking: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "tap shield")),

		BackLong:    key.NewBinding(key.WithKeys("B"), key.WithHelp("B", "long-press back")),
		ForwardLong: key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "long-press forward")),
		TabsLong:    key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "long-press tabs")),

		NewTab:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "open tab")),
		CloseTab: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "close tab")),
		Scroll:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle scroll")),
		Position: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "toggle position")),

		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}
