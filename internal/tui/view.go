package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wrenbrowser/toolbarkit/internal/state"
	"github.com/wrenbrowser/toolbarkit/internal/toolbar"
)

const defaultPreviewWidth = 72

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	buttonStyle   = lipgloss.NewStyle().Padding(0, 1)
	disabledStyle = buttonStyle.Foreground(lipgloss.Color("240"))
	badgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	urlStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true)
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	eventStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the two toolbars, the dispatched-action log, and key help.
func (m *Model) View() string {
	if !m.loaded {
		return "loading toolbars...\n"
	}
	width := m.width
	if width <= 0 {
		width = defaultPreviewWidth
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("wren toolbar preview"))
	b.WriteString("\n\n")

	screen, _ := m.screens.Lookup(m.window)
	address := m.renderAddressBar(width)
	navigation := m.renderNavigationBar(width)

	if screen.Position == state.PositionBottom {
		b.WriteString(m.renderPage(width))
		b.WriteString("\n")
		b.WriteString(address)
	} else {
		b.WriteString(address)
		b.WriteString("\n")
		b.WriteString(m.renderPage(width))
	}
	b.WriteString("\n")
	b.WriteString(navigation)
	b.WriteString("\n\n")

	b.WriteString(eventStyle.Render("dispatched: " + strings.Join(m.events, " ← ")))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

// renderAddressBar renders the address toolbar with its borders.
func (m *Model) renderAddressBar(width int) string {
	var parts []string
	for _, btn := range m.address.NavigationButtons {
		parts = append(parts, renderButton(btn))
	}
	url := m.address.URL
	if url == "" {
		url = "about:blank"
	}
	parts = append(parts, urlStyle.Render(url))
	for _, btn := range m.address.PageButtons {
		parts = append(parts, renderButton(btn))
	}
	for _, btn := range m.address.BrowserButtons {
		parts = append(parts, renderButton(btn))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, parts...)

	var b strings.Builder
	if m.address.TopBorder {
		b.WriteString(borderLine(width) + "\n")
	}
	b.WriteString(row + "\n")
	if m.address.BottomBorder {
		b.WriteString(borderLine(width) + "\n")
	}
	return b.String()
}

// renderNavigationBar renders the bottom navigation toolbar.
func (m *Model) renderNavigationBar(width int) string {
	var parts []string
	for _, btn := range m.navigation.Buttons {
		parts = append(parts, renderButton(btn))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, parts...)

	var b strings.Builder
	if m.navigation.Border {
		b.WriteString(borderLine(width) + "\n")
	}
	b.WriteString(row + "\n")
	return b.String()
}

// renderPage renders a stand-in page area reflecting the scroll state.
func (m *Model) renderPage(width int) string {
	screen, _ := m.screens.Lookup(m.window)
	label := "page (top)"
	if screen.ScrollY > 0 {
		label = fmt.Sprintf("page (scrolled %dpx)", screen.ScrollY)
	}
	if screen.Private {
		label += " · private"
	}
	return eventStyle.Render("  " + label + "\n")
}

// renderButton renders one descriptor: its icon name, dimmed when disabled,
// with the badge count when present.
func renderButton(btn toolbar.Button) string {
	label := "[" + btn.Icon + "]"
	if btn.HasBadge {
		label = fmt.Sprintf("[%s %s]", btn.Icon, badgeStyle.Render(fmt.Sprintf("%d", btn.Badge)))
	}
	if !btn.Enabled {
		return disabledStyle.Render(label)
	}
	return buttonStyle.Render(label)
}

// borderLine renders a horizontal toolbar border.
func borderLine(width int) string {
	return borderStyle.Render(strings.Repeat("─", width))
}

// helpLine renders the key bindings footer.
func (m *Model) helpLine() string {
	pairs := []string{
		"b/f/h/t/m taps", "r qr", "p shield",
		"B/F/T long-press", "+/- tabs", "s scroll", "o position", "q quit",
	}
	return strings.Join(pairs, " · ")
}
