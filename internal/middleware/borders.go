package middleware

import "github.com/wrenbrowser/toolbarkit/internal/state"

// BorderPolicy decides toolbar border visibility from the window's toolbar
// position, privacy mode, and scroll offset. The host may substitute its own
// implementation.
type BorderPolicy interface {
	// AddressBorders returns whether the address toolbar displays its top
	// and bottom borders.
	AddressBorders(pos state.Position, private bool, scrollY int) (top, bottom bool)
	// NavigationBorder returns whether the navigation toolbar displays its
	// border.
	NavigationBorder(pos state.Position, private bool, scrollY int) bool
}

// DefaultBorderPolicy separates toolbars from page content once it can
// scroll beneath them. Privacy mode affects theming only, never border
// layout, so it is accepted and ignored here.
type DefaultBorderPolicy struct{}

// AddressBorders implements BorderPolicy: an address toolbar at the top
// shows its bottom border once the page is scrolled; at the bottom it always
// shows its top border.
func (DefaultBorderPolicy) AddressBorders(pos state.Position, private bool, scrollY int) (bool, bool) {
	switch pos {
	case state.PositionTop:
		return false, scrollY > 0
	case state.PositionBottom:
		return true, false
	}
	return false, false
}

// NavigationBorder implements BorderPolicy: the navigation toolbar shows its
// top border once the page is scrolled away from the origin.
func (DefaultBorderPolicy) NavigationBorder(pos state.Position, private bool, scrollY int) bool {
	return scrollY > 0
}

var _ BorderPolicy = DefaultBorderPolicy{}
