// Package state holds per-window screen-state snapshots.
//
// The middleware reads screen state through a Store but never writes it;
// mutation belongs to the host's reducers. Each window's state is isolated
// behind its window identifier.
package state

import (
	"sync"

	"github.com/google/uuid"
)

// Position is where the address toolbar sits on screen.
type Position int

const (
	PositionTop Position = iota
	PositionBottom
)

// String returns the stable name of the position.
func (p Position) String() string {
	switch p {
	case PositionTop:
		return "top"
	case PositionBottom:
		return "bottom"
	}
	return "unknown"
}

// ParsePosition converts a configuration string to a Position.
// Unknown values fall back to top.
func ParsePosition(s string) Position {
	if s == "bottom" {
		return PositionBottom
	}
	return PositionTop
}

// Screen is the snapshot of one window's browsing state that toolbar
// decisions depend on.
type Screen struct {
	Position     Position
	Private      bool
	ScrollY      int
	CanGoBack    bool
	CanGoForward bool
	TabCount     int
	URL          string
}

// Store maps window identifiers to their screen state. Lookups return
// copies, so holders of a Screen never observe later writes.
type Store struct {
	mu      sync.RWMutex
	screens map[uuid.UUID]Screen
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{screens: make(map[uuid.UUID]Screen)}
}

// Set replaces the screen state for a window.
func (s *Store) Set(window uuid.UUID, screen Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screens[window] = screen
}

// Lookup returns the screen state for a window. The second return is false
// when the window has no registered state; callers treat that as "no state"
// rather than an error.
func (s *Store) Lookup(window uuid.UUID) (Screen, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	screen, ok := s.screens[window]
	return screen, ok
}

// Delete removes a window's screen state, e.g. when the window closes.
func (s *Store) Delete(window uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.screens, window)
}

// Len returns the number of windows with registered state.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.screens)
}
