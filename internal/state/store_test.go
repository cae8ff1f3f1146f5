package state

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLookupMissingWindow(t *testing.T) {
	store := NewStore()
	screen, ok := store.Lookup(uuid.New())
	assert.False(t, ok)
	assert.Equal(t, Screen{}, screen)
}

func TestStoreSetLookupDelete(t *testing.T) {
	store := NewStore()
	window := uuid.New()

	store.Set(window, Screen{Position: PositionBottom, TabCount: 3, URL: "https://example.com"})
	screen, ok := store.Lookup(window)
	require.True(t, ok)
	assert.Equal(t, PositionBottom, screen.Position)
	assert.Equal(t, 3, screen.TabCount)
	assert.Equal(t, "https://example.com", screen.URL)
	assert.Equal(t, 1, store.Len())

	store.Delete(window)
	_, ok = store.Lookup(window)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestStoreIsolatesWindows(t *testing.T) {
	store := NewStore()
	first := uuid.New()
	second := uuid.New()

	store.Set(first, Screen{TabCount: 1})
	store.Set(second, Screen{TabCount: 9, Private: true})

	screen, ok := store.Lookup(first)
	require.True(t, ok)
	assert.Equal(t, 1, screen.TabCount)
	assert.False(t, screen.Private)
}

func TestStoreLookupReturnsCopy(t *testing.T) {
	store := NewStore()
	window := uuid.New()
	store.Set(window, Screen{TabCount: 2})

	screen, _ := store.Lookup(window)
	screen.TabCount = 42

	fresh, _ := store.Lookup(window)
	assert.Equal(t, 2, fresh.TabCount)
}

func TestParsePosition(t *testing.T) {
	assert.Equal(t, PositionTop, ParsePosition("top"))
	assert.Equal(t, PositionBottom, ParsePosition("bottom"))
	assert.Equal(t, PositionTop, ParsePosition("sideways"))
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "top", PositionTop.String())
	assert.Equal(t, "bottom", PositionBottom.String())
	assert.Equal(t, "unknown", Position(7).String())
}
