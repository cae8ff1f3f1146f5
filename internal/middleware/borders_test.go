package middleware

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/wrenbrowser/toolbarkit/internal/state"
)

func TestDefaultAddressBorders(t *testing.T) {
	policy := DefaultBorderPolicy{}

	top, bottom := policy.AddressBorders(state.PositionTop, false, 0)
	assert.False(t, top)
	assert.False(t, bottom)

	top, bottom = policy.AddressBorders(state.PositionTop, false, 80)
	assert.False(t, top)
	assert.True(t, bottom)

	top, bottom = policy.AddressBorders(state.PositionBottom, false, 0)
	assert.True(t, top)
	assert.False(t, bottom)
}

func TestDefaultNavigationBorder(t *testing.T) {
	policy := DefaultBorderPolicy{}
	assert.False(t, policy.NavigationBorder(state.PositionTop, false, 0))
	assert.True(t, policy.NavigationBorder(state.PositionTop, false, 50))
}

func TestPrivacyDoesNotChangeBorders(t *testing.T) {
	policy := DefaultBorderPolicy{}
	for _, scroll := range []int{0, 120} {
		top1, bottom1 := policy.AddressBorders(state.PositionTop, false, scroll)
		top2, bottom2 := policy.AddressBorders(state.PositionTop, true, scroll)
		assert.Equal(t, top1, top2)
		assert.Equal(t, bottom1, bottom2)
		assert.Equal(t,
			policy.NavigationBorder(state.PositionBottom, false, scroll),
			policy.NavigationBorder(state.PositionBottom, true, scroll))
	}
}

func TestRouterBordersWithoutScreenState(t *testing.T) {
	router := NewRouter(state.NewStore(), nil, nil)
	window := uuid.New()

	top, bottom := router.AddressBorders(window)
	assert.False(t, top)
	assert.False(t, bottom)
	assert.False(t, router.NavigationBorder(window))
}

func TestRouterBordersWithScreenState(t *testing.T) {
	store := state.NewStore()
	router := NewRouter(store, nil, nil)
	window := uuid.New()
	store.Set(window, state.Screen{Position: state.PositionTop, ScrollY: 10})

	top, bottom := router.AddressBorders(window)
	assert.False(t, top)
	assert.True(t, bottom)
	assert.True(t, router.NavigationBorder(window))
}
