package dismiss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 5, W: 20, H: 8}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "inside", x: 15, y: 8, want: true},
		{name: "top-left corner", x: 10, y: 5, want: true},
		{name: "right edge exclusive", x: 30, y: 8, want: false},
		{name: "bottom edge exclusive", x: 15, y: 13, want: false},
		{name: "left of rect", x: 9, y: 8, want: false},
		{name: "above rect", x: 15, y: 4, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.x, tt.y))
		})
	}
}

func TestEscapeDismissesTopLayer(t *testing.T) {
	s := NewStack()

	var dismissed []string
	s.Push(&Layer{OnDismiss: func() { dismissed = append(dismissed, "bottom") }})
	s.Push(&Layer{OnDismiss: func() { dismissed = append(dismissed, "top") }})

	require.True(t, s.HandleKey("esc"))
	assert.Equal(t, []string{"top"}, dismissed, "only the topmost layer dismisses")
}

func TestEscapePreventDefault(t *testing.T) {
	s := NewStack()

	dismissed := false
	s.Push(&Layer{
		OnEscape:  func(e *KeyEvent) { e.PreventDefault() },
		OnDismiss: func() { dismissed = true },
	})

	assert.True(t, s.HandleKey("esc"), "consumed even when prevented")
	assert.False(t, dismissed)
}

func TestEmptyStackConsumesNothing(t *testing.T) {
	s := NewStack()
	assert.False(t, s.HandleKey("esc"))
	assert.False(t, s.HandlePointer(0, 0, true))
}

func TestPointerInsidePassesThrough(t *testing.T) {
	s := NewStack()

	dismissed := false
	s.Push(&Layer{
		Modal:     true,
		Bounds:    func() Rect { return Rect{X: 10, Y: 10, W: 10, H: 5} },
		OnDismiss: func() { dismissed = true },
	})

	assert.False(t, s.HandlePointer(12, 12, true))
	assert.False(t, dismissed)
}

func TestPointerOutsideDismisses(t *testing.T) {
	tests := []struct {
		name          string
		modal         bool
		prevent       bool
		wantDismissed bool
		wantConsumed  bool
	}{
		{name: "modal outside press dismisses and swallows", modal: true, wantDismissed: true, wantConsumed: true},
		{name: "modal prevented still swallows", modal: true, prevent: true, wantDismissed: false, wantConsumed: true},
		{name: "non-modal outside press dismisses and falls through", modal: false, wantDismissed: true, wantConsumed: false},
		{name: "non-modal prevented falls through", modal: false, prevent: true, wantDismissed: false, wantConsumed: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack()
			dismissed := false
			s.Push(&Layer{
				Modal:  tt.modal,
				Bounds: func() Rect { return Rect{X: 10, Y: 10, W: 10, H: 5} },
				OnPointerDownOutside: func(e *PointerEvent) {
					if tt.prevent {
						e.PreventDefault()
					}
				},
				OnDismiss: func() { dismissed = true },
			})

			consumed := s.HandlePointer(0, 0, true)
			assert.Equal(t, tt.wantConsumed, consumed)
			assert.Equal(t, tt.wantDismissed, dismissed)
		})
	}
}

func TestPointerEventCarriesCoordinates(t *testing.T) {
	s := NewStack()

	var got *PointerEvent
	s.Push(&Layer{
		OnPointerDownOutside: func(e *PointerEvent) { got = e },
	})

	s.HandlePointer(7, 3, true)
	require.NotNil(t, got)
	assert.Equal(t, 7, got.X)
	assert.Equal(t, 3, got.Y)
}

func TestNilBoundsTreatsEveryPressAsOutside(t *testing.T) {
	s := NewStack()

	dismissed := false
	s.Push(&Layer{OnDismiss: func() { dismissed = true }})

	s.HandlePointer(0, 0, true)
	assert.True(t, dismissed)
}

func TestNonPrimaryPointerNeverDismisses(t *testing.T) {
	tests := []struct {
		name         string
		modal        bool
		wantConsumed bool
	}{
		{name: "modal swallows without dismissing", modal: true, wantConsumed: true},
		{name: "non-modal falls through without dismissing", modal: false, wantConsumed: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack()
			dismissed := false
			hookFired := false
			s.Push(&Layer{
				Modal:                tt.modal,
				Bounds:               func() Rect { return Rect{X: 10, Y: 10, W: 10, H: 5} },
				OnPointerDownOutside: func(*PointerEvent) { hookFired = true },
				OnDismiss:            func() { dismissed = true },
			})

			consumed := s.HandlePointer(0, 0, false)
			assert.Equal(t, tt.wantConsumed, consumed)
			assert.False(t, dismissed)
			assert.False(t, hookFired, "hook only fires for primary presses")
		})
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := NewStack()

	l1 := &Layer{}
	l2 := &Layer{}
	remove1 := s.Push(l1)
	s.Push(l2)

	remove1()
	remove1()

	require.Equal(t, 1, s.Len())
	assert.Equal(t, l2, s.Top())
}

func TestRemoveMiddleLayerKeepsOrder(t *testing.T) {
	s := NewStack()

	bottom := &Layer{}
	middle := &Layer{}
	top := &Layer{}
	s.Push(bottom)
	removeMiddle := s.Push(middle)
	s.Push(top)

	removeMiddle()

	require.Equal(t, 2, s.Len())
	assert.Equal(t, top, s.Top())
}
