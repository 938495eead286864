package portal

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuikit/veil/pkg/dismiss"
	"github.com/tuikit/veil/pkg/focustrap"
)

func buildNothing(int, int) string { return "" }

func TestHostsDoNotShareState(t *testing.T) {
	a := NewHost()
	b := NewHost()

	a.Guard().Acquire()
	a.Insert(&Entry{Build: buildNothing})

	assert.False(t, b.BackgroundLocked())
	assert.False(t, b.HasEntries())
	assert.True(t, a.BackgroundLocked())
	assert.True(t, a.HasEntries())
}

func TestEntryRemoveDisposesOnce(t *testing.T) {
	h := NewHost()

	disposed := 0
	e := h.Insert(&Entry{Build: buildNothing, OnDispose: func() { disposed++ }})

	e.Remove()
	e.Remove()

	assert.Equal(t, 1, disposed)
	assert.False(t, h.HasEntries())
}

func TestResetDisposesEveryEntryTopDown(t *testing.T) {
	h := NewHost()

	var order []int
	h.Insert(&Entry{Build: buildNothing, OnDispose: func() { order = append(order, 1) }})
	h.Insert(&Entry{Build: buildNothing, OnDispose: func() { order = append(order, 2) }})

	h.Reset()

	assert.Equal(t, []int{2, 1}, order)
	assert.False(t, h.HasEntries())
}

func TestBoundsCentersContent(t *testing.T) {
	h := NewHost()
	h.SetSize(80, 24)

	r := h.Bounds(40, 10)
	assert.Equal(t, dismiss.Rect{X: 20, Y: 7, W: 40, H: 10}, r)
}

func TestBoundsClampsToOrigin(t *testing.T) {
	h := NewHost()
	h.SetSize(20, 5)

	r := h.Bounds(40, 10)
	assert.Equal(t, 0, r.X)
	assert.Equal(t, 0, r.Y)
}

func TestRouteEscapeHitsDismissStack(t *testing.T) {
	h := NewHost()

	dismissed := false
	h.Dismiss().Push(&dismiss.Layer{OnDismiss: func() { dismissed = true }})

	consumed := h.Route(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.True(t, consumed)
	assert.True(t, dismissed)
}

func TestRouteTabCyclesTrap(t *testing.T) {
	h := NewHost()

	scope := focustrap.NewScope()
	first := scope.Add(focustrap.NewTarget("a", "a"))
	second := scope.Add(focustrap.NewTarget("b", "b"))
	h.Focus().Activate(scope, nil)

	consumed := h.Route(tea.KeyPressMsg{Code: tea.KeyTab})
	require.True(t, consumed)
	assert.Equal(t, second, h.Focus().Focused())

	consumed = h.Route(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	require.True(t, consumed)
	assert.Equal(t, first, h.Focus().Focused())
}

func TestRouteKeysFallThroughWithoutSurface(t *testing.T) {
	h := NewHost()

	assert.False(t, h.Route(tea.KeyPressMsg{Code: tea.KeyTab}))
	assert.False(t, h.Route(tea.KeyPressMsg{Code: 'a', Text: "a"}))
}

func TestRouteKeysConsumedWhileSurfaceUp(t *testing.T) {
	h := NewHost()
	h.Insert(&Entry{Build: buildNothing})

	assert.True(t, h.Route(tea.KeyPressMsg{Code: 'a', Text: "a"}))
}

func TestRouteMouseHitsDismissStack(t *testing.T) {
	h := NewHost()
	h.SetSize(80, 24)

	dismissed := false
	h.Dismiss().Push(&dismiss.Layer{
		Modal:     true,
		Bounds:    func() dismiss.Rect { return dismiss.Rect{X: 30, Y: 10, W: 20, H: 5} },
		OnDismiss: func() { dismissed = true },
	})

	consumed := h.Route(tea.MouseClickMsg{X: 1, Y: 1, Button: tea.MouseLeft})
	assert.True(t, consumed)
	assert.True(t, dismissed)
}

func TestRouteOnlyPrimaryButtonDismisses(t *testing.T) {
	h := NewHost()
	h.SetSize(80, 24)

	dismissed := false
	h.Dismiss().Push(&dismiss.Layer{
		Modal:     true,
		Bounds:    func() dismiss.Rect { return dismiss.Rect{X: 30, Y: 10, W: 20, H: 5} },
		OnDismiss: func() { dismissed = true },
	})

	for _, button := range []tea.MouseButton{tea.MouseRight, tea.MouseMiddle} {
		consumed := h.Route(tea.MouseClickMsg{X: 1, Y: 1, Button: button})
		assert.True(t, consumed, "modal layer still swallows the press")
		assert.False(t, dismissed)
	}
}

func TestRenderWithoutEntriesPassesBackgroundThrough(t *testing.T) {
	h := NewHost()
	h.SetSize(10, 3)

	assert.Equal(t, "background", h.Render("background"))
}
