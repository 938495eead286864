package focustrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScope(ids ...string) (*Scope, []*Target) {
	s := NewScope()
	targets := make([]*Target, len(ids))
	for i, id := range ids {
		targets[i] = s.Add(NewTarget(id, id))
	}
	return s, targets
}

func TestFocusMovesBetweenTargets(t *testing.T) {
	m := NewManager()
	_, targets := newScope("a", "b")

	m.Focus(targets[0])
	assert.True(t, targets[0].Focused())

	m.Focus(targets[1])
	assert.False(t, targets[0].Focused())
	assert.True(t, targets[1].Focused())
	assert.Equal(t, targets[1], m.Focused())
}

func TestFocusIgnoresUnfocusable(t *testing.T) {
	m := NewManager()
	_, targets := newScope("a", "b")
	targets[1].SetFocusable(false)

	m.Focus(targets[0])
	m.Focus(targets[1])

	assert.Equal(t, targets[0], m.Focused())
}

func TestActivateFocusesFirstFocusable(t *testing.T) {
	m := NewManager()
	scope, targets := newScope("a", "b", "c")
	targets[0].SetFocusable(false)

	a := m.Activate(scope, nil)
	defer a.Release(false)

	assert.True(t, m.Trapped())
	assert.Equal(t, targets[1], m.Focused())
}

func TestCycleWrapsAndSkipsUnfocusable(t *testing.T) {
	m := NewManager()
	scope, targets := newScope("a", "b", "c")
	targets[1].SetFocusable(false)

	a := m.Activate(scope, targets[0])
	defer a.Release(false)

	tests := []struct {
		name  string
		delta int
		want  *Target
	}{
		{name: "forward skips unfocusable", delta: 1, want: targets[2]},
		{name: "forward wraps to first", delta: 1, want: targets[0]},
		{name: "backward wraps to last", delta: -1, want: targets[2]},
		{name: "backward skips unfocusable", delta: -1, want: targets[0]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, m.Cycle(tt.delta))
			assert.Equal(t, tt.want, m.Focused())
		})
	}
}

func TestCycleWithoutTrap(t *testing.T) {
	m := NewManager()
	assert.False(t, m.Cycle(1))
}

func TestReleaseRestoresPreviousFocus(t *testing.T) {
	m := NewManager()
	outside := NewTarget("trigger", "trigger")
	scope, targets := newScope("close")

	m.Focus(outside)
	a := m.Activate(scope, nil)
	require.Equal(t, targets[0], m.Focused())

	a.Release(true)
	assert.Equal(t, outside, m.Focused())
	assert.True(t, outside.Focused())
	assert.False(t, m.Trapped())
}

func TestReleaseWithoutRestore(t *testing.T) {
	m := NewManager()
	outside := NewTarget("trigger", "trigger")
	scope, targets := newScope("close")

	m.Focus(outside)
	a := m.Activate(scope, nil)

	a.Release(false)
	assert.Equal(t, targets[0], m.Focused(), "focus stays where it is")
}

func TestReleaseIsIdempotent(t *testing.T) {
	m := NewManager()
	outside := NewTarget("trigger", "trigger")
	scope, _ := newScope("close")

	m.Focus(outside)
	a := m.Activate(scope, nil)

	a.Release(true)
	m.Focus(nil)
	a.Release(true)

	assert.Nil(t, m.Focused(), "second release must not restore again")
}

func TestNestedTrapsRestoreInOrder(t *testing.T) {
	m := NewManager()
	outside := NewTarget("trigger", "trigger")
	outerScope, outer := newScope("outer-close")
	innerScope, inner := newScope("inner-close")

	m.Focus(outside)
	outerAct := m.Activate(outerScope, nil)
	innerAct := m.Activate(innerScope, nil)

	require.Equal(t, inner[0], m.Focused())
	assert.Equal(t, innerScope, m.ActiveScope())

	innerAct.Release(true)
	assert.Equal(t, outer[0], m.Focused())
	assert.Equal(t, outerScope, m.ActiveScope())

	outerAct.Release(true)
	assert.Equal(t, outside, m.Focused())
	assert.False(t, m.Trapped())
}

func TestOuterReleaseDoesNotStealFocusFromInner(t *testing.T) {
	m := NewManager()
	outerScope, _ := newScope("outer-close")
	innerScope, inner := newScope("inner-close")

	outerAct := m.Activate(outerScope, nil)
	m.Activate(innerScope, nil)

	outerAct.Release(true)
	assert.Equal(t, inner[0], m.Focused())
	assert.Equal(t, innerScope, m.ActiveScope())
}

func TestActivateKeepFocus(t *testing.T) {
	m := NewManager()
	outside := NewTarget("trigger", "trigger")
	scope, _ := newScope("close")

	m.Focus(outside)
	a := m.ActivateKeepFocus(scope)
	defer a.Release(true)

	assert.True(t, m.Trapped())
	assert.Equal(t, outside, m.Focused())
}

func TestOnFocusChangeFires(t *testing.T) {
	m := NewManager()
	target := NewTarget("a", "a")

	var events []bool
	target.OnFocusChange = func(focused bool) { events = append(events, focused) }

	m.Focus(target)
	m.Focus(nil)

	assert.Equal(t, []bool{true, false}, events)
}
