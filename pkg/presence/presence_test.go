package presence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImmediateMountAndUnmount(t *testing.T) {
	p := New()

	require.Equal(t, Unmounted, p.State())
	require.False(t, p.Present())

	tr, cmd := p.SetPresent(true)
	assert.Equal(t, TransitionMount, tr)
	assert.Nil(t, cmd)
	assert.Equal(t, Mounted, p.State())

	tr, cmd = p.SetPresent(false)
	assert.Equal(t, TransitionUnmount, tr)
	assert.Nil(t, cmd)
	assert.Equal(t, Unmounted, p.State())
}

func TestSetPresentIsIdempotent(t *testing.T) {
	p := New()

	tr, _ := p.SetPresent(false)
	assert.Equal(t, TransitionNone, tr)

	p.SetPresent(true)
	tr, _ = p.SetPresent(true)
	assert.Equal(t, TransitionNone, tr)
	assert.Equal(t, Mounted, p.State())
}

func TestExitTransitionDefersUnmount(t *testing.T) {
	p := New(WithExitDuration(50 * time.Millisecond))

	p.SetPresent(true)
	tr, cmd := p.SetPresent(false)

	require.Equal(t, TransitionExitStarted, tr)
	require.NotNil(t, cmd)
	assert.Equal(t, Exiting, p.State())
	assert.True(t, p.Present(), "part must stay in the document while exiting")

	msg, ok := cmd().(DoneMsg)
	require.True(t, ok)

	tr, mine := p.Complete(msg)
	require.True(t, mine)
	assert.Equal(t, TransitionUnmount, tr)
	assert.Equal(t, Unmounted, p.State())
}

func TestReopenWhileExitingCancelsUnmount(t *testing.T) {
	p := New(WithExitDuration(50 * time.Millisecond))

	p.SetPresent(true)
	_, cmd := p.SetPresent(false)
	require.NotNil(t, cmd)

	tr, _ := p.SetPresent(true)
	assert.Equal(t, TransitionNone, tr, "reopen must not remount")
	assert.Equal(t, Mounted, p.State())

	// The stale completion from the cancelled exit must be ignored.
	msg := cmd().(DoneMsg)
	tr, mine := p.Complete(msg)
	assert.True(t, mine)
	assert.Equal(t, TransitionNone, tr)
	assert.Equal(t, Mounted, p.State())
}

func TestCompleteIgnoresOtherPresences(t *testing.T) {
	a := New(WithExitDuration(time.Millisecond))
	b := New(WithExitDuration(time.Millisecond))

	a.SetPresent(true)
	b.SetPresent(true)
	_, cmd := a.SetPresent(false)
	msg := cmd().(DoneMsg)

	tr, mine := b.Complete(msg)
	assert.False(t, mine)
	assert.Equal(t, TransitionNone, tr)
	assert.Equal(t, Mounted, b.State())
}
