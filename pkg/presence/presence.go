// Package presence decouples a part's logical open state from its actual
// mounted state, so exit transitions can finish before the part leaves the
// document. A part is in the document if and only if its state is not
// Unmounted.
package presence

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

// State is the mounted lifecycle of a presence-managed part.
type State int

const (
	// Unmounted means the part is not in the document.
	Unmounted State = iota

	// Mounted means the part is in the document and logically present.
	Mounted

	// Exiting means the part is still in the document but logically gone,
	// waiting for its exit transition to complete.
	Exiting
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Mounted:
		return "mounted"
	case Exiting:
		return "exiting"
	default:
		return "unmounted"
	}
}

// Transition describes what a SetPresent or Complete call decided.
type Transition int

const (
	// TransitionNone means nothing changed.
	TransitionNone Transition = iota

	// TransitionMount means the part must enter the document now.
	TransitionMount

	// TransitionUnmount means the part must leave the document now.
	TransitionUnmount

	// TransitionExitStarted means the part stays in the document while its
	// exit transition runs.
	TransitionExitStarted
)

// DoneMsg reports that a presence's exit transition finished. Stale
// messages (from a cancelled exit) are ignored by Complete.
type DoneMsg struct {
	ID  uint64
	Gen uint64
}

var nextPresenceID uint64

// Presence tracks one part's tri-state lifecycle.
type Presence struct {
	id      uint64
	gen     uint64
	state   State
	exitDur time.Duration
}

// Option configures a Presence.
type Option func(*Presence)

// WithExitDuration declares an exit transition of the given duration.
// A zero duration means unmount happens synchronously with present
// flipping false.
func WithExitDuration(d time.Duration) Option {
	return func(p *Presence) {
		p.exitDur = d
	}
}

// New creates a Presence in the Unmounted state.
func New(opts ...Option) *Presence {
	p := &Presence{id: atomic.AddUint64(&nextPresenceID, 1)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the current lifecycle state.
func (p *Presence) State() State {
	return p.state
}

// Present reports whether the part is in the document.
func (p *Presence) Present() bool {
	return p.state != Unmounted
}

// SetPresent drives the state machine from the logical present value
// (open || forceMount). The returned command, when non-nil, schedules the
// exit-transition completion message and must be run by the caller.
//
// Flipping present true while Exiting cancels the pending unmount and
// returns to Mounted without remounting.
func (p *Presence) SetPresent(present bool) (Transition, tea.Cmd) {
	switch p.state {
	case Unmounted:
		if !present {
			return TransitionNone, nil
		}
		p.state = Mounted
		return TransitionMount, nil

	case Mounted:
		if present {
			return TransitionNone, nil
		}
		if p.exitDur <= 0 {
			p.state = Unmounted
			return TransitionUnmount, nil
		}
		p.state = Exiting
		p.gen++
		return TransitionExitStarted, p.exitCmd()

	default: // Exiting
		if !present {
			return TransitionNone, nil
		}
		// Re-entrant open: cancel the pending unmount.
		p.state = Mounted
		p.gen++
		return TransitionNone, nil
	}
}

// Complete consumes an exit-transition completion message. It returns
// TransitionUnmount when the part must leave the document now, and
// reports whether the message belonged to this presence at all.
func (p *Presence) Complete(msg DoneMsg) (Transition, bool) {
	if msg.ID != p.id {
		return TransitionNone, false
	}
	if p.state != Exiting || msg.Gen != p.gen {
		// Cancelled or stale; the message is ours but has no effect.
		return TransitionNone, true
	}
	p.state = Unmounted
	return TransitionUnmount, true
}

func (p *Presence) exitCmd() tea.Cmd {
	id, gen := p.id, p.gen
	return tea.Tick(p.exitDur, func(time.Time) tea.Msg {
		return DoneMsg{ID: id, Gen: gen}
	})
}
