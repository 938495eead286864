// Package portal renders floating surfaces above an application's regular
// view. Entries registered on a Host are composited over the background in
// z-order, centered in the terminal, regardless of where in the model tree
// they were created.
//
// The Host also owns the shared services floating surfaces need: the focus
// manager, the semantics tree, the scroll guard, and the dismissable-layer
// stack. Constructing a Host wires a fresh set, so hosts never share state.
package portal

import (
	"sort"
	"sync/atomic"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tuikit/veil/pkg/dismiss"
	"github.com/tuikit/veil/pkg/focustrap"
	"github.com/tuikit/veil/pkg/scrollguard"
	"github.com/tuikit/veil/pkg/semantics"
)

var nextEntryID uint64

// Entry is one floating surface registered on a Host.
type Entry struct {
	id uint64

	// Build renders the surface for the given terminal size.
	Build func(width, height int) string

	// Z orders entries relative to each other; higher is closer to the
	// viewer. Entries with equal Z render in insertion order.
	Z int

	// Opaque marks the entry as covering the background; the Host dims
	// everything behind the topmost opaque entry.
	Opaque bool

	// OnDispose runs exactly once when the entry leaves the host, whether
	// removed normally or swept by Reset.
	OnDispose func()

	host     *Host
	disposed bool
}

// ID returns the entry's host-unique identifier.
func (e *Entry) ID() uint64 { return e.id }

// Remove takes the entry off its host and runs OnDispose. Safe to call
// more than once.
func (e *Entry) Remove() {
	if e.disposed {
		return
	}
	e.disposed = true
	if e.host != nil {
		e.host.remove(e)
		e.host = nil
	}
	if e.OnDispose != nil {
		e.OnDispose()
	}
}

// Host manages floating surfaces and the services they share.
type Host struct {
	width   int
	height  int
	entries []*Entry

	focus *focustrap.Manager
	sem   *semantics.Tree
	guard *scrollguard.Guard
	stack *dismiss.Stack
}

// NewHost creates a Host with fresh focus, semantics, scroll-guard and
// dismissal state.
func NewHost() *Host {
	return &Host{
		focus: focustrap.NewManager(),
		sem:   semantics.NewTree(),
		guard: scrollguard.New(),
		stack: dismiss.NewStack(),
	}
}

// Focus returns the host's focus manager.
func (h *Host) Focus() *focustrap.Manager { return h.focus }

// Semantics returns the host's accessibility tree.
func (h *Host) Semantics() *semantics.Tree { return h.sem }

// Guard returns the host's scroll guard.
func (h *Host) Guard() *scrollguard.Guard { return h.guard }

// Dismiss returns the host's dismissable-layer stack.
func (h *Host) Dismiss() *dismiss.Stack { return h.stack }

// SetSize records the terminal size used for layout and hit testing.
func (h *Host) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// Size returns the last recorded terminal size.
func (h *Host) Size() (width, height int) {
	return h.width, h.height
}

// Insert registers a floating surface and returns its live entry.
func (h *Host) Insert(e *Entry) *Entry {
	e.id = atomic.AddUint64(&nextEntryID, 1)
	e.host = h
	h.entries = append(h.entries, e)
	return e
}

// Entries returns the live entries in insertion order.
func (h *Host) Entries() []*Entry { return h.entries }

// HasEntries reports whether any floating surface is up.
func (h *Host) HasEntries() bool { return len(h.entries) > 0 }

// BackgroundLocked reports whether background content must stop receiving
// scroll and navigation input.
func (h *Host) BackgroundLocked() bool {
	return h.guard.Locked()
}

// Reset disposes every entry, top-down. Used on abnormal teardown so each
// surface's cleanup still runs even when the normal close path was skipped.
func (h *Host) Reset() {
	for len(h.entries) > 0 {
		h.entries[len(h.entries)-1].Remove()
	}
}

func (h *Host) remove(e *Entry) {
	for i, existing := range h.entries {
		if existing == e {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return
		}
	}
}

// Bounds returns the centered rect an entry of the given rendered size
// occupies at the current terminal size.
func (h *Host) Bounds(contentWidth, contentHeight int) dismiss.Rect {
	x := (h.width - contentWidth) / 2
	y := (h.height - contentHeight) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return dismiss.Rect{X: x, Y: y, W: contentWidth, H: contentHeight}
}

// Route feeds an input message through the host's dismissal and focus
// machinery. It returns true when the message was consumed and must not
// reach the background model.
func (h *Host) Route(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return h.stack.HandleKey("esc")
		case "tab":
			if h.focus.Trapped() {
				h.focus.Cycle(1)
				return true
			}
		case "shift+tab":
			if h.focus.Trapped() {
				h.focus.Cycle(-1)
				return true
			}
		}
		// While a surface is up, all other keys belong to it.
		return h.HasEntries()

	case tea.MouseClickMsg:
		return h.stack.HandlePointer(msg.X, msg.Y, msg.Button == tea.MouseLeft)
	}
	return false
}

// Render composites the registered entries over the background and returns
// the final frame. With no entries the background passes through untouched.
func (h *Host) Render(background string) string {
	if len(h.entries) == 0 {
		return background
	}

	ordered := make([]*Entry, len(h.entries))
	copy(ordered, h.entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Z < ordered[j].Z
	})

	layers := []*lipgloss.Layer{lipgloss.NewLayer(background).X(0).Y(0).Z(0)}
	for i, e := range ordered {
		content := e.Build(h.width, h.height)
		r := h.Bounds(lipgloss.Width(content), lipgloss.Height(content))
		layers = append(layers, lipgloss.NewLayer(content).X(r.X).Y(r.Y).Z(i+1))
	}

	return lipgloss.NewCompositor(layers...).Render()
}
