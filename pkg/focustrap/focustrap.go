// Package focustrap provides keyboard focus management for a terminal
// host: focusable targets, scopes that group them, and trap activations
// that confine Tab/Shift-Tab cycling to one scope and restore the
// previously focused target on release.
//
// Each host owns its own Manager; there is deliberately no process-wide
// focus singleton, so independent programs (and tests) never share state.
package focustrap

// Target is a focusable element.
type Target struct {
	id        string
	label     string
	focusable bool
	focused   bool

	// OnFocusChange is invoked with the new focus value whenever primary
	// focus enters or leaves this target.
	OnFocusChange func(focused bool)
}

// NewTarget creates a focusable target.
func NewTarget(id, label string) *Target {
	return &Target{id: id, label: label, focusable: true}
}

// ID returns the target's identifier.
func (t *Target) ID() string { return t.id }

// Label returns the target's human-readable label.
func (t *Target) Label() string { return t.label }

// Focused reports whether the target holds primary focus.
func (t *Target) Focused() bool { return t.focused }

// SetFocusable marks whether the target can receive focus.
func (t *Target) SetFocusable(v bool) { t.focusable = v }

func (t *Target) canReceiveFocus() bool {
	return t != nil && t.focusable
}

func (t *Target) setFocusState(focused bool) {
	t.focused = focused
	if t.OnFocusChange != nil {
		t.OnFocusChange(focused)
	}
}

// Scope groups the focusable targets of one subtree, in traversal order.
type Scope struct {
	targets []*Target
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// Add registers a target at the end of the scope's traversal order and
// returns it for convenience.
func (s *Scope) Add(t *Target) *Target {
	s.targets = append(s.targets, t)
	return t
}

// Remove unregisters a target. No-op if absent.
func (s *Scope) Remove(t *Target) {
	for i, existing := range s.targets {
		if existing == t {
			s.targets = append(s.targets[:i], s.targets[i+1:]...)
			return
		}
	}
}

// Targets returns the registered targets in traversal order.
func (s *Scope) Targets() []*Target { return s.targets }

// First returns the first focusable target, or nil.
func (s *Scope) First() *Target {
	for _, t := range s.targets {
		if t.canReceiveFocus() {
			return t
		}
	}
	return nil
}

func (s *Scope) contains(t *Target) bool {
	for _, existing := range s.targets {
		if existing == t {
			return true
		}
	}
	return false
}

// Activation is a live focus trap. Releasing it deactivates the trap and,
// unless suppressed, restores focus to the target that held it before
// activation.
type Activation struct {
	manager  *Manager
	scope    *Scope
	prev     *Target
	released bool
}

// Scope returns the trapped scope.
func (a *Activation) Scope() *Scope { return a.scope }

// Release deactivates the trap. When restore is true, focus returns to
// the target focused before activation (nil is allowed and clears focus).
// Release is idempotent.
func (a *Activation) Release(restore bool) {
	if a.released {
		return
	}
	a.released = true
	a.manager.release(a, restore)
}

// Manager owns focus state for one host.
type Manager struct {
	focused *Target
	traps   []*Activation
}

// NewManager creates a Manager with nothing focused.
func NewManager() *Manager {
	return &Manager{}
}

// Focused returns the target holding primary focus, or nil.
func (m *Manager) Focused() *Target { return m.focused }

// Focus moves primary focus to the given target (nil clears focus).
// Unfocusable targets are ignored.
func (m *Manager) Focus(t *Target) {
	if t != nil && !t.canReceiveFocus() {
		return
	}
	m.setFocus(t)
}

// Trapped reports whether a focus trap is currently active.
func (m *Manager) Trapped() bool {
	return len(m.traps) > 0
}

// ActiveScope returns the innermost trapped scope, or nil.
func (m *Manager) ActiveScope() *Scope {
	if len(m.traps) == 0 {
		return nil
	}
	return m.traps[len(m.traps)-1].scope
}

// Activate traps focus in the scope and moves focus to initial. A nil
// initial falls back to the scope's first focusable target; a scope with
// no focusable target leaves focus where it is (the trap still confines
// cycling once a target is added).
func (m *Manager) Activate(scope *Scope, initial *Target) *Activation {
	a := &Activation{manager: m, scope: scope, prev: m.focused}
	m.traps = append(m.traps, a)

	if initial == nil {
		initial = scope.First()
	}
	if initial != nil && initial.canReceiveFocus() {
		m.setFocus(initial)
	}
	return a
}

// ActivateKeepFocus traps focus in the scope without moving focus, for
// surfaces that suppress their own auto-focus.
func (m *Manager) ActivateKeepFocus(scope *Scope) *Activation {
	a := &Activation{manager: m, scope: scope, prev: m.focused}
	m.traps = append(m.traps, a)
	return a
}

// Cycle moves focus within the innermost trapped scope by delta positions
// with wrap-around, skipping unfocusable targets. Returns false when no
// trap is active or the scope has nothing focusable.
func (m *Manager) Cycle(delta int) bool {
	scope := m.ActiveScope()
	if scope == nil || len(scope.targets) == 0 {
		return false
	}

	current := -1
	if m.focused != nil && scope.contains(m.focused) {
		for i, t := range scope.targets {
			if t == m.focused {
				current = i
				break
			}
		}
	}

	count := len(scope.targets)
	for step := 1; step <= count; step++ {
		next := wrapIndex(current+delta*step, count)
		candidate := scope.targets[next]
		if candidate.canReceiveFocus() {
			m.setFocus(candidate)
			return true
		}
	}
	return false
}

func (m *Manager) release(a *Activation, restore bool) {
	top := len(m.traps) > 0 && m.traps[len(m.traps)-1] == a
	for i, existing := range m.traps {
		if existing == a {
			m.traps = append(m.traps[:i], m.traps[i+1:]...)
			break
		}
	}
	// Only the innermost trap restores focus; an outer trap released out
	// of order must not steal focus from a still-active inner one.
	if top && restore {
		m.setFocus(a.prev)
	}
}

func (m *Manager) setFocus(t *Target) {
	if m.focused == t {
		return
	}
	if m.focused != nil {
		m.focused.setFocusState(false)
	}
	m.focused = t
	if t != nil {
		t.setFocusState(true)
	}
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
