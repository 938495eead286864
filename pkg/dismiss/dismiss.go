// Package dismiss routes escape-key and outside-pointer interactions to a
// stack of dismissable layers. The topmost layer sees an interaction first
// and can consume it; a modal layer additionally swallows outside pointer
// presses so nothing behind it can be activated.
package dismiss

// KeyEvent is a preventable escape-key interaction delivered to a layer.
type KeyEvent struct {
	Key string

	prevented bool
}

// PreventDefault stops the layer's default dismissal for this event.
func (e *KeyEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *KeyEvent) DefaultPrevented() bool { return e.prevented }

// PointerEvent is a preventable pointer-press interaction delivered to a
// layer. Coordinates are terminal cells.
type PointerEvent struct {
	X int
	Y int

	prevented bool
}

// PreventDefault stops the layer's default dismissal for this event.
func (e *PointerEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *PointerEvent) DefaultPrevented() bool { return e.prevented }

// Rect is a rectangular region in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point falls inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layer is one dismissable surface on the stack.
type Layer struct {
	// Modal layers swallow outside pointer presses entirely. Non-modal
	// layers let an unprevented outside press fall through to lower layers
	// after dismissal runs.
	Modal bool

	// Bounds reports the layer's current on-screen rect. Presses inside
	// bounds are never outside presses. A nil Bounds treats every press
	// as outside.
	Bounds func() Rect

	// OnEscape is invoked before escape dismissal; call PreventDefault to
	// keep the layer open.
	OnEscape func(*KeyEvent)

	// OnPointerDownOutside is invoked before outside-press dismissal; call
	// PreventDefault to keep the layer open.
	OnPointerDownOutside func(*PointerEvent)

	// OnDismiss performs the actual close.
	OnDismiss func()
}

// Stack is the dismissable-layer stack for one host. Layers are pushed as
// surfaces open and removed as they close; interactions route to the
// topmost layer first.
type Stack struct {
	layers []*Layer
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Len returns the number of layers on the stack.
func (s *Stack) Len() int { return len(s.layers) }

// Top returns the topmost layer, or nil.
func (s *Stack) Top() *Layer {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[len(s.layers)-1]
}

// Push adds a layer to the top of the stack and returns an idempotent
// remove function.
func (s *Stack) Push(l *Layer) (remove func()) {
	s.layers = append(s.layers, l)
	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		for i, existing := range s.layers {
			if existing == l {
				s.layers = append(s.layers[:i], s.layers[i+1:]...)
				return
			}
		}
	}
}

// HandleKey routes an escape key press to the topmost layer. It returns
// true when a layer consumed the press (whether or not it dismissed).
func (s *Stack) HandleKey(key string) bool {
	top := s.Top()
	if top == nil {
		return false
	}

	ev := &KeyEvent{Key: key}
	if top.OnEscape != nil {
		top.OnEscape(ev)
	}
	if !ev.DefaultPrevented() && top.OnDismiss != nil {
		top.OnDismiss()
	}
	return true
}

// HandlePointer routes a pointer press. Presses inside the topmost layer's
// bounds pass through untouched (return false) so the host can deliver
// them to the layer's own content. Primary outside presses fire the
// layer's hook, then dismiss unless prevented; only the primary button
// dismisses, but a modal layer swallows outside presses of any button.
//
// The return value reports whether the press was consumed: true means the
// host must not deliver it to anything behind the layer.
func (s *Stack) HandlePointer(x, y int, primary bool) bool {
	top := s.Top()
	if top == nil {
		return false
	}

	if top.Bounds != nil && top.Bounds().Contains(x, y) {
		return false
	}

	if !primary {
		return top.Modal
	}

	ev := &PointerEvent{X: x, Y: y}
	if top.OnPointerDownOutside != nil {
		top.OnPointerDownOutside(ev)
	}
	if !ev.DefaultPrevented() && top.OnDismiss != nil {
		top.OnDismiss()
	}
	// A modal layer absorbs the press even when dismissal was prevented.
	return top.Modal
}
