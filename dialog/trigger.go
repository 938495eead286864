package dialog

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tuikit/veil/pkg/dismiss"
	"github.com/tuikit/veil/pkg/focustrap"
	"github.com/tuikit/veil/pkg/semantics"
)

// TriggerRenderFunc renders the trigger. The default renders the label
// with a focus marker; callers swap in their own to render as something
// else entirely while keeping the trigger's behavior.
type TriggerRenderFunc func(label string, attrs Attrs, focused bool) string

// Trigger is the part that opens the dialog. It is focusable, activates
// on enter or space, and exposes the disclosure attributes assistive
// tooling expects on a dialog trigger.
type Trigger struct {
	ctx    *Context
	label  string
	target *focustrap.Target
	node   *semantics.Node

	press    func(*Event)
	renderFn TriggerRenderFunc
	hit      dismiss.Rect
	hasHit   bool
}

// TriggerOption configures a Trigger.
type TriggerOption func(*Trigger)

// WithTriggerRender replaces the default trigger rendering.
func WithTriggerRender(fn TriggerRenderFunc) TriggerOption {
	return func(t *Trigger) { t.renderFn = fn }
}

// WithOnPress chains a caller press handler before the trigger's own
// open behavior; PreventDefault keeps the dialog closed.
func WithOnPress(fn func(*Event)) TriggerOption {
	return func(t *Trigger) {
		t.press = composeEventHandlers(fn, t.openOnPress, true)
	}
}

// Trigger constructs the dialog's trigger part. Calling it again returns
// a new part bound to the same instance and retires the previous one.
func (d *Dialog) Trigger(label string, opts ...TriggerOption) *Trigger {
	t := &Trigger{ctx: d.ctx, label: label}
	t.press = t.openOnPress
	t.target = focustrap.NewTarget(d.ctx.id+"-trigger", label)
	if d.ctx.triggerNode != nil {
		d.ctx.triggerNode.Detach()
	}
	t.node = d.ctx.host.Semantics().Root().NewChild(t.target.ID(), semantics.RoleButton, label)
	d.ctx.trigger = t.target
	d.ctx.triggerNode = t.node

	for _, opt := range opts {
		opt(t)
	}
	return t
}

// FocusTarget returns the trigger's focus target, for registration in the
// caller's focus scope.
func (t *Trigger) FocusTarget() *focustrap.Target {
	mustContext(t.ctx, "Trigger")
	return t.target
}

// Label returns the trigger label.
func (t *Trigger) Label() string { return t.label }

// Focused reports whether the trigger holds focus.
func (t *Trigger) Focused() bool { return t.target.Focused() }

// Attrs returns the trigger's rendered attributes and mirrors them onto
// its semantics node.
func (t *Trigger) Attrs() Attrs {
	mustContext(t.ctx, "Trigger")
	a := Attrs{
		"data-part":     "trigger",
		"data-state":    openState(t.ctx.store.Open()),
		"aria-haspopup": "dialog",
		"aria-expanded": boolAttr(t.ctx.store.Open()),
		"aria-controls": t.ctx.contentID,
	}
	for k, v := range a {
		t.node.SetAttr(k, v)
	}
	return a
}

// Press activates the trigger: the caller's press handler runs first, then
// unless prevented the dialog opens.
func (t *Trigger) Press() {
	mustContext(t.ctx, "Trigger")
	t.press(&Event{Type: "press"})
}

func (t *Trigger) openOnPress(*Event) {
	t.ctx.store.SetOpen(true)
}

// HandleKey activates the trigger on enter or space while it is focused.
// Returns true when the key was consumed.
func (t *Trigger) HandleKey(msg tea.KeyPressMsg) bool {
	if !t.target.Focused() {
		return false
	}
	switch msg.String() {
	case "enter", " ", "space":
		t.Press()
		return true
	}
	return false
}

// SetHitRect records the trigger's on-screen rect for mouse activation.
func (t *Trigger) SetHitRect(r dismiss.Rect) {
	t.hit = r
	t.hasHit = true
}

// HandleMouse activates the trigger when the press lands inside its hit
// rect. Returns true when consumed.
func (t *Trigger) HandleMouse(x, y int) bool {
	if !t.hasHit || !t.hit.Contains(x, y) {
		return false
	}
	t.Press()
	return true
}

// Render draws the trigger.
func (t *Trigger) Render() string {
	mustContext(t.ctx, "Trigger")
	attrs := t.Attrs()
	if t.renderFn != nil {
		return t.renderFn(t.label, attrs, t.target.Focused())
	}
	if t.target.Focused() {
		return "> " + t.label
	}
	return "  " + t.label
}

func boolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
