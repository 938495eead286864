package dialog

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tuikit/veil/pkg/focustrap"
)

// Close is the part that closes the dialog from inside its content. It
// registers itself in the content's focus traversal order.
type Close struct {
	ctx    *Context
	label  string
	target *focustrap.Target

	press    func(*Event)
	renderFn TriggerRenderFunc
}

// CloseOption configures a Close.
type CloseOption func(*Close)

// WithCloseRender replaces the default close-button rendering.
func WithCloseRender(fn TriggerRenderFunc) CloseOption {
	return func(c *Close) { c.renderFn = fn }
}

// WithOnClosePress chains a caller press handler before the close
// behavior; PreventDefault keeps the dialog open.
func WithOnClosePress(fn func(*Event)) CloseOption {
	return func(c *Close) {
		c.press = composeEventHandlers(fn, c.closeOnPress, true)
	}
}

// Close constructs a close part for the dialog.
func (d *Dialog) Close(label string, opts ...CloseOption) *Close {
	c := &Close{ctx: d.ctx, label: label}
	c.press = c.closeOnPress
	c.target = focustrap.NewTarget(d.ctx.id+"-close", label)
	d.ctx.RegisterFocus(c.target)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FocusTarget returns the close button's focus target.
func (c *Close) FocusTarget() *focustrap.Target {
	mustContext(c.ctx, "Close")
	return c.target
}

// Focused reports whether the close button holds focus.
func (c *Close) Focused() bool { return c.target.Focused() }

// Attrs returns the close button's rendered attributes.
func (c *Close) Attrs() Attrs {
	mustContext(c.ctx, "Close")
	return Attrs{
		"data-part": "close",
	}
}

// Press activates the close button.
func (c *Close) Press() {
	mustContext(c.ctx, "Close")
	c.press(&Event{Type: "press"})
}

func (c *Close) closeOnPress(*Event) {
	c.ctx.store.SetOpen(false)
}

// HandleKey activates the close button on enter or space while focused.
func (c *Close) HandleKey(msg tea.KeyPressMsg) bool {
	if !c.target.Focused() {
		return false
	}
	switch msg.String() {
	case "enter", " ", "space":
		c.Press()
		return true
	}
	return false
}

// Render draws the close button.
func (c *Close) Render() string {
	mustContext(c.ctx, "Close")
	if c.renderFn != nil {
		return c.renderFn(c.label, c.Attrs(), c.target.Focused())
	}
	if c.target.Focused() {
		return "[ " + c.label + " ]"
	}
	return "  " + c.label + "  "
}
