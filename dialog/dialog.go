// Package dialog implements an accessible modal dialog primitive for
// terminal applications built on Bubble Tea. A Dialog is a compound
// component: the Trigger, Overlay, Content and Close parts are constructed
// from one Dialog instance and share its state through an instance-scoped
// context, never through package globals.
//
// The package owns disclosure state, focus trapping, escape and
// outside-press dismissal, background input locking, assistive-tree
// exclusion and mount/unmount lifecycle with exit transitions. Rendering
// is left to the caller via render funcs, with plain defaults.
package dialog

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/tuikit/veil/pkg/dismiss"
	"github.com/tuikit/veil/pkg/focustrap"
	"github.com/tuikit/veil/pkg/portal"
	"github.com/tuikit/veil/pkg/presence"
	"github.com/tuikit/veil/pkg/randid"
	"github.com/tuikit/veil/pkg/semantics"
)

// Context carries one dialog instance's identity and shared state. Every
// part holds a pointer to the same Context; a part operating without one
// was constructed outside a Dialog, which is a programming error and
// panics immediately.
type Context struct {
	id        string
	contentID string
	titleID   string
	descID    string

	store *stateStore
	host  *portal.Host

	trigger     *focustrap.Target
	triggerNode *semantics.Node

	// contentTargets are the focusable targets inside the content part, in
	// traversal order. The Close part and callers register here; the
	// content builds its trap scope from this list on every mount.
	contentTargets []*focustrap.Target
}

// RegisterFocus adds a focusable target to the content's traversal order.
func (c *Context) RegisterFocus(t *focustrap.Target) {
	c.contentTargets = append(c.contentTargets, t)
}

// ID returns the dialog instance identifier.
func (c *Context) ID() string { return c.id }

// ContentID returns the identifier the content part renders under and the
// trigger's aria-controls references.
func (c *Context) ContentID() string { return c.contentID }

func mustContext(c *Context, part string) {
	if c == nil {
		panic(fmt.Sprintf("dialog: %s used outside a Dialog; construct it with Dialog.%s", part, part))
	}
}

// Dialog is one dialog instance. Construct parts from it, reconcile it
// from your Update, and render its trigger in your View; the open surface
// renders through the portal host.
type Dialog struct {
	ctx *Context

	overlay *Overlay
	content *Content
}

// Option configures a Dialog.
type Option func(*config)

type config struct {
	id          string
	defaultOpen bool
	controlled  bool
	onChange    func(open bool)
}

// WithID sets an explicit instance ID instead of a generated one.
func WithID(id string) Option {
	return func(c *config) { c.id = id }
}

// WithDefaultOpen starts an uncontrolled dialog open.
func WithDefaultOpen() Option {
	return func(c *config) { c.defaultOpen = true }
}

// WithControlled puts the dialog in controlled mode: the dialog never
// changes its own open value, it only reports intent through the
// open-change callback. The owner applies the value with
// SetControlledOpen.
func WithControlled(open bool) Option {
	return func(c *config) {
		c.controlled = true
		c.defaultOpen = open
	}
}

// WithOnOpenChange registers the open-change callback.
func WithOnOpenChange(fn func(open bool)) Option {
	return func(c *config) { c.onChange = fn }
}

// New creates a Dialog bound to the given portal host.
func New(host *portal.Host, opts ...Option) *Dialog {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.id == "" {
		cfg.id = randid.Prefixed("dialog", 8)
	}

	ctx := &Context{
		id:        cfg.id,
		contentID: cfg.id + "-content",
		titleID:   cfg.id + "-title",
		descID:    cfg.id + "-description",
		host:      host,
		store: &stateStore{
			controlled: cfg.controlled,
			value:      cfg.defaultOpen,
			onChange:   cfg.onChange,
		},
	}
	return &Dialog{ctx: ctx}
}

// ID returns the instance identifier.
func (d *Dialog) ID() string { return d.ctx.id }

// Open reports the current open value.
func (d *Dialog) Open() bool { return d.ctx.store.Open() }

// SetOpen requests an open-state change. In uncontrolled mode the value
// changes and the callback fires; in controlled mode only the callback
// fires. Requesting the current value is a no-op either way.
func (d *Dialog) SetOpen(open bool) { d.ctx.store.SetOpen(open) }

// Toggle requests the opposite open value.
func (d *Dialog) Toggle() { d.ctx.store.SetOpen(!d.ctx.store.Open()) }

// SetControlledOpen applies an owner-decided value to a controlled
// dialog without firing the callback.
func (d *Dialog) SetControlledOpen(open bool) {
	d.ctx.store.setValue(open)
}

// RegisterFocus adds a caller-owned focusable target to the content's
// traversal order, for custom buttons and inputs inside the content.
func (d *Dialog) RegisterFocus(t *focustrap.Target) {
	d.ctx.RegisterFocus(t)
}

// Reconcile drives every constructed part toward the current open value.
// Call it from Update after anything that may have changed open state.
// The returned command schedules exit-transition completion when needed.
func (d *Dialog) Reconcile() tea.Cmd {
	var cmds []tea.Cmd
	if d.overlay != nil {
		if cmd := d.overlay.Sync(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if d.content != nil {
		if cmd := d.content.Sync(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// HandlePresence consumes an exit-transition completion message. It
// returns true when the message belonged to one of this dialog's parts.
func (d *Dialog) HandlePresence(msg presence.DoneMsg) bool {
	handled := false
	if d.overlay != nil && d.overlay.handleDone(msg) {
		handled = true
	}
	if d.content != nil && d.content.handleDone(msg) {
		handled = true
	}
	return handled
}

// ExitDuration gives a part an exit transition of the given length. The
// part stays in the document, with data-state "closed", until it elapses.
func ExitDuration(d time.Duration) PartOption {
	return func(p *partConfig) { p.exitDur = d }
}

// ForceMount keeps a part in the document regardless of open state, for
// callers animating visibility themselves.
func ForceMount() PartOption {
	return func(p *partConfig) { p.forceMount = true }
}

// NonModal lets interactions land behind the open dialog: outside presses
// are not swallowed and background input stays unlocked.
func NonModal() PartOption {
	return func(p *partConfig) { p.nonModal = true }
}

// WithOverlayRender replaces the default overlay scrim rendering.
func WithOverlayRender(fn OverlayRenderFunc) PartOption {
	return func(p *partConfig) { p.overlayRender = fn }
}

// WithContentRender replaces the default content box rendering.
func WithContentRender(fn ContentRenderFunc) PartOption {
	return func(p *partConfig) { p.contentRender = fn }
}

// WithOnOpenAutoFocus chains a handler before the content's opening
// auto-focus; PreventDefault leaves focus where it is (the trap still
// activates).
func WithOnOpenAutoFocus(fn func(*Event)) PartOption {
	return func(p *partConfig) { p.onOpenAutoFocus = fn }
}

// WithOnCloseAutoFocus chains a handler before the closing focus restore;
// PreventDefault suppresses the restore.
func WithOnCloseAutoFocus(fn func(*Event)) PartOption {
	return func(p *partConfig) { p.onCloseAutoFocus = fn }
}

// WithOnEscapeKeyDown chains a handler before escape dismissal;
// PreventDefault keeps the dialog open.
func WithOnEscapeKeyDown(fn func(*dismiss.KeyEvent)) PartOption {
	return func(p *partConfig) { p.onEscape = fn }
}

// WithOnPointerDownOutside chains a handler before outside-press
// dismissal; PreventDefault keeps the dialog open.
func WithOnPointerDownOutside(fn func(*dismiss.PointerEvent)) PartOption {
	return func(p *partConfig) { p.onPointerOutside = fn }
}

// PartOption configures the Overlay or Content part.
type PartOption func(*partConfig)

type partConfig struct {
	exitDur    time.Duration
	forceMount bool
	nonModal   bool

	overlayRender OverlayRenderFunc
	contentRender ContentRenderFunc

	onOpenAutoFocus  func(*Event)
	onCloseAutoFocus func(*Event)
	onEscape         func(*dismiss.KeyEvent)
	onPointerOutside func(*dismiss.PointerEvent)
}

func newPartConfig(opts []PartOption) partConfig {
	var cfg partConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c partConfig) presence() *presence.Presence {
	if c.exitDur > 0 {
		return presence.New(presence.WithExitDuration(c.exitDur))
	}
	return presence.New()
}
