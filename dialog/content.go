package dialog

import (
	"sync"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tuikit/veil/pkg/dismiss"
	"github.com/tuikit/veil/pkg/focustrap"
	"github.com/tuikit/veil/pkg/portal"
	"github.com/tuikit/veil/pkg/presence"
	"github.com/tuikit/veil/pkg/semantics"
)

// Z-order of the dialog's portal entries. The content sits directly above
// its overlay.
const (
	overlayZ = 1
	contentZ = 2
)

// ContentRenderFunc renders the dialog box itself. The returned string's
// size determines the centered placement and the outside-press hit rect.
type ContentRenderFunc func(width, height int, attrs Attrs) string

// Content is the dialog surface. Mounting it runs the dialog's side
// effects in a fixed order: lock background input, exclude the rest of
// the assistive tree, trap and move focus, enter the portal, install the
// dismissal layer. Unmounting reverses them exactly once per mount, even
// when torn down abnormally through the portal host.
type Content struct {
	ctx   *Context
	cfg   partConfig
	title string
	desc  string

	pres *presence.Presence

	// live per-mount state
	entry         *portal.Entry
	node          *semantics.Node
	activation    *focustrap.Activation
	releaseScroll func()
	restoreSem    func()
	removeLayer   func()
	teardownOnce  *sync.Once

	lastW int
	lastH int
}

// Content constructs the dialog's content part with an accessible title
// and description.
func (d *Dialog) Content(title, desc string, opts ...PartOption) *Content {
	ct := &Content{ctx: d.ctx, cfg: newPartConfig(opts), title: title, desc: desc}
	ct.pres = ct.cfg.presence()
	d.content = ct
	return ct
}

// Title returns the accessible title.
func (ct *Content) Title() string { return ct.title }

// Mounted reports whether the content is in the document.
func (ct *Content) Mounted() bool { return ct.pres.Present() }

// State returns the content's presence state.
func (ct *Content) State() presence.State { return ct.pres.State() }

// Modal reports whether the content blocks interaction behind it.
func (ct *Content) Modal() bool { return !ct.cfg.nonModal }

// Node returns the content's semantics node while mounted, or nil.
func (ct *Content) Node() *semantics.Node { return ct.node }

// Attrs returns the content's rendered attributes and, while mounted,
// mirrors them onto its semantics node.
func (ct *Content) Attrs() Attrs {
	mustContext(ct.ctx, "Content")
	a := Attrs{
		"id":               ct.ctx.contentID,
		"role":             "dialog",
		"data-part":        "content",
		"data-state":       openState(ct.ctx.store.Open()),
		"aria-modal":       boolAttr(ct.Modal()),
		"aria-labelledby":  ct.ctx.titleID,
		"aria-describedby": ct.ctx.descID,
	}
	if ct.node != nil {
		for k, v := range a {
			ct.node.SetAttr(k, v)
		}
	}
	return a
}

// Sync reconciles the content with the dialog's open value. The returned
// command, when non-nil, must be run by the caller; it delivers the
// exit-transition completion message.
func (ct *Content) Sync() tea.Cmd {
	mustContext(ct.ctx, "Content")
	present := ct.ctx.store.Open() || ct.cfg.forceMount

	tr, cmd := ct.pres.SetPresent(present)
	switch tr {
	case presence.TransitionMount:
		ct.mount()
	case presence.TransitionUnmount:
		ct.unmount()
	}
	return cmd
}

func (ct *Content) handleDone(msg presence.DoneMsg) bool {
	tr, ok := ct.pres.Complete(msg)
	if tr == presence.TransitionUnmount {
		ct.unmount()
	}
	return ok
}

// mount runs the opening effects. Order matters: each effect assumes the
// ones before it are in place, and teardown releases them in reverse.
func (ct *Content) mount() {
	host := ct.ctx.host

	if ct.Modal() {
		ct.releaseScroll = host.Guard().Acquire()
	}

	ct.node = host.Semantics().Root().NewChild(ct.ctx.contentID, semantics.RoleDialog, ct.title)
	if ct.Modal() {
		ct.restoreSem = host.Semantics().ExcludeOthers(ct.node)
	}
	ct.Attrs()

	scope := focustrap.NewScope()
	for _, t := range ct.ctx.contentTargets {
		scope.Add(t)
	}
	openEv := &Event{Type: "openAutoFocus"}
	if ct.cfg.onOpenAutoFocus != nil {
		ct.cfg.onOpenAutoFocus(openEv)
	}
	if openEv.DefaultPrevented() {
		ct.activation = host.Focus().ActivateKeepFocus(scope)
	} else {
		ct.activation = host.Focus().Activate(scope, nil)
	}

	once := &sync.Once{}
	ct.teardownOnce = once
	ct.entry = host.Insert(&portal.Entry{
		Build:     ct.build,
		Z:         contentZ,
		OnDispose: func() { ct.teardown(once) },
	})

	// Seed the hit rect so a press before the first frame is measured
	// against the real box, not an empty one.
	ct.build(host.Size())

	ct.removeLayer = host.Dismiss().Push(&dismiss.Layer{
		Modal:  ct.Modal(),
		Bounds: ct.bounds,
		OnEscape: func(ev *dismiss.KeyEvent) {
			if ct.cfg.onEscape != nil {
				ct.cfg.onEscape(ev)
			}
		},
		OnPointerDownOutside: func(ev *dismiss.PointerEvent) {
			if ct.cfg.onPointerOutside != nil {
				ct.cfg.onPointerOutside(ev)
			}
		},
		OnDismiss: func() {
			ct.ctx.store.SetOpen(false)
		},
	})
}

// teardown reverses mount. Guarded per mount so the normal close path and
// the portal's abnormal-teardown path cannot both run it.
func (ct *Content) teardown(once *sync.Once) {
	once.Do(func() {
		if ct.removeLayer != nil {
			ct.removeLayer()
			ct.removeLayer = nil
		}

		closeEv := &Event{Type: "closeAutoFocus"}
		if ct.cfg.onCloseAutoFocus != nil {
			ct.cfg.onCloseAutoFocus(closeEv)
		}
		if ct.activation != nil {
			restore := !closeEv.DefaultPrevented()
			ct.activation.Release(restore)
			ct.activation = nil
			// Nothing held focus before the trap; the trigger is the
			// documented restore target. A still-active inner trap keeps
			// its own focus.
			focus := ct.ctx.host.Focus()
			if restore && !focus.Trapped() && focus.Focused() == nil && ct.ctx.trigger != nil {
				focus.Focus(ct.ctx.trigger)
			}
		}

		if ct.restoreSem != nil {
			ct.restoreSem()
			ct.restoreSem = nil
		}
		if ct.node != nil {
			ct.node.Detach()
			ct.node = nil
		}

		if ct.releaseScroll != nil {
			ct.releaseScroll()
			ct.releaseScroll = nil
		}

		entry := ct.entry
		ct.entry = nil
		if entry != nil {
			entry.Remove()
		}
	})
}

func (ct *Content) unmount() {
	if ct.entry != nil {
		ct.entry.Remove()
		return
	}
	if ct.teardownOnce != nil {
		ct.teardown(ct.teardownOnce)
	}
}

func (ct *Content) build(width, height int) string {
	s := ct.renderBox(width, height)
	ct.lastW = lipgloss.Width(s)
	ct.lastH = lipgloss.Height(s)
	return s
}

func (ct *Content) bounds() dismiss.Rect {
	if ct.lastW < 1 || ct.lastH < 1 {
		// Not measured yet; treat every press as inside so nothing
		// dismisses against an unknown rect.
		w, h := ct.ctx.host.Size()
		return dismiss.Rect{W: w, H: h}
	}
	return ct.ctx.host.Bounds(ct.lastW, ct.lastH)
}

func (ct *Content) renderBox(width, height int) string {
	attrs := ct.Attrs()
	if ct.cfg.contentRender != nil {
		return ct.cfg.contentRender(width, height, attrs)
	}

	title := lipgloss.NewStyle().Bold(true).Render(ct.title)
	body := title
	if ct.desc != "" {
		body += "\n\n" + ct.desc
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(body)
}
