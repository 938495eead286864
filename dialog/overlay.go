package dialog

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tuikit/veil/pkg/portal"
	"github.com/tuikit/veil/pkg/presence"
)

// OverlayRenderFunc renders the overlay scrim for the full terminal size.
type OverlayRenderFunc func(width, height int, attrs Attrs) string

// Overlay is the scrim behind the open dialog. It layers below the
// content, is hidden from assistive traversal, and follows the same
// presence lifecycle as the content so exit transitions can fade it out.
type Overlay struct {
	ctx *Context
	cfg partConfig

	pres  *presence.Presence
	entry *portal.Entry
}

// Overlay constructs the dialog's overlay part.
func (d *Dialog) Overlay(opts ...PartOption) *Overlay {
	o := &Overlay{ctx: d.ctx, cfg: newPartConfig(opts)}
	o.pres = o.cfg.presence()
	d.overlay = o
	return o
}

// Attrs returns the overlay's rendered attributes.
func (o *Overlay) Attrs() Attrs {
	mustContext(o.ctx, "Overlay")
	return Attrs{
		"data-part":   "overlay",
		"data-state":  openState(o.ctx.store.Open()),
		"aria-hidden": "true",
	}
}

// Mounted reports whether the overlay is in the document.
func (o *Overlay) Mounted() bool { return o.pres.Present() }

// State returns the overlay's presence state.
func (o *Overlay) State() presence.State { return o.pres.State() }

// Sync reconciles the overlay with the dialog's open value. The returned
// command, when non-nil, must be run by the caller.
func (o *Overlay) Sync() tea.Cmd {
	mustContext(o.ctx, "Overlay")
	present := o.ctx.store.Open() || o.cfg.forceMount

	tr, cmd := o.pres.SetPresent(present)
	switch tr {
	case presence.TransitionMount:
		o.mount()
	case presence.TransitionUnmount:
		o.unmount()
	}
	return cmd
}

func (o *Overlay) handleDone(msg presence.DoneMsg) bool {
	tr, ok := o.pres.Complete(msg)
	if tr == presence.TransitionUnmount {
		o.unmount()
	}
	return ok
}

func (o *Overlay) mount() {
	o.entry = o.ctx.host.Insert(&portal.Entry{
		Build:  o.render,
		Z:      overlayZ,
		Opaque: true,
		OnDispose: func() {
			o.entry = nil
		},
	})
}

func (o *Overlay) unmount() {
	if o.entry != nil {
		o.entry.Remove()
	}
}

func (o *Overlay) render(width, height int) string {
	attrs := o.Attrs()
	if o.cfg.overlayRender != nil {
		return o.cfg.overlayRender(width, height, attrs)
	}
	if width < 1 || height < 1 {
		return ""
	}
	row := strings.Repeat("░", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("238")).
		Render(strings.Join(rows, "\n"))
}
