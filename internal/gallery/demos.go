package gallery

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/tuikit/veil/dialog"
	"github.com/tuikit/veil/internal/core/config"
	"github.com/tuikit/veil/internal/styles"
	"github.com/tuikit/veil/pkg/focustrap"
	"github.com/tuikit/veil/pkg/portal"
	"github.com/tuikit/veil/pkg/presence"
)

// Demo is one gallery entry: a trigger row in the menu plus the dialogs it
// opens.
type Demo struct {
	Name string
	Desc string

	// Dialogs opened by this demo; the first one owns the menu trigger.
	Dialogs []*Dialog
	Trigger *dialog.Trigger

	// routeKey feeds a key press to the demo's own in-dialog controls.
	routeKey func(msg tea.KeyPressMsg) bool
	// sync applies owner-side state (controlled demos) before reconcile.
	sync func()
	// status renders an optional result line under the menu row.
	status func() string
}

// Dialog pairs a dialog with its parts so the model can reconcile them.
type Dialog = dialog.Dialog

// isOpen reports whether any of the demo's dialogs is logically open, so
// the model only routes keys to demos that are showing something.
func (d *Demo) isOpen() bool {
	for _, dl := range d.Dialogs {
		if dl.Open() {
			return true
		}
	}
	return false
}

// button is a caller-owned focusable control inside a dialog's content.
type button struct {
	target *focustrap.Target
	label  string
	act    func()
}

func newButton(id, label string, act func()) *button {
	return &button{
		target: focustrap.NewTarget(id, label),
		label:  label,
		act:    act,
	}
}

func (b *button) handleKey(msg tea.KeyPressMsg) bool {
	if !b.target.Focused() {
		return false
	}
	switch msg.String() {
	case "enter", " ", "space":
		b.act()
		return true
	}
	return false
}

func (b *button) render() string {
	return styles.Button(b.label, b.target.Focused())
}

func scrimRender(width, height int, _ dialog.Attrs) string {
	return styles.Scrim(width, height)
}

func buttonRender(label string, _ dialog.Attrs, focused bool) string {
	return styles.Button(label, focused)
}

func dialogHint(text string) string {
	return styles.DialogHelpStyle.Render(text)
}

// newDemos wires every gallery demo against the shared host.
func newDemos(cfg *config.Config, host *portal.Host) []*Demo {
	return []*Demo{
		newConfirmDemo(host),
		newControlledDemo(host),
		newMarkdownDemo(cfg, host),
		newNestedDemo(host),
		newTransitionDemo(cfg, host),
	}
}

// newConfirmDemo is the basic modal: overlay, focus trap, escape and
// outside-press dismissal, and a destructive action button.
func newConfirmDemo(host *portal.Host) *Demo {
	demo := &Demo{
		Name: "Confirm",
		Desc: "modal confirmation with action buttons",
	}

	var result string

	d := dialog.New(host, dialog.WithID("confirm"))
	demo.Dialogs = []*Dialog{d}
	demo.Trigger = d.Trigger("Delete workspace…")

	confirm := newButton("confirm-delete", "Delete", func() {
		result = "deleted"
		d.SetOpen(false)
	})
	d.RegisterFocus(confirm.target)
	cancel := d.Close("Cancel", dialog.WithCloseRender(buttonRender))
	d.Overlay(dialog.WithOverlayRender(scrimRender))
	d.Content("Delete workspace?", "This cannot be undone.",
		dialog.WithContentRender(func(_, _ int, _ dialog.Attrs) string {
			buttons := lipgloss.JoinHorizontal(lipgloss.Top,
				confirm.render(), "  ", cancel.Render())
			return styles.DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
				styles.DialogTitleStyle.Render("Delete workspace?"),
				"",
				"This cannot be undone.",
				"",
				buttons,
				dialogHint("tab: switch • enter: choose • esc: dismiss"),
			))
		}))

	demo.routeKey = func(msg tea.KeyPressMsg) bool {
		return confirm.handleKey(msg) || cancel.HandleKey(msg)
	}
	demo.status = func() string {
		if result == "" {
			return ""
		}
		return "last action: " + result
	}
	return demo
}

// newControlledDemo keeps the open value outside the dialog: the dialog
// only reports intent, and the demo applies it on the next update.
func newControlledDemo(host *portal.Host) *Demo {
	demo := &Demo{
		Name: "Controlled",
		Desc: "open state owned by the application",
	}

	var (
		want    bool
		changes int
	)

	d := dialog.New(host,
		dialog.WithID("controlled"),
		dialog.WithControlled(false),
		dialog.WithOnOpenChange(func(open bool) {
			want = open
			changes++
		}),
	)
	demo.Dialogs = []*Dialog{d}
	demo.Trigger = d.Trigger("Session details")

	done := d.Close("Done", dialog.WithCloseRender(buttonRender))
	d.Overlay(dialog.WithOverlayRender(scrimRender))
	d.Content("Session details", "State lives in the gallery model.",
		dialog.WithContentRender(func(_, _ int, attrs dialog.Attrs) string {
			return styles.DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
				styles.DialogTitleStyle.Render("Session details"),
				"",
				"State lives in the gallery model.",
				styles.DescStyle.Render(fmt.Sprintf("open-change callbacks so far: %d", changes)),
				"",
				done.Render(),
				dialogHint("esc: request close"),
			))
		}))

	demo.routeKey = done.HandleKey
	demo.sync = func() { d.SetControlledOpen(want) }
	demo.status = func() string {
		return styles.DescStyle.Render(fmt.Sprintf("intent callbacks: %d", changes))
	}
	return demo
}

// newNestedDemo stacks a second dialog on top of the first. Escape and
// focus restore unwind innermost first.
func newNestedDemo(host *portal.Host) *Demo {
	demo := &Demo{
		Name: "Nested",
		Desc: "a dialog opened from inside another dialog",
	}

	outer := dialog.New(host, dialog.WithID("nested-outer"))
	inner := dialog.New(host, dialog.WithID("nested-inner"))
	demo.Dialogs = []*Dialog{outer, inner}
	demo.Trigger = outer.Trigger("Workspace settings")

	openInner := newButton("nested-open", "Advanced…", func() {
		inner.SetOpen(true)
	})
	outer.RegisterFocus(openInner.target)
	outerClose := outer.Close("Close", dialog.WithCloseRender(buttonRender))
	outer.Overlay(dialog.WithOverlayRender(scrimRender))
	outer.Content("Workspace settings", "",
		dialog.WithContentRender(func(_, _ int, _ dialog.Attrs) string {
			return styles.DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
				styles.DialogTitleStyle.Render("Workspace settings"),
				"",
				lipgloss.JoinHorizontal(lipgloss.Top, openInner.render(), "  ", outerClose.Render()),
				dialogHint("esc closes the innermost dialog first"),
			))
		}))

	innerClose := inner.Close("Back", dialog.WithCloseRender(buttonRender))
	inner.Overlay(dialog.WithOverlayRender(scrimRender))
	inner.Content("Advanced settings", "",
		dialog.WithContentRender(func(_, _ int, _ dialog.Attrs) string {
			return styles.DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
				styles.DialogTitleStyle.Render("Advanced settings"),
				"",
				"Nothing here is saved anywhere.",
				"",
				innerClose.Render(),
				dialogHint("esc: back"),
			))
		}))

	demo.routeKey = func(msg tea.KeyPressMsg) bool {
		return innerClose.HandleKey(msg) ||
			openInner.handleKey(msg) ||
			outerClose.HandleKey(msg)
	}
	return demo
}

// newTransitionDemo uses an exit duration so the closing dialog lingers
// with data-state "closed" until the transition elapses.
func newTransitionDemo(cfg *config.Config, host *portal.Host) *Demo {
	demo := &Demo{
		Name: "Transition",
		Desc: "exit transition via deferred unmount",
	}

	exit := cfg.ExitDuration()

	d := dialog.New(host, dialog.WithID("transition"))
	demo.Dialogs = []*Dialog{d}
	demo.Trigger = d.Trigger("Notification")

	closeBtn := d.Close("Dismiss", dialog.WithCloseRender(buttonRender))
	d.Overlay(dialog.WithOverlayRender(scrimRender), dialog.ExitDuration(exit))
	ct := d.Content("Saved", "",
		dialog.ExitDuration(exit),
		dialog.WithContentRender(func(_, _ int, attrs dialog.Attrs) string {
			title := styles.DialogTitleStyle.Render("Saved")
			if attrs["data-state"] == "closed" {
				title = styles.DescStyle.Render("Saved (fading…)")
			}
			return styles.DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
				title,
				"",
				"Your changes were written to disk.",
				"",
				closeBtn.Render(),
				dialogHint(fmt.Sprintf("closes %s after dismissal", exit)),
			))
		}))

	demo.routeKey = closeBtn.HandleKey
	demo.status = func() string {
		if ct.State() == presence.Exiting {
			return styles.StateStyle.Render("state: exiting")
		}
		return ""
	}
	return demo
}
