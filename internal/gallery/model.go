// Package gallery implements the interactive veil demo gallery: a menu of
// dialog demos rendered over a shared portal host.
package gallery

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/tuikit/veil/internal/core/config"
	"github.com/tuikit/veil/internal/styles"
	"github.com/tuikit/veil/pkg/portal"
	"github.com/tuikit/veil/pkg/presence"
)

// Key constants for event handling.
const (
	keyCtrlC = "ctrl+c"
)

// Model is the main Bubble Tea model for the gallery.
type Model struct {
	cfg     *config.Config
	host    *portal.Host
	demos   []*Demo
	handler *KeybindingHandler

	cursor   int
	width    int
	height   int
	spinner  spinner.Model
	quitting bool
}

// New creates a new gallery model.
func New(cfg *config.Config) Model {
	host := portal.NewHost()
	demos := newDemos(cfg, host)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	m := Model{
		cfg:     cfg,
		host:    host,
		demos:   demos,
		handler: NewKeybindingHandler(cfg.Keybindings),
		spinner: s,
	}
	if len(demos) > 0 {
		host.Focus().Focus(demos[0].Trigger.FocusTarget())
	}
	return m
}

// Init starts the spinner tick.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.host.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case presence.DoneMsg:
		for _, demo := range m.demos {
			for _, d := range demo.Dialogs {
				d.HandlePresence(msg)
			}
		}
		return m, m.reconcile()

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.MouseClickMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// While a dialog is up, its controls see keys first; everything else
	// goes through the host so the background never reacts.
	if m.host.HasEntries() {
		for _, demo := range m.demos {
			if demo.isOpen() && demo.routeKey != nil && demo.routeKey(msg) {
				return m, m.reconcile()
			}
		}
		if m.host.Route(msg) {
			return m, m.reconcile()
		}
		return m, nil
	}

	if action, ok := m.handler.Resolve(msg.String()); ok {
		switch action.Type {
		case ActionTypeQuit:
			m.quitting = true
			return m, tea.Quit
		case ActionTypeReset:
			m.host.Reset()
			return m, m.reconcile()
		}
	}

	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "enter", " ", "space":
		m.demos[m.cursor].Trigger.HandleKey(msg)
		return m, m.reconcile()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if m.host.Route(msg) {
		return m, m.reconcile()
	}
	if m.host.HasEntries() {
		// Press landed inside the open dialog; its buttons are keyboard
		// driven, nothing to do.
		return m, nil
	}
	if msg.Button != tea.MouseLeft {
		return m, nil
	}

	for i, demo := range m.demos {
		if demo.Trigger.HandleMouse(msg.X, msg.Y) {
			m.cursor = i
			return m, m.reconcile()
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if len(m.demos) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = len(m.demos) - 1
	}
	if m.cursor >= len(m.demos) {
		m.cursor = 0
	}
	m.host.Focus().Focus(m.demos[m.cursor].Trigger.FocusTarget())
}

// reconcile drives every demo dialog toward its open value and collects
// the transition commands.
func (m Model) reconcile() tea.Cmd {
	var cmds []tea.Cmd
	for _, demo := range m.demos {
		if demo.sync != nil {
			demo.sync()
		}
		for _, d := range demo.Dialogs {
			if cmd := d.Reconcile(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
