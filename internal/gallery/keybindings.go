package gallery

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/tuikit/veil/internal/core/config"
)

// ActionType identifies the kind of action a keybinding triggers.
type ActionType int

const (
	ActionTypeNone ActionType = iota
	ActionTypeQuit
	ActionTypeReset
)

// Action represents a resolved keybinding action ready for execution.
type Action struct {
	Type ActionType
	Key  string
	Help string
}

// KeybindingHandler resolves configured keybindings to actions.
type KeybindingHandler struct {
	keybindings map[string]config.Keybinding
}

// NewKeybindingHandler creates a new handler with the given config.
func NewKeybindingHandler(keybindings map[string]config.Keybinding) *KeybindingHandler {
	return &KeybindingHandler{
		keybindings: keybindings,
	}
}

// Resolve attempts to resolve a key press to an action.
func (h *KeybindingHandler) Resolve(keyPress string) (Action, bool) {
	kb, exists := h.keybindings[keyPress]
	if !exists {
		return Action{}, false
	}

	action := Action{
		Key:  keyPress,
		Help: kb.Help,
	}

	switch kb.Action {
	case config.ActionQuit:
		action.Type = ActionTypeQuit
		if action.Help == "" {
			action.Help = "quit"
		}
	case config.ActionReset:
		action.Type = ActionTypeReset
		if action.Help == "" {
			action.Help = "close all"
		}
	default:
		return Action{}, false
	}

	return action, true
}

// HelpEntries returns all configured keybindings for display, sorted by key.
func (h *KeybindingHandler) HelpEntries() []string {
	keys := slices.Sorted(maps.Keys(h.keybindings))

	entries := make([]string, 0, len(h.keybindings))
	for _, k := range keys {
		action, ok := h.Resolve(k)
		if !ok {
			continue
		}
		entries = append(entries, fmt.Sprintf("[%s] %s", k, action.Help))
	}
	return entries
}

// HelpString returns a formatted help string for all keybindings.
func (h *KeybindingHandler) HelpString() string {
	return strings.Join(h.HelpEntries(), "  ")
}

// KeyBindings returns key.Binding objects for integration with bubbles help.
func (h *KeybindingHandler) KeyBindings() []key.Binding {
	keys := slices.Sorted(maps.Keys(h.keybindings))
	bindings := make([]key.Binding, 0, len(keys))

	for _, k := range keys {
		action, ok := h.Resolve(k)
		if !ok {
			continue
		}
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, action.Help),
		))
	}

	return bindings
}
