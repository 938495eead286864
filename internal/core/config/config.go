// Package config handles configuration loading and validation for veil.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Built-in action names for keybindings.
const (
	ActionQuit  = "quit"
	ActionReset = "reset"
)

// defaultKeybindings provides built-in keybindings that users can override.
var defaultKeybindings = map[string]Keybinding{
	"q": {
		Action: ActionQuit,
		Help:   "quit",
	},
	"r": {
		Action: ActionReset,
		Help:   "close all dialogs",
	},
}

// Config holds the application configuration.
type Config struct {
	Theme       Theme                 `yaml:"theme"`
	Motion      Motion                `yaml:"motion"`
	Docs        Docs                  `yaml:"docs"`
	Keybindings map[string]Keybinding `yaml:"keybindings"`
	Mouse       bool                  `yaml:"mouse"`

	warnings []ValidationWarning
}

// Theme overrides the gallery's color palette.
type Theme struct {
	Accent  string `yaml:"accent"`
	Text    string `yaml:"text"`
	Muted   string `yaml:"muted"`
	Surface string `yaml:"surface"`
}

// Motion configures dialog transitions.
type Motion struct {
	// ExitMs is how long a closing dialog stays on screen, in
	// milliseconds. Zero disables exit transitions.
	ExitMs int `yaml:"exit_ms"`
}

// Docs configures where the markdown demo finds documents.
type Docs struct {
	// Patterns are doublestar globs resolved against the working
	// directory.
	Patterns []string `yaml:"patterns"`
}

// Keybinding defines a gallery keybinding action.
type Keybinding struct {
	Action string `yaml:"action"` // built-in action name (quit, reset)
	Help   string `yaml:"help"`   // help text shown in the gallery
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: Theme{
			Accent:  "#7aa2f7",
			Text:    "#c0caf5",
			Muted:   "#565f89",
			Surface: "#1a1b26",
		},
		Motion: Motion{
			ExitMs: 200,
		},
		Docs: Docs{
			Patterns: []string{"*.md", "docs/**/*.md"},
		},
		Keybindings: map[string]Keybinding{},
		Mouse:       true,
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Merge user keybindings into defaults (user config overrides defaults)
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// mergeKeybindings merges user keybindings into defaults.
// User keybindings override defaults for the same key.
func mergeKeybindings(defaults, user map[string]Keybinding) map[string]Keybinding {
	result := make(map[string]Keybinding, len(defaults)+len(user))

	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range user {
		result[k] = v
	}

	return result
}

// ExitDuration returns the configured exit transition length.
func (c *Config) ExitDuration() time.Duration {
	return time.Duration(c.Motion.ExitMs) * time.Millisecond
}

// DocFiles expands the docs patterns and returns the matched file paths.
func (c *Config) DocFiles() ([]string, error) {
	var files []string
	for _, pattern := range c.Docs.Patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithNoFollow())
		if err != nil {
			return nil, fmt.Errorf("expand docs pattern %q: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	return files, nil
}

func isValidAction(action string) bool {
	switch action {
	case ActionQuit, ActionReset:
		return true
	default:
		return false
	}
}
