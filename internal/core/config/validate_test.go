package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_BadThemeColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme.Accent = "blue"
	cfg.Theme.Muted = "#56"

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
	assert.Equal(t, "theme.accent", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "#rrggbb")
}

func TestValidate_NegativeExit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Motion.ExitMs = -1

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "motion.exit_ms", fieldErrs[0].Field)
}

func TestValidate_ExitTooLong(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Motion.ExitMs = 10000

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs[0].Err.Error(), "5000ms limit")
}

func TestValidate_BadDocsPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Docs.Patterns = []string{"docs/[bad"}

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 1)
	assert.Contains(t, fieldErrs[0].Field, "docs.patterns")
}

func TestValidate_KeybindingMissingAction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings = map[string]Keybinding{
		"x": {Help: "does nothing"},
	}

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 1)
	assert.Contains(t, fieldErrs[0].Err.Error(), "must have an action")
}

func TestValidate_KeybindingInvalidAction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings = map[string]Keybinding{
		"x": {Action: "explode"},
	}

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 1)
	assert.Contains(t, fieldErrs[0].Err.Error(), `invalid action "explode"`)
}

func TestValidateDeep_ConfigFileIsDirectory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Docs.Patterns = nil

	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	hasConfigError := false
	for _, e := range fieldErrs {
		if e.Field == "config_file" {
			hasConfigError = true
			break
		}
	}
	assert.True(t, hasConfigError, "expected error about config file being a directory")
}

func TestValidateDeep_MissingConfigWarns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Docs.Patterns = nil

	err := cfg.ValidateDeep(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	warnings := cfg.Warnings()
	hasWarning := false
	for _, w := range warnings {
		if w.Category == "File Access" && strings.Contains(w.Message, "not found") {
			hasWarning = true
			break
		}
	}
	assert.True(t, hasWarning, "expected warning about missing config file")
}

func TestValidateDeep_UnmatchedDocsPatternWarns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Docs.Patterns = []string{filepath.Join(t.TempDir(), "**", "*.md")}

	err := cfg.ValidateDeep("")
	require.NoError(t, err)

	warnings := cfg.Warnings()
	hasWarning := false
	for _, w := range warnings {
		if w.Category == "Docs" && strings.Contains(w.Message, "matches no files") {
			hasWarning = true
			break
		}
	}
	assert.True(t, hasWarning, "expected warning about unmatched docs pattern")
}
