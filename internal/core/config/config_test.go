package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "#7aa2f7", cfg.Theme.Accent)
	assert.Equal(t, 200, cfg.Motion.ExitMs)
	assert.True(t, cfg.Mouse)
	assert.Equal(t, ActionQuit, cfg.Keybindings["q"].Action)
	assert.Equal(t, ActionReset, cfg.Keybindings["r"].Action)
}

func TestLoadMergesUserConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
theme:
  accent: "#9ece6a"
motion:
  exit_ms: 350
mouse: false
keybindings:
  q:
    action: reset
    help: custom reset
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "#9ece6a", cfg.Theme.Accent)
	assert.Equal(t, "#c0caf5", cfg.Theme.Text, "unset fields keep defaults")
	assert.Equal(t, 350, cfg.Motion.ExitMs)
	assert.Equal(t, 350*time.Millisecond, cfg.ExitDuration())
	assert.False(t, cfg.Mouse)

	// User overrides the default binding for the same key; other defaults
	// survive the merge.
	assert.Equal(t, ActionReset, cfg.Keybindings["q"].Action)
	assert.Equal(t, ActionReset, cfg.Keybindings["r"].Action)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
motion:
  exit_ms: -5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: ["), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestDocFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("# a"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "b.md"), []byte("# b"), 0o644))

	cfg := DefaultConfig()
	cfg.Docs.Patterns = []string{
		filepath.Join(dir, "*.md"),
		filepath.Join(dir, "docs", "**", "*.md"),
	}

	files, err := cfg.DocFiles()
	require.NoError(t, err)
	assert.Len(t, files, 2)
}
