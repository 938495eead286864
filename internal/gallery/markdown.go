package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/tuikit/veil/dialog"
	"github.com/tuikit/veil/internal/core/config"
	"github.com/tuikit/veil/internal/styles"
	"github.com/tuikit/veil/pkg/portal"
)

const (
	markdownWidth  = 64
	markdownHeight = 16
)

// fallbackDoc is shown when the configured docs patterns match nothing.
const fallbackDoc = `# veil

Accessible dialog primitives for terminal applications.

Point ` + "`docs.patterns`" + ` in your config at markdown files to
browse them here instead of this placeholder.
`

// newMarkdownDemo renders a markdown document inside a scrollable dialog.
// Scrolling is a plain line offset over the glamour output.
func newMarkdownDemo(cfg *config.Config, host *portal.Host) *Demo {
	demo := &Demo{
		Name: "Markdown",
		Desc: "glamour-rendered document in a dialog",
	}

	var (
		lines  []string
		source string
		offset int
	)

	d := dialog.New(host, dialog.WithID("markdown"))
	demo.Dialogs = []*Dialog{d}
	demo.Trigger = d.Trigger("Read the docs")

	closeBtn := d.Close("Close", dialog.WithCloseRender(buttonRender))
	d.Overlay(dialog.WithOverlayRender(scrimRender))
	d.Content("Documentation", "",
		dialog.WithOnOpenAutoFocus(func(*dialog.Event) {
			// (Re)render on every open so config edits show up.
			lines, source = renderDoc(cfg)
			offset = 0
		}),
		dialog.WithContentRender(func(_, _ int, _ dialog.Attrs) string {
			visible := lines
			if offset > len(visible) {
				offset = len(visible)
			}
			visible = visible[offset:]
			if len(visible) > markdownHeight {
				visible = visible[:markdownHeight]
			}

			body := lipgloss.NewStyle().
				Width(markdownWidth).
				Height(markdownHeight).
				Render(strings.Join(visible, "\n"))

			header := styles.DialogTitleStyle.Render(source)
			scroll := styles.DescStyle.Render(scrollIndicator(offset, len(lines)))
			return styles.DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
				header,
				"",
				body,
				scroll,
				lipgloss.JoinHorizontal(lipgloss.Top,
					closeBtn.Render(), "  ", dialogHint("j/k: scroll • esc: close")),
			))
		}))

	demo.routeKey = func(msg tea.KeyPressMsg) bool {
		switch msg.String() {
		case "down", "j":
			if offset < maxOffset(len(lines)) {
				offset++
			}
			return true
		case "up", "k":
			if offset > 0 {
				offset--
			}
			return true
		}
		return closeBtn.HandleKey(msg)
	}
	return demo
}

func maxOffset(total int) int {
	m := total - markdownHeight
	if m < 0 {
		return 0
	}
	return m
}

func scrollIndicator(offset, total int) string {
	if total <= markdownHeight {
		return ""
	}
	bottom := offset + markdownHeight
	if bottom > total {
		bottom = total
	}
	return fmt.Sprintf("lines %d-%d of %d", offset+1, bottom, total)
}

// renderDoc loads the first configured markdown document and renders it
// with glamour. Falls back to the embedded placeholder.
func renderDoc(cfg *config.Config) (lines []string, source string) {
	raw := fallbackDoc
	source = "built-in"

	if files, err := cfg.DocFiles(); err == nil && len(files) > 0 {
		if data, err := os.ReadFile(files[0]); err == nil {
			raw = string(data)
			source = filepath.Base(files[0])
		}
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		return strings.Split(raw, "\n"), source
	}

	out, err := renderer.Render(raw)
	if err != nil {
		return strings.Split(raw, "\n"), source
	}
	return strings.Split(strings.TrimRight(out, "\n"), "\n"), source
}
