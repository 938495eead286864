package gallery

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/tuikit/veil/internal/styles"
	"github.com/tuikit/veil/pkg/dismiss"
)

// View renders the menu, then lets the portal host composite any open
// dialogs over it.
func (m Model) View() tea.View {
	newView := func(content string) tea.View {
		v := tea.NewView(content)
		v.AltScreen = true
		if m.cfg.Mouse {
			v.MouseMode = tea.MouseModeCellMotion
		}
		return v
	}

	if m.quitting {
		return newView("")
	}

	background := m.renderMenu()
	return newView(m.host.Render(background))
}

func (m Model) renderMenu() string {
	var b strings.Builder

	b.WriteString(styles.BannerStyle.Render(styles.Banner))
	b.WriteString("\n")
	b.WriteString(styles.TitleStyle.Render("Dialog gallery"))
	b.WriteString("\n\n")

	for i, demo := range m.demos {
		row := m.renderRow(i, demo)
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "↑/↓: move • enter: open • " + m.handler.HelpString()
	if m.host.BackgroundLocked() {
		help = m.spinner.View() + " dialog open; background input locked"
	}
	b.WriteString(styles.HelpStyle.Render(help))

	return lipgloss.NewStyle().Width(m.width).Height(m.height).Render(b.String())
}

func (m Model) renderRow(i int, demo *Demo) string {
	// Rows are plain text plus a hit rect so mouse presses reach the
	// trigger. Row layout must match the WriteString calls above: banner
	// occupies 5 lines, title 1, blank 1.
	const firstRowY = 7

	marker := "  "
	style := styles.NormalStyle
	if i == m.cursor {
		marker = "> "
		style = styles.SelectedStyle
	}

	label := style.Render(demo.Trigger.Label())
	line := " " + marker + label + "  " + styles.DescStyle.Render(demo.Desc)
	if demo.status != nil {
		if s := demo.status(); s != "" {
			line += "  " + s
		}
	}

	demo.Trigger.SetHitRect(dismiss.Rect{
		X: 0,
		Y: firstRowY + i,
		W: lipgloss.Width(line),
		H: 1,
	})
	return line
}
