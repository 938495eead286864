// Package styles holds the shared lipgloss styles for the veil gallery.
package styles

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"
)

// Tokyo Night color palette.
var (
	ColorGreen  = lipgloss.Color("#9ece6a") // green
	ColorYellow = lipgloss.Color("#e0af68") // yellow
	ColorBlue   = lipgloss.Color("#7aa2f7") // blue
	ColorGray   = lipgloss.Color("#565f89") // comment
	ColorWhite  = lipgloss.Color("#c0caf5") // foreground
	ColorBg     = lipgloss.Color("#1a1b26") // background
	ColorDim    = lipgloss.Color("#3b4261") // dim highlight
)

var (
	// Title style for the gallery header.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBlue).
			PaddingLeft(1)

	// Selected menu row style (matches border color).
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	// Normal menu row style (no color, uses terminal default).
	NormalStyle = lipgloss.NewStyle()

	// Subtle description text.
	DescStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	// Help line at the bottom of the screen.
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			PaddingLeft(1)

	// State badge for the transition demo.
	StateStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)
)

// Dialog box styles.
var (
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBlue).
			Padding(1, 2)

	DialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWhite)

	DialogHelpStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			MarginTop(1)

	ButtonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorDim).
			Foreground(lipgloss.Color("#a9b1d6"))

	ButtonFocusedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(ColorBlue).
				Foreground(ColorBg).
				Bold(true)
)

// Banner ASCII art for the header.
const Banner = `
 ╦  ╦╔═╗╦╦
 ╚╗╔╝║╣ ║║
  ╚╝ ╚═╝╩╩═╝`

// BannerStyle styles the ASCII art banner.
var BannerStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true).
	PaddingLeft(1).
	PaddingBottom(1)

// Button renders a dialog button with the focus treatment.
func Button(label string, focused bool) string {
	if focused {
		return ButtonFocusedStyle.Render(label)
	}
	return ButtonStyle.Render(label)
}

// Scrim renders the dim overlay backdrop at the given size.
func Scrim(width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	row := strings.Repeat("░", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return lipgloss.NewStyle().
		Foreground(ColorDim).
		Render(strings.Join(rows, "\n"))
}
