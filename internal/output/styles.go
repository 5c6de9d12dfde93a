package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals outside this block.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, features.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" file status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "overwritten" file status.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for the "removed" status.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (scope prefixes, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Styles groups the styles used by renderers.
type Styles struct {
	Bold  lipgloss.Style
	Muted lipgloss.Style
	Noun  lipgloss.Style
}

// GetStyles returns the renderer styles.
func GetStyles() Styles {
	return Styles{
		Bold:  lipgloss.NewStyle().Bold(true),
		Muted: StyleDim,
		Noun:  StyleNoun,
	}
}

// File status values reported after generation.
const (
	StatusCreated     = "created"
	StatusOverwritten = "overwritten"
	StatusRemoved     = "removed"
)

// StatusStyle returns the style for a file status. Unknown statuses are unstyled.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusOverwritten:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusRemoved:
		return lipgloss.NewStyle().Foreground(ColorRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
