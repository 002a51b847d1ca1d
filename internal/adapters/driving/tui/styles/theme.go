// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Good marks high scores.
	Good lipgloss.Color

	// Fair marks middling scores.
	Fair lipgloss.Color

	// Poor marks low scores and errors.
	Poor lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2563EB"), // Blue
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Good:       lipgloss.Color("#A6E3A1"), // Green
		Fair:       lipgloss.Color("#F9E2AF"), // Yellow
		Poor:       lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Good style for high scores.
	Good lipgloss.Style

	// Fair style for middling scores.
	Fair lipgloss.Style

	// Poor style for low scores.
	Poor lipgloss.Style

	// BadgeGood is a filled badge for high composite scores.
	BadgeGood lipgloss.Style

	// BadgeFair is a filled badge for middling composite scores.
	BadgeFair lipgloss.Style

	// BadgePoor is a filled badge for low composite scores.
	BadgePoor lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1E1E2E")).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Poor),

		Good: lipgloss.NewStyle().
			Foreground(theme.Good),

		Fair: lipgloss.NewStyle().
			Foreground(theme.Fair),

		Poor: lipgloss.NewStyle().
			Foreground(theme.Poor),

		BadgeGood: badge.Background(theme.Good),

		BadgeFair: badge.Background(theme.Fair),

		BadgePoor: badge.Background(theme.Poor),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Score returns the text style for a 0-100 score.
func (s *Styles) Score(score float64) lipgloss.Style {
	switch {
	case score >= 80:
		return s.Good
	case score >= 60:
		return s.Fair
	default:
		return s.Poor
	}
}

// Badge returns the filled badge style for a 0-100 score.
func (s *Styles) Badge(score float64) lipgloss.Style {
	switch {
	case score >= 80:
		return s.BadgeGood
	case score >= 60:
		return s.BadgeFair
	default:
		return s.BadgePoor
	}
}
