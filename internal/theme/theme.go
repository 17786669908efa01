// Package theme holds the colors and lipgloss styles rddi uses when it
// writes to a terminal.
package theme

import (
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for terminal output.
type Theme struct {
	IsDark bool

	// Semantic colors
	Primary   string
	Secondary string

	// Foreground
	FgMuted string

	// Status colors
	Success string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

// GlamourStyle names the glamour standard style matching the theme. When
// styling is disabled it returns the style meant for non-terminal output.
func (t *Theme) GlamourStyle(enabled bool) string {
	switch {
	case !enabled:
		return "notty"
	case t.IsDark:
		return "dark"
	default:
		return "light"
	}
}

func (t *Theme) buildStyles() *Styles {
	return &Styles{
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		Heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)).
			Bold(true),
		Command: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),
	}
}
