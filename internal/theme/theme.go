// Package theme holds the CLI color palette and the styles built from it.
package theme

import (
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for CLI output.
type Theme struct {
	// Semantic colors
	Primary   string // hex, e.g. "#cba6f7"
	Secondary string

	FgMuted string
	Success string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

// Styles contains the pre-built lipgloss styles for a theme.
type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = &Styles{
			Title:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Bold(true),
			Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		}
	})
	return t.styles
}

var current = NewCatppuccinMocha()

// Current returns the active theme.
func Current() *Theme {
	return current
}

// NewCatppuccinMocha creates the default Catppuccin Mocha theme.
func NewCatppuccinMocha() *Theme {
	return &Theme{
		Primary:   "#cba6f7", // Mauve
		Secondary: "#89b4fa", // Blue

		FgMuted: "#a6adc8", // Subtext0
		Success: "#a6e3a1", // Green
	}
}
