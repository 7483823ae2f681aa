package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the player UI.
type Theme struct {
	// Gradient endpoints, used for the title and the progress fill.
	Accent    lipgloss.Color
	AccentAlt lipgloss.Color

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Borders
	Border lipgloss.Color

	// Status colors
	Error lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base   lipgloss.Style // Default text
	Muted  lipgloss.Style // Dimmed text
	Subtle lipgloss.Style // Very dim text
	Title  lipgloss.Style // Bold, bright
	Accent lipgloss.Style // Accent-colored text
	Error  lipgloss.Style
}

var current = Theme{
	Accent:    lipgloss.Color("#7aa2f7"),
	AccentAlt: lipgloss.Color("#bb9af7"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Border: lipgloss.Color("#585858"),

	Error: lipgloss.Color("#ff5555"),
}

// Init overrides the gradient accent colors. Call once at startup with
// the configured colors.
func Init(accent, accentAlt string) {
	if accent != "" {
		current.Accent = lipgloss.Color(accent)
	}
	if accentAlt != "" {
		current.AccentAlt = lipgloss.Color(accentAlt)
	}
	current.styles = nil
}

// T returns the active theme.
func T() *Theme {
	return &current
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Accent: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(t.Error),
	}
}
