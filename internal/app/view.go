package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/strum-player/strum/internal/ui/playerbar"
	"github.com/strum-player/strum/internal/ui/render"
	"github.com/strum-player/strum/internal/ui/styles"
)

const (
	artTopRow  = 2 // 1-based row where the cover image starts
	artLeftCol = 3
)

// viewChromeHeight is everything below the cover: track panel, status
// line, help line, and their surrounding blank lines.
func viewChromeHeight() int {
	return playerbar.Height() + 4
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.Width == 0 {
		return "Loading..."
	}

	contentWidth := max(m.Width-2*(artLeftCol-1), 16)

	var b strings.Builder
	b.WriteString("\n")

	// Cover area. The image itself rides on escape sequences appended
	// below; the layout only reserves blank lines for it.
	if m.Art.HasImage() || m.Art.Enabled() {
		if ph := m.Art.Placeholder(); ph != "" {
			b.WriteString(ph)
			b.WriteString("\n\n")
		}
	}

	bar := playerbar.Render(playerbar.State{
		PlayState:   m.State,
		Title:       m.Meta.Title,
		Artist:      m.Meta.Artist,
		Album:       m.Meta.Album,
		TrackNumber: m.Meta.TrackNumber,
		Position:    m.Position,
		Duration:    m.Duration,
		Format:      m.TrackFormat,
		SampleRate:  m.SampleRate,
		FileSize:    m.FileSize,
	}, contentWidth)
	b.WriteString(indent(bar, artLeftCol-1))
	b.WriteString("\n\n")

	if m.ErrorMsg != "" {
		line := styles.T().S().Error.Render(render.Truncate(m.ErrorMsg, contentWidth))
		b.WriteString(indent(line, artLeftCol-1))
	}
	b.WriteString("\n")

	help := styles.T().S().Subtle.Render("space play/pause · ←/→ seek · q quit")
	b.WriteString(indent(help, artLeftCol-1))

	view := b.String()

	// Kitty/Sixel commands live outside the text layout: transmit is
	// prepended (once per cover and size), placement appended.
	if transmit := m.Art.Prepare(); transmit != "" {
		view = transmit + view
	}
	view += m.Art.Place(artTopRow, artLeftCol)

	return view
}

func indent(s string, n int) string {
	if n <= 0 {
		return s
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > 0 {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
