// Package playerbar renders the track panel: title, artist, album, the
// seek bar with its position knob, and the elapsed / total time line.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/strum-player/strum/internal/icons"
	"github.com/strum-player/strum/internal/player"
	"github.com/strum-player/strum/internal/ui/render"
	"github.com/strum-player/strum/internal/ui/styles"
)

// State holds everything needed to render the player bar.
type State struct {
	PlayState   player.State
	Title       string
	Artist      string
	Album       string
	TrackNumber int
	Position    time.Duration
	Duration    time.Duration
	Format      string // "MP3", "FLAC", ...
	SampleRate  int    // e.g. 44100
	FileSize    uint64 // bytes on disk
}

// Height returns the number of lines Render produces.
func Height() int {
	return 5
}

// Render returns the player bar for the given width.
func Render(s State, width int) string {
	if width < 16 {
		width = 16
	}
	st := styles.T().S()

	title := render.Sanitize(s.Title)
	if title == "" {
		title = "Unknown Track"
	}
	titleLine := styles.ApplyBoldGradient(render.Truncate(icons.FormatTitle(title), width))

	var infoParts []string
	if s.Artist != "" {
		infoParts = append(infoParts, render.Sanitize(s.Artist))
	}
	if s.Album != "" {
		infoParts = append(infoParts, icons.FormatAlbum(render.Sanitize(s.Album)))
	}
	if s.TrackNumber > 0 {
		infoParts = append(infoParts, fmt.Sprintf("#%d", s.TrackNumber))
	}
	infoLine := st.Muted.Render(render.Truncate(strings.Join(infoParts, " · "), width))

	barLine := RenderProgressBar(s.Position, s.Duration, width, s.PlayState)

	timeStr := fmt.Sprintf("%s / %s", FormatDuration(s.Position), FormatDuration(s.Duration))
	detail := formatDetail(s)
	timeLine := render.Row(st.Base.Render(timeStr), st.Subtle.Render(detail), width)

	return strings.Join([]string{
		titleLine,
		infoLine,
		"",
		barLine,
		timeLine,
	}, "\n")
}

// formatDetail builds the "FLAC · 44.1 kHz · 32 MiB" suffix, skipping
// whatever is unknown.
func formatDetail(s State) string {
	var parts []string
	if s.Format != "" {
		parts = append(parts, s.Format)
	}
	if s.SampleRate > 0 {
		parts = append(parts, fmt.Sprintf("%.1f kHz", float64(s.SampleRate)/1000))
	}
	if s.FileSize > 0 {
		parts = append(parts, humanize.IBytes(s.FileSize))
	}
	return strings.Join(parts, " · ")
}

var (
	filledBlock = "━"
	emptyBlock  = "─"
	knobBlock   = "●"
)

// RenderProgressBar renders the seek bar with a knob at the current
// position. Format: ▶  ━━━●──────
func RenderProgressBar(position, duration time.Duration, width int, st player.State) string {
	status := statusIcon(st)

	barWidth := width - lipgloss.Width(status) - 2
	if barWidth < 3 {
		return status
	}

	var ratio float64
	if duration > 0 {
		ratio = float64(position) / float64(duration)
	}
	knob := KnobOffset(barWidth-1, ratio)

	s := styles.T().S()
	var b strings.Builder
	b.WriteString(status)
	b.WriteString("  ")
	if knob > 0 {
		b.WriteString(styles.ApplyGradient(strings.Repeat(filledBlock, knob)))
	}
	b.WriteString(s.Accent.Render(knobBlock))
	if rest := barWidth - 1 - knob; rest > 0 {
		b.WriteString(s.Subtle.Render(strings.Repeat(emptyBlock, rest)))
	}
	return b.String()
}

func statusIcon(st player.State) string {
	switch st {
	case player.Playing:
		return icons.Play()
	case player.Paused:
		return icons.Pause()
	case player.Finished:
		return icons.Finished()
	default:
		return " "
	}
}
