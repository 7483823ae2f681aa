package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/strum-player/strum/internal/icons"
	"github.com/strum-player/strum/internal/player"
)

func TestRenderProgressBarWidth(t *testing.T) {
	icons.Init("none")

	bar := RenderProgressBar(30*time.Second, 60*time.Second, 40, player.Playing)
	if w := lipgloss.Width(bar); w != 40 {
		t.Errorf("bar width = %d, want 40", w)
	}
	if !strings.Contains(bar, knobBlock) {
		t.Error("bar should contain the knob")
	}
}

func TestRenderProgressBarKnobAtEdges(t *testing.T) {
	icons.Init("none")

	start := RenderProgressBar(0, 60*time.Second, 40, player.Playing)
	if !strings.Contains(start, knobBlock+emptyBlock) {
		t.Error("knob should sit at the left edge at position zero")
	}
	if strings.Contains(start, filledBlock) {
		t.Error("no fill expected at position zero")
	}

	end := RenderProgressBar(60*time.Second, 60*time.Second, 40, player.Playing)
	if !strings.Contains(end, filledBlock+knobBlock) {
		t.Error("knob should sit at the right edge at full position")
	}
	if strings.Contains(end, emptyBlock) {
		t.Error("no empty cells expected at full position")
	}
}

func TestRenderProgressBarTooNarrow(t *testing.T) {
	icons.Init("none")

	bar := RenderProgressBar(0, time.Minute, 4, player.Paused)
	if bar != icons.Pause() {
		t.Errorf("narrow bar = %q, want just the status icon", bar)
	}
}

func TestRenderStatusIcon(t *testing.T) {
	icons.Init("none")

	tests := []struct {
		state    player.State
		expected string
	}{
		{player.Playing, ">"},
		{player.Paused, "||"},
		{player.Finished, "[]"},
		{player.Uninitialized, " "},
	}

	for _, tt := range tests {
		if got := statusIcon(tt.state); got != tt.expected {
			t.Errorf("statusIcon(%v) = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestRenderLines(t *testing.T) {
	icons.Init("none")

	s := State{
		PlayState:   player.Playing,
		Title:       "Test Track",
		Artist:      "Test Artist",
		Album:       "Test Album",
		TrackNumber: 3,
		Position:    61 * time.Second,
		Duration:    158 * time.Second,
		Format:      "FLAC",
		SampleRate:  44100,
		FileSize:    32 * 1024 * 1024,
	}

	out := Render(s, 60)
	lines := strings.Split(out, "\n")
	if len(lines) != Height() {
		t.Fatalf("Render produced %d lines, want %d", len(lines), Height())
	}

	if !strings.Contains(out, "Test Track") {
		t.Error("title missing from output")
	}
	if !strings.Contains(out, "1:01 / 2:38") {
		t.Error("time line missing or wrong")
	}
	if !strings.Contains(out, "44.1 kHz") {
		t.Error("sample rate missing from detail line")
	}
	if !strings.Contains(out, "32 MiB") {
		t.Error("file size missing from detail line")
	}
}

func TestRenderFallbackTitle(t *testing.T) {
	icons.Init("none")

	out := Render(State{PlayState: player.Paused, Duration: time.Minute}, 60)
	if !strings.Contains(out, "Unknown Track") {
		t.Error("empty title should render as Unknown Track")
	}
}

func TestFormatDetail(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		expected string
	}{
		{
			name:     "all fields",
			state:    State{Format: "MP3", SampleRate: 48000, FileSize: 1024},
			expected: "MP3 · 48.0 kHz · 1.0 KiB",
		},
		{
			name:     "format only",
			state:    State{Format: "FLAC"},
			expected: "FLAC",
		},
		{
			name:     "nothing known",
			state:    State{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDetail(tt.state); got != tt.expected {
				t.Errorf("formatDetail() = %q, want %q", got, tt.expected)
			}
		})
	}
}
