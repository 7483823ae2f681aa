// Package app holds the root Bubble Tea model: one track, one player, a
// subscription feeding position and state into the view.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/strum-player/strum/internal/config"
	"github.com/strum-player/strum/internal/keymap"
	"github.com/strum-player/strum/internal/player"
	"github.com/strum-player/strum/internal/tags"
	"github.com/strum-player/strum/internal/ui/albumart"
)

// Model is the root application model.
type Model struct {
	Player *player.Player
	Sub    *player.Subscription
	Meta   *tags.Metadata
	Keys   keymap.Map
	Art    *albumart.Renderer

	SeekStep time.Duration

	State    player.State
	Position time.Duration
	Duration time.Duration

	TrackFormat string // "MP3", "FLAC", ...
	SampleRate  int
	FileSize    uint64

	ErrorMsg string

	Width  int
	Height int

	quitting bool
}

// New assembles the model. The player must already be started; the
// subscription and art renderer are owned by the model from here on.
func New(cfg *config.Config, p *player.Player, sub *player.Subscription, meta *tags.Metadata, art *albumart.Renderer) Model {
	m := Model{
		Player:   p,
		Sub:      sub,
		Meta:     meta,
		Keys:     keymap.Default(),
		Art:      art,
		SeekStep: cfg.SeekStep(),
		State:    p.State(),
		Duration: p.Duration(),
	}

	if art.Enabled() && meta != nil {
		art.SetCover(meta.CoverArt)
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.WatchPosition(),
		m.WatchState(),
		m.WatchError(),
		m.WatchDone(),
		WatchStderr(),
	)
}
