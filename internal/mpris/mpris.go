//go:build linux

// Package mpris exposes the player on the session bus so desktop media
// controls (playerctl, media keys) can drive playback.
package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/strum-player/strum/internal/player"
	"github.com/strum-player/strum/internal/tags"
)

// Controller is the slice of the player the adapter needs.
type Controller interface {
	Send(cmd player.Command) error
	State() player.State
	Position() time.Duration
	Duration() time.Duration
}

// Adapter connects the player to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts an MPRIS adapter for a single track.
func New(ctrl Controller, meta *tags.Metadata) (*Adapter, error) {
	a := &Adapter{}

	rootAdapter := &rootAdapter{}
	playerAdapter := &playerAdapter{
		ctrl: ctrl,
		meta: meta,
	}

	a.server = server.NewServer("strum", rootAdapter, playerAdapter)

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Strum", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav", "audio/ogg"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	ctrl Controller
	meta *tags.Metadata
}

// Next has no queue to advance in a single-track player.
func (p *playerAdapter) Next() error {
	return nil
}

func (p *playerAdapter) Previous() error {
	return nil
}

func (p *playerAdapter) Pause() error {
	if p.ctrl.State().CanPause() {
		return p.ctrl.Send(player.Pause{})
	}
	return nil
}

func (p *playerAdapter) PlayPause() error {
	switch st := p.ctrl.State(); {
	case st.CanPause():
		return p.ctrl.Send(player.Pause{})
	case st.CanResume():
		return p.ctrl.Send(player.Play{})
	}
	return nil
}

// Stop pauses: stopping playback entirely would tear the program down,
// which is not what a media-key Stop means for a single-track player.
func (p *playerAdapter) Stop() error {
	return p.Pause()
}

func (p *playerAdapter) Play() error {
	if p.ctrl.State().CanResume() {
		return p.ctrl.Send(player.Play{})
	}
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	d := time.Duration(offset) * time.Microsecond
	if d >= 0 {
		return p.ctrl.Send(player.FastForward{Amount: d})
	}
	return p.ctrl.Send(player.Rewind{Amount: -d})
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	target := time.Duration(position) * time.Microsecond
	delta := target - p.ctrl.Position()
	if delta >= 0 {
		return p.ctrl.Send(player.FastForward{Amount: delta})
	}
	return p.ctrl.Send(player.Rewind{Amount: -delta})
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.ctrl.State() {
	case player.Playing:
		return types.PlaybackStatusPlaying, nil
	case player.Paused:
		return types.PlaybackStatusPaused, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	if p.meta == nil {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(p.meta.Path)),
		Length:      types.Microseconds(p.ctrl.Duration().Microseconds()),
		Title:       p.meta.Title,
		Artist:      []string{p.meta.Artist},
		Album:       p.meta.Album,
		TrackNumber: p.meta.TrackNumber,
	}

	if artPath := findAlbumArtFile(p.meta.Path); artPath != "" {
		meta.ArtUrl = "file://" + artPath
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return p.ctrl.Position().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
