//go:build !linux

package mpris

import (
	"time"

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

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ Controller, _ *tags.Metadata) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
