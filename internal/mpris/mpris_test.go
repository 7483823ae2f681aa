//go:build linux

package mpris

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/strum-player/strum/internal/player"
	"github.com/strum-player/strum/internal/tags"
)

// fakeController records commands instead of driving a real player.
type fakeController struct {
	state    player.State
	position time.Duration
	duration time.Duration
	sent     []player.Command
}

func (f *fakeController) Send(cmd player.Command) error {
	f.sent = append(f.sent, cmd)
	return nil
}

func (f *fakeController) State() player.State     { return f.state }
func (f *fakeController) Position() time.Duration { return f.position }
func (f *fakeController) Duration() time.Duration { return f.duration }

func TestPlayPauseByState(t *testing.T) {
	tests := []struct {
		name     string
		state    player.State
		expected player.Command
	}{
		{"playing pauses", player.Playing, player.Pause{}},
		{"paused resumes", player.Paused, player.Play{}},
		{"finished is ignored", player.Finished, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := &fakeController{state: tt.state}
			pa := &playerAdapter{ctrl: ctrl}

			if err := pa.PlayPause(); err != nil {
				t.Fatalf("PlayPause() error = %v", err)
			}

			if tt.expected == nil {
				if len(ctrl.sent) != 0 {
					t.Errorf("expected no command, got %#v", ctrl.sent)
				}
				return
			}
			if len(ctrl.sent) != 1 || ctrl.sent[0] != tt.expected {
				t.Errorf("sent = %#v, want [%#v]", ctrl.sent, tt.expected)
			}
		})
	}
}

func TestStopMapsToPause(t *testing.T) {
	ctrl := &fakeController{state: player.Playing}
	pa := &playerAdapter{ctrl: ctrl}

	if err := pa.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if len(ctrl.sent) != 1 || ctrl.sent[0] != (player.Pause{}) {
		t.Errorf("sent = %#v, want [Pause]", ctrl.sent)
	}
}

func TestSeekSign(t *testing.T) {
	ctrl := &fakeController{state: player.Playing}
	pa := &playerAdapter{ctrl: ctrl}

	if err := pa.Seek(types.Microseconds(2_000_000)); err != nil {
		t.Fatal(err)
	}
	if err := pa.Seek(types.Microseconds(-3_000_000)); err != nil {
		t.Fatal(err)
	}

	want := []player.Command{
		player.FastForward{Amount: 2 * time.Second},
		player.Rewind{Amount: 3 * time.Second},
	}
	if len(ctrl.sent) != len(want) {
		t.Fatalf("sent %d commands, want %d", len(ctrl.sent), len(want))
	}
	for i := range want {
		if ctrl.sent[i] != want[i] {
			t.Errorf("sent[%d] = %#v, want %#v", i, ctrl.sent[i], want[i])
		}
	}
}

func TestSetPositionComputesDelta(t *testing.T) {
	ctrl := &fakeController{state: player.Playing, position: 30 * time.Second}
	pa := &playerAdapter{ctrl: ctrl}

	// Forward of current position.
	if err := pa.SetPosition("/track/1", types.Microseconds(45_000_000)); err != nil {
		t.Fatal(err)
	}
	// Behind current position.
	if err := pa.SetPosition("/track/1", types.Microseconds(10_000_000)); err != nil {
		t.Fatal(err)
	}

	if ctrl.sent[0] != (player.FastForward{Amount: 15 * time.Second}) {
		t.Errorf("sent[0] = %#v, want FastForward{15s}", ctrl.sent[0])
	}
	if ctrl.sent[1] != (player.Rewind{Amount: 20 * time.Second}) {
		t.Errorf("sent[1] = %#v, want Rewind{20s}", ctrl.sent[1])
	}
}

func TestPlaybackStatus(t *testing.T) {
	tests := []struct {
		state    player.State
		expected types.PlaybackStatus
	}{
		{player.Playing, types.PlaybackStatusPlaying},
		{player.Paused, types.PlaybackStatusPaused},
		{player.Finished, types.PlaybackStatusStopped},
		{player.Uninitialized, types.PlaybackStatusStopped},
	}

	for _, tt := range tests {
		pa := &playerAdapter{ctrl: &fakeController{state: tt.state}}
		got, err := pa.PlaybackStatus()
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.expected {
			t.Errorf("PlaybackStatus() in %v = %v, want %v", tt.state, got, tt.expected)
		}
	}
}

func TestMetadata(t *testing.T) {
	ctrl := &fakeController{duration: 158 * time.Second}
	pa := &playerAdapter{
		ctrl: ctrl,
		meta: &tags.Metadata{
			Path:        "/music/track.flac",
			Title:       "Test Track",
			Artist:      "Test Artist",
			Album:       "Test Album",
			TrackNumber: 4,
		},
	}

	meta, err := pa.Metadata()
	if err != nil {
		t.Fatal(err)
	}

	if meta.Title != "Test Track" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Length != types.Microseconds(158_000_000) {
		t.Errorf("Length = %d", meta.Length)
	}
	if meta.TrackNumber != 4 {
		t.Errorf("TrackNumber = %d", meta.TrackNumber)
	}
	if meta.TrackId == "" {
		t.Error("TrackId should not be empty")
	}
}

func TestFindAlbumArtFile(t *testing.T) {
	dir := t.TempDir()
	coverPath := filepath.Join(dir, "cover.jpg")
	if err := os.WriteFile(coverPath, []byte("fake"), 0o600); err != nil {
		t.Fatal(err)
	}

	trackPath := filepath.Join(dir, "track.mp3")
	if got := findAlbumArtFile(trackPath); got != coverPath {
		t.Errorf("findAlbumArtFile() = %q, want %q", got, coverPath)
	}
}

func TestFindAlbumArtFile_NotFound(t *testing.T) {
	trackPath := filepath.Join(t.TempDir(), "track.mp3")
	if got := findAlbumArtFile(trackPath); got != "" {
		t.Errorf("findAlbumArtFile() = %q, want empty", got)
	}
}
