package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/strum-player/strum/internal/app"
	"github.com/strum-player/strum/internal/config"
	"github.com/strum-player/strum/internal/errmsg"
	"github.com/strum-player/strum/internal/icons"
	"github.com/strum-player/strum/internal/mpris"
	"github.com/strum-player/strum/internal/player"
	"github.com/strum-player/strum/internal/stderr"
	"github.com/strum-player/strum/internal/tags"
	"github.com/strum-player/strum/internal/ui/albumart"
	"github.com/strum-player/strum/internal/ui/styles"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <audio file>\n", os.Args[0])
		os.Exit(1)
	}
	path := config.ExpandPath(os.Args[1])

	cfg, err := config.Load()
	if err != nil {
		fatal(errmsg.Format(errmsg.OpInitialize, err))
	}

	icons.Init(cfg.Icons)
	styles.Init(cfg.GradientColors())

	// Trap fd 2 before the audio device opens: ALSA writes straight to
	// it and would shred the TUI. Failure to trap is not fatal.
	_ = stderr.Start()
	defer stderr.Stop()

	// Metadata never fails; missing tags come back as fallbacks and the
	// generated default cover.
	meta := tags.ReadMetadata(path)

	src, err := player.Load(path)
	if err != nil {
		fatal(errmsg.FormatWith(errmsg.OpDecode, path, err))
	}

	p := player.New(src, player.WithPollInterval(cfg.PollInterval()))
	if err := p.Start(); err != nil {
		fatal(errmsg.Format(errmsg.OpOpenDevice, err))
	}
	sub := p.Subscribe()

	adapter, err := mpris.New(p, meta)
	if err != nil {
		// Desktop integration is optional; playback works without it.
		adapter = nil
	}

	var art *albumart.Renderer
	if cfg.ShowAlbumArt() {
		art = albumart.New(albumart.Detect())
	} else {
		art = albumart.New(nil)
	}

	m := app.New(cfg, p, sub, meta, art)
	m.TrackFormat = strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), "."))
	m.SampleRate = int(src.Format.SampleRate)
	m.FileSize = uint64(src.Size) //nolint:gosec // stat sizes are non-negative

	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, runErr := prog.Run()

	sub.Close()
	_ = p.Close()
	if adapter != nil {
		_ = adapter.Close()
	}

	if runErr != nil {
		fatal(fmt.Sprintf("Failed to run UI: %v", runErr))
	}
}

// fatal reports on the pre-trap stderr, restores fd 2, and exits.
// Startup failures have no recovery path.
func fatal(msg string) {
	stderr.WriteOriginal(msg + "\n")
	stderr.Stop()
	os.Exit(1)
}
