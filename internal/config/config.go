package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Icons    string `koanf:"icons"`     // "nerd", "unicode", or "none"
	AlbumArt *bool  `koanf:"album_art"` // render cover art when the terminal supports it (default: true)

	// Playback settings
	Playback PlaybackConfig `koanf:"playback"`

	// Theme settings
	Theme ThemeConfig `koanf:"theme"`
}

// PlaybackConfig holds playback tuning.
type PlaybackConfig struct {
	SeekStepSeconds int `koanf:"seek_step_seconds"` // seconds skipped per seek keypress (default: 5)
	PollIntervalMs  int `koanf:"poll_interval_ms"`  // position update interval in milliseconds (default: 100)
}

// ThemeConfig holds the accent colors used for the progress bar and
// title gradients.
type ThemeConfig struct {
	GradientStart string `koanf:"gradient_start"` // hex color, e.g. "#7aa2f7"
	GradientEnd   string `koanf:"gradient_end"`   // hex color, e.g. "#bb9af7"
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// XDG config dir first, local config.toml wins.
		filepath.Join(xdg.ConfigHome, "strum", "config.toml"),
		"config.toml",
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// SeekStep returns the configured seek step with the default applied.
func (c *Config) SeekStep() time.Duration {
	if c.Playback.SeekStepSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.Playback.SeekStepSeconds) * time.Second
}

// PollInterval returns the configured position update interval with the
// default applied. Values below 10ms are treated as unset.
func (c *Config) PollInterval() time.Duration {
	if c.Playback.PollIntervalMs < 10 {
		return 100 * time.Millisecond
	}
	return time.Duration(c.Playback.PollIntervalMs) * time.Millisecond
}

// ShowAlbumArt returns true unless album art was explicitly disabled.
func (c *Config) ShowAlbumArt() bool {
	return c.AlbumArt == nil || *c.AlbumArt
}

// GradientColors returns the theme accent colors with defaults applied.
func (c *Config) GradientColors() (start, end string) {
	start = c.Theme.GradientStart
	if start == "" {
		start = "#7aa2f7"
	}
	end = c.Theme.GradientEnd
	if end == "" {
		end = "#bb9af7"
	}
	return start, end
}
