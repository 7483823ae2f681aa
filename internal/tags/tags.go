// Package tags reads display metadata from audio files: title, artist and
// cover art. It is a read-only collaborator for the player; failures here
// are never fatal, every field has a defined fallback.
package tags

import "bytes"

// Fallback values used when a file carries no usable tag data.
const (
	FallbackTitle  = "Untitled audio"
	FallbackArtist = "No artist"
)

// File extensions with a dedicated fallback reader.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOGG  = ".ogg"
	ExtOGA  = ".oga"
	ExtWAV  = ".wav"
)

// Metadata is the one-shot record handed to display consumers at startup.
type Metadata struct {
	Path        string
	Title       string
	Artist      string
	Album       string
	TrackNumber int

	// CoverArt always holds a displayable image: the embedded picture,
	// folder art, or the generated default cover. CoverMIME is image/png
	// or image/jpeg.
	CoverArt  []byte
	CoverMIME string
}

// HasDefaultCover reports whether the cover fell back to the generated
// placeholder.
func (m *Metadata) HasDefaultCover() bool {
	return bytes.Equal(m.CoverArt, DefaultCover())
}

// applyFallbacks fills absent fields with their defined defaults.
func applyFallbacks(m *Metadata) {
	if m.Title == "" {
		m.Title = FallbackTitle
	}
	if m.Artist == "" {
		m.Artist = FallbackArtist
	}
}
