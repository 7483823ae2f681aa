package tags

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// ReadMetadata reads the display metadata for an audio file. It never
// fails: unreadable or missing tags produce the defined fallbacks, and the
// cover always resolves to a displayable image.
func ReadMetadata(path string) *Metadata {
	m, err := readTag(path)
	if err != nil {
		m = &Metadata{Path: path}
	}
	applyFallbacks(m)

	data, mime, err := ExtractCoverArt(path)
	if err != nil {
		data, mime = nil, ""
	}
	m.CoverArt, m.CoverMIME = SelectCover(data, mime)

	return m
}

// readTag parses the file's tags, falling back to format-specific readers
// when the generic parser fails.
func readTag(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		switch strings.ToLower(filepath.Ext(path)) {
		case ExtMP3:
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			return readMP3WithID3v2Fallback(path)
		case ExtFLAC, ExtOGG, ExtOGA:
			// dhowden/tag can fail on some FLAC and Ogg files
			return readWithTaglib(path)
		}
		return nil, err
	}

	track, _ := m.Track()

	return &Metadata{
		Path:        path,
		Title:       m.Title(),
		Artist:      m.Artist(),
		Album:       m.Album(),
		TrackNumber: track,
	}, nil
}
