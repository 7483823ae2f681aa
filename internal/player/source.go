package player

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// File extensions with a decoder available.
const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
	extOGG  = ".ogg"
	extOGA  = ".oga"
)

// Source is a decoded, seekable audio stream. It is built once from a file
// path; ownership transfers into the playback worker on Start and the
// caller must not touch it afterward.
type Source struct {
	Path     string
	Streamer beep.StreamSeekCloser
	Format   beep.Format
	Duration time.Duration
	Size     int64 // file size in bytes

	file *os.File
}

// IsSupported reports whether the path has a decodable extension.
func IsSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extWAV, extOGG, extOGA:
		return true
	}
	return false
}

// Load opens and decodes an audio file. The file stays open for the life of
// the returned Source so the decoder can seek within it; the byte length
// comes from stat and is carried for display and diagnostics.
// Any error here is a startup failure the caller treats as fatal.
func Load(path string) (*Source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupported(path) {
		return nil, fmt.Errorf("unsupported format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case extMP3:
		streamer, format, err = mp3.Decode(f)
	case extFLAC:
		// Skip ID3v2 tag if present (some taggers add it to FLAC files)
		if err := skipID3v2(f); err != nil {
			f.Close()
			return nil, err
		}
		streamer, format, err = flac.Decode(f)
	case extWAV:
		streamer, format, err = wav.Decode(f)
	case extOGG, extOGA:
		streamer, format, err = vorbis.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	return &Source{
		Path:     path,
		Streamer: streamer,
		Format:   format,
		Duration: format.SampleRate.D(streamer.Len()),
		Size:     fi.Size(),
		file:     f,
	}, nil
}

// Close releases the decoder and the underlying file. Called by the sink
// on teardown; callers that never hand the source to a player may call it
// directly.
func (s *Source) Close() error {
	serr := s.Streamer.Close()
	ferr := s.file.Close()
	if serr != nil {
		return serr
	}
	return ferr
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of the file.
// The FLAC decoder rejects files with a prepended tag.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil || n < 10 {
		_, serr := r.Seek(0, io.SeekStart)
		return serr
	}

	if string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// ID3v2 size is a syncsafe integer in bytes 6-9: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])

	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
