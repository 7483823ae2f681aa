package tags

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// MIME types the display layer can decode.
const (
	MIMEPNG  = "image/png"
	MIMEJPEG = "image/jpeg"
)

// Common cover art filenames to look for in the track's folder.
var coverArtFilenames = []string{
	"cover.jpg", "cover.jpeg", "cover.png",
	"folder.jpg", "folder.jpeg", "folder.png",
	"album.jpg", "album.jpeg", "album.png",
	"front.jpg", "front.jpeg", "front.png",
}

// SupportedCoverMIME reports whether the display layer can decode an image
// of the given MIME type.
func SupportedCoverMIME(mime string) bool {
	switch strings.ToLower(mime) {
	case MIMEPNG, MIMEJPEG:
		return true
	}
	return false
}

// SelectCover picks the cover to display: the candidate if it is present
// and of a supported MIME type, otherwise the generated default cover.
func SelectCover(data []byte, mime string) (cover []byte, coverMIME string) {
	if len(data) > 0 && SupportedCoverMIME(mime) {
		return data, strings.ToLower(mime)
	}
	return DefaultCover(), MIMEPNG
}

// ExtractCoverArt reads cover art for an audio file. It first tries the
// embedded picture, then common cover image files in the same directory.
// Returns nil data if no art is found.
func ExtractCoverArt(path string) (data []byte, mimeType string, err error) {
	data, mimeType, err = extractEmbeddedArt(path)
	if err != nil {
		return nil, "", err
	}
	if data != nil {
		return data, mimeType, nil
	}

	return findFolderArt(filepath.Dir(path))
}

// extractEmbeddedArt reads the embedded picture from the file's metadata.
func extractEmbeddedArt(path string) (data []byte, mimeType string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, "", err
	}

	pic := m.Picture()
	if pic == nil {
		return nil, "", nil
	}

	return pic.Data, pic.MIMEType, nil
}

// findFolderArt looks for common cover art files in the given directory.
func findFolderArt(dir string) (data []byte, mimeType string, err error) {
	for _, filename := range coverArtFilenames {
		imgPath := filepath.Join(dir, filename)
		data, err := os.ReadFile(imgPath)
		if err != nil {
			continue
		}

		switch strings.ToLower(filepath.Ext(filename)) {
		case ".jpg", ".jpeg":
			mimeType = MIMEJPEG
		case ".png":
			mimeType = MIMEPNG
		}

		return data, mimeType, nil
	}

	return nil, "", nil
}
