package tags

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestSupportedCoverMIME(t *testing.T) {
	tests := []struct {
		mime string
		want bool
	}{
		{"image/png", true},
		{"image/jpeg", true},
		{"image/PNG", true},
		{"image/gif", false},
		{"image/webp", false},
		{"", false},
		{"No mime type", false},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			if got := SupportedCoverMIME(tt.mime); got != tt.want {
				t.Errorf("SupportedCoverMIME(%q) = %v, want %v", tt.mime, got, tt.want)
			}
		})
	}
}

func TestSelectCoverKeepsSupportedImage(t *testing.T) {
	data := []byte{0xff, 0xd8, 0xff} // jpeg-ish bytes, content is not inspected
	cover, mime := SelectCover(data, "image/jpeg")

	if !bytes.Equal(cover, data) {
		t.Error("supported cover was replaced")
	}
	if mime != MIMEJPEG {
		t.Errorf("mime = %q, want %q", mime, MIMEJPEG)
	}
}

func TestSelectCoverFallsBackOnUnsupportedMIME(t *testing.T) {
	cover, mime := SelectCover([]byte{1, 2, 3}, "image/webp")

	if !bytes.Equal(cover, DefaultCover()) {
		t.Error("unsupported MIME type should yield the default cover")
	}
	if mime != MIMEPNG {
		t.Errorf("mime = %q, want %q", mime, MIMEPNG)
	}
}

func TestSelectCoverFallsBackOnMissingData(t *testing.T) {
	cover, mime := SelectCover(nil, "image/png")

	if !bytes.Equal(cover, DefaultCover()) {
		t.Error("missing data should yield the default cover")
	}
	if mime != MIMEPNG {
		t.Errorf("mime = %q, want %q", mime, MIMEPNG)
	}
}

func TestDefaultCoverIsValidPNG(t *testing.T) {
	data := DefaultCover()
	if len(data) == 0 {
		t.Fatal("default cover is empty")
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatal("default cover does not start with the PNG magic")
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode default cover: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != defaultCoverSize || b.Dy() != defaultCoverSize {
		t.Errorf("default cover is %dx%d, want %dx%d", b.Dx(), b.Dy(), defaultCoverSize, defaultCoverSize)
	}

	// Stable across calls: rendered once, reused.
	if !bytes.Equal(data, DefaultCover()) {
		t.Error("DefaultCover not stable across calls")
	}
}

func TestFindFolderArt(t *testing.T) {
	dir := t.TempDir()
	want := []byte("jpeg bytes")
	if err := os.WriteFile(filepath.Join(dir, "cover.jpg"), want, 0o644); err != nil {
		t.Fatal(err)
	}

	data, mime, err := findFolderArt(dir)
	if err != nil {
		t.Fatalf("findFolderArt: %v", err)
	}
	if !bytes.Equal(data, want) {
		t.Errorf("data = %q, want %q", data, want)
	}
	if mime != MIMEJPEG {
		t.Errorf("mime = %q, want %q", mime, MIMEJPEG)
	}
}

func TestFindFolderArtNone(t *testing.T) {
	data, mime, err := findFolderArt(t.TempDir())
	if err != nil {
		t.Fatalf("findFolderArt: %v", err)
	}
	if data != nil || mime != "" {
		t.Errorf("expected no art, got %d bytes (%q)", len(data), mime)
	}
}
