package albumart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// Kitty graphics protocol escape sequences
const (
	escStart = "\x1b_G"
	escEnd   = "\x1b\\"
)

// KittyProtocol implements ImageProtocol using the Kitty graphics
// protocol. Images are transmitted once to terminal memory and then
// placed by ID.
type KittyProtocol struct{}

func (k *KittyProtocol) Prepare(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return transmitPNG(buf.Bytes(), id), nil
}

// transmitPNG builds the chunked transmission command for pre-encoded
// PNG data. a=t transmits without displaying, f=100 is PNG, q=2
// suppresses terminal responses.
func transmitPNG(pngData []byte, id uint32) string {
	encoded := base64.StdEncoding.EncodeToString(pngData)

	// The protocol caps each escape payload at 4096 bytes.
	const chunkSize = 4096

	var sb strings.Builder
	for i := 0; i < len(encoded); i += chunkSize {
		end := min(i+chunkSize, len(encoded))
		moreChunks := 0
		if end < len(encoded) {
			moreChunks = 1
		}

		sb.WriteString(escStart)
		if i == 0 {
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, moreChunks)
		} else {
			fmt.Fprintf(&sb, "m=%d;", moreChunks)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(escEnd)
	}

	return sb.String()
}

// Place returns the escape sequence to display a transmitted image.
// A fixed placement ID is used so repositioning replaces the previous
// placement instead of leaving ghost images.
func (k *KittyProtocol) Place(id uint32, row, col, width, height int) string {
	var sb strings.Builder

	// Save cursor, move to position, place image, restore cursor.
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	fmt.Fprintf(&sb, "%sa=p,i=%d,p=1,c=%d,r=%d,C=1,q=2;%s", escStart, id, width, height, escEnd)
	sb.WriteString("\x1b[u")

	return sb.String()
}

// Delete removes a transmitted image and all its placements.
func (k *KittyProtocol) Delete(id uint32) string {
	return fmt.Sprintf("%sa=d,d=i,i=%d,q=2;%s", escStart, id, escEnd)
}

func (k *KittyProtocol) Placeholder(width, height int) string {
	return blankPlaceholder(width, height)
}

// TargetPixelSize assumes the common 8x16 pixel cell.
func (k *KittyProtocol) TargetPixelSize(widthCells, heightCells int) (int, int) {
	return max(widthCells*8, 64), max(heightCells*16, 64)
}

// blankPlaceholder returns spaces covering the image area so lipgloss
// never measures raw image escapes.
func blankPlaceholder(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
