package albumart

import (
	"bytes"
	"fmt"
	"image"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-sixel"
)

// placeCounter makes every Place output unique. Bubble Tea's diff
// renderer would otherwise skip re-sending identical sixel data when
// only surrounding text changed, leaving the image partially erased.
var placeCounter uint64

// SixelProtocol implements ImageProtocol using Sixel graphics. Unlike
// Kitty there is no terminal-side image memory, so encoded data is
// cached here and re-emitted on every placement.
type SixelProtocol struct {
	mu     sync.RWMutex
	images map[uint32]string
	cellW  int
	cellH  int
}

// NewSixelProtocol creates a SixelProtocol, querying the terminal for
// actual cell pixel dimensions.
func NewSixelProtocol() *SixelProtocol {
	cellW, cellH := getCellSize()
	return &SixelProtocol{
		images: make(map[uint32]string),
		cellW:  cellW,
		cellH:  cellH,
	}
}

func (s *SixelProtocol) Prepare(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	enc := sixel.NewEncoder(&buf)
	enc.Dither = true

	if err := enc.Encode(img); err != nil {
		return "", fmt.Errorf("encode sixel: %w", err)
	}

	s.mu.Lock()
	s.images[id] = buf.String()
	s.mu.Unlock()

	return "", nil
}

func (s *SixelProtocol) Place(id uint32, row, col, _, _ int) string {
	s.mu.RLock()
	data, ok := s.images[id]
	s.mu.RUnlock()

	if !ok {
		return ""
	}

	// Save cursor, move to position, emit sixel data, restore cursor.
	// The counter rides in a no-op SGR sequence to defeat output
	// deduplication.
	seq := atomic.AddUint64(&placeCounter, 1)
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	sb.WriteString(data)
	fmt.Fprintf(&sb, "\x1b[u\x1b[%dm\x1b[0m", seq%255+1)

	return sb.String()
}

func (s *SixelProtocol) Delete(id uint32) string {
	s.mu.Lock()
	delete(s.images, id)
	s.mu.Unlock()

	return ""
}

func (s *SixelProtocol) Placeholder(width, height int) string {
	return blankPlaceholder(width, height)
}

// TargetPixelSize uses the measured cell size, keeping one row of
// vertical margin so an image near the bottom cannot scroll the screen.
func (s *SixelProtocol) TargetPixelSize(widthCells, heightCells int) (int, int) {
	if heightCells > 1 {
		heightCells--
	}
	return widthCells * s.cellW, heightCells * s.cellH
}
