package tags

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"sync"
)

const defaultCoverSize = 256

var (
	defaultCoverOnce sync.Once
	defaultCoverPNG  []byte
)

// DefaultCover returns the generated placeholder cover, a PNG rendered once
// per process: a dark gradient with a vinyl-style ring.
func DefaultCover() []byte {
	defaultCoverOnce.Do(func() {
		defaultCoverPNG = renderDefaultCover()
	})
	return defaultCoverPNG
}

func renderDefaultCover() []byte {
	img := image.NewRGBA(image.Rect(0, 0, defaultCoverSize, defaultCoverSize))

	center := float64(defaultCoverSize) / 2
	outer := center * 0.78
	inner := center * 0.16

	for y := 0; y < defaultCoverSize; y++ {
		for x := 0; x < defaultCoverSize; x++ {
			// Diagonal background gradient.
			t := float64(x+y) / float64(2*defaultCoverSize-2)
			c := color.RGBA{
				R: uint8(24 + t*22),
				G: uint8(26 + t*26),
				B: uint8(38 + t*44),
				A: 255,
			}

			// Disc ring on top of the gradient.
			dx, dy := float64(x)-center, float64(y)-center
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist <= outer && dist >= inner {
				shade := uint8(52 + 18*math.Sin(dist/6))
				c = color.RGBA{R: shade, G: shade, B: shade + 10, A: 255}
			} else if dist < inner {
				c = color.RGBA{R: 120, G: 128, B: 160, A: 255}
			}

			img.SetRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// Encoding an in-memory RGBA image cannot fail; keep the
		// contract of always returning an image anyway.
		return nil
	}
	return buf.Bytes()
}
