package albumart

import "image"

// ImageProtocol abstracts the terminal image display protocol (Kitty or
// Sixel).
type ImageProtocol interface {
	// Prepare encodes the image and returns any one-time terminal
	// command. Kitty transmits to terminal memory and returns escape
	// sequences; Sixel encodes and caches internally.
	Prepare(img image.Image, id uint32) (string, error)

	// Place returns the escape sequence to display the image at
	// (row, col), 1-based, sized in cells.
	Place(id uint32, row, col, width, height int) string

	// Delete returns the escape sequence to remove the image.
	Delete(id uint32) string

	// Placeholder returns blank space for lipgloss layout measurement.
	Placeholder(width, height int) string

	// TargetPixelSize returns the pixel dimensions to use when resizing
	// an image that will occupy the given number of terminal cells.
	TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int)
}
