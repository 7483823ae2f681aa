//go:build !unix

package albumart

// getCellSize has no TIOCGWINSZ to query here, assume 8x16 cells.
func getCellSize() (cellW, cellH int) {
	return 8, 16
}
