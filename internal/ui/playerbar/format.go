package playerbar

import (
	"fmt"
	"math"
	"time"
)

// FormatDuration renders a duration as m:ss, switching to h:mm:ss from
// one hour up.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// KnobOffset maps a playback ratio onto a cell index in [0, width].
// The fractional cell is rounded half away from zero, so a knob landing
// on 62.5 renders at cell 63.
func KnobOffset(width int, ratio float64) int {
	if width <= 0 {
		return 0
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(float64(width) * ratio))
}
