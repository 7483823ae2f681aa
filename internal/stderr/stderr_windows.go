//go:build windows

// Windows audio backends do not spray fd 2 the way ALSA does, so the
// trap is a no-op there.
package stderr

import "os"

// Lines never receives anything on Windows.
var Lines = make(chan string)

// Start is a no-op on Windows.
func Start() error {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op on Windows.
func Stop() {}
