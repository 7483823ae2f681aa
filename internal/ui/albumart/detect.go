package albumart

import (
	"os"
	"strings"
)

// Detect returns the best available ImageProtocol for the current
// terminal, or nil if none is supported.
//
// The STRUM_IMAGE_PROTOCOL environment variable overrides detection:
//   - "kitty": force Kitty protocol
//   - "sixel": force Sixel protocol
//   - "none": disable image display
func Detect() ImageProtocol {
	switch os.Getenv("STRUM_IMAGE_PROTOCOL") {
	case "kitty":
		return &KittyProtocol{}
	case "sixel":
		return NewSixelProtocol()
	case "none":
		return nil
	}

	if IsKittySupported() {
		return &KittyProtocol{}
	}

	if IsSixelSupported() {
		return NewSixelProtocol()
	}

	return nil
}

// IsKittySupported checks if the terminal supports the Kitty graphics
// protocol.
func IsKittySupported() bool {
	// Contour sets CONTOUR_PROFILE but doesn't support Kitty graphics.
	// Check early because parent terminal env vars can leak into it.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	if os.Getenv("TERM") == "xterm-kitty" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	if os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	// Konsole 22.04+ supports Kitty graphics.
	if version := os.Getenv("KONSOLE_VERSION"); version != "" {
		if len(version) >= 4 && version[:4] >= "2204" {
			return true
		}
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}

// IsSixelSupported checks if the terminal supports Sixel graphics.
func IsSixelSupported() bool {
	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")

	if term == "foot" || term == "foot-extra" {
		return true
	}
	if termProgram == "vscode" || termProgram == "mintty" || termProgram == "iTerm.app" {
		return true
	}
	if termProgram == "contour" || os.Getenv("CONTOUR_PROFILE") != "" {
		return true
	}

	// xterm supports sixel when built with --enable-sixel-graphics; TERM
	// alone is the best hint available. Kitty-capable terminals were
	// already caught above.
	if term == "xterm" || strings.HasPrefix(term, "xterm-") {
		return true
	}

	return false
}
