// Package errmsg provides consistent error formatting for user-facing
// diagnostics. Startup failures are printed through it before the process
// exits; operational failures are formatted onto the player's error channel
// and absorbed.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Startup operations (failures are fatal)
	OpInitialize Op = "initialize application"
	OpOpenDevice Op = "open audio output device"
	OpDecode     Op = "decode audio file"

	// Playback operations (failures are absorbed)
	OpSeek        Op = "seek"
	OpSendCommand Op = "send playback command"

	// Metadata operations
	OpReadTags Op = "read file tags"
	OpAlbumArt Op = "prepare cover art"

	// Integrations
	OpMPRIS Op = "serve media controls over D-Bus"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
