// Package errmsg formats failures for the status line and the log.
package errmsg

import "fmt"

// Op names what was being attempted.
type Op string

const (
	// Import operations
	OpImport     Op = "import files"
	OpImportFile Op = "import file"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackLoad  Op = "load song"
	OpTransition    Op = "crossfade to next song"

	// Display
	OpCoverDecode Op = "decode cover art"
	OpNotify      Op = "send notification"

	// Initialization
	OpConfigLoad Op = "load config"
	OpInitialize Op = "initialize application"
)

// Format returns "Failed to <op>: <err>", or "" when err is nil.
func Format(op Op, err error) string {
	return FormatWith(op, "", err)
}

// FormatWith is Format with the subject of the operation quoted after it.
func FormatWith(op Op, subject string, err error) string {
	switch {
	case err == nil:
		return ""
	case subject == "":
		return fmt.Sprintf("Failed to %s: %v", op, err)
	}
	return fmt.Sprintf("Failed to %s %q: %v", op, subject, err)
}
