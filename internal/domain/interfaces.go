package domain

import "time"

// Player defines the interface for querying and controlling a media player daemon.
// Every call blocks until the daemon answers or the transport fails.
type Player interface {
	// Status returns the current playback state
	Status() (PlayerStatus, error)

	// CurrentSong returns the loaded track, or nil when nothing is loaded
	CurrentSong() (*Song, error)

	// Next skips to the next track
	Next() error

	// Previous goes back to the previous track
	Previous() error

	// Stop stops playback
	Stop() error

	// TogglePause pauses a playing track or resumes a paused one
	TogglePause() error
}

// Terminal defines the interface for the raw-mode terminal the display draws on.
// Output operations are queued and only reach the terminal on Flush.
type Terminal interface {
	// EnableRawMode switches the terminal to unbuffered, non-echoing input
	EnableRawMode() error

	// DisableRawMode restores the terminal to its original mode
	DisableRawMode() error

	// Size returns the current terminal dimensions
	Size() (TerminalSize, error)

	// PollEvent waits up to timeout for an event.
	// A timeout is not an error: it returns an Event of kind EventNone.
	PollEvent(timeout time.Duration) (Event, error)

	// MoveTo places the cursor at the given zero-based column and row
	MoveTo(col, row int) error

	// HideCursor hides the terminal cursor
	HideCursor() error

	// Clear clears the entire screen
	Clear() error

	// Print writes text at the cursor and advances it
	Print(text string, style Style) error

	// Flush sends all queued output to the terminal
	Flush() error
}

// Config defines the interface for application configuration
type Config interface {
	// GetBackend returns the player backend name ("mpd" or "mpris")
	GetBackend() string

	// GetAddress returns the MPD network address
	GetAddress() string

	// GetPassword returns the MPD password, empty when none is set
	GetPassword() string

	// GetMPRISPlayer returns the preferred MPRIS bus name, empty for the first found
	GetMPRISPlayer() string
}
