package domain

// PlayerStatus represents the current state of the media player
type PlayerStatus string

const (
	// StatusPlaying indicates the media is currently playing
	StatusPlaying PlayerStatus = "Playing"
	// StatusPaused indicates the media is paused
	StatusPaused PlayerStatus = "Paused"
	// StatusStopped indicates the media is stopped
	StatusStopped PlayerStatus = "Stopped"
)

// Song contains the tags of the currently loaded track.
// An empty field means the daemon did not report that tag.
type Song struct {
	// Title of the currently loaded track
	Title string
	// Artist name
	Artist string
}

// TerminalSize holds the terminal dimensions in character cells
type TerminalSize struct {
	Width  int
	Height int
}

// EventKind distinguishes what a polled terminal event carries
type EventKind int

const (
	// EventNone means the poll timed out or the event is irrelevant
	EventNone EventKind = iota
	// EventKey carries a key in Key and Action
	EventKey
	// EventResize carries the new dimensions in Size
	EventResize
)

// KeyAction is the kind of a key event
type KeyAction int

const (
	// KeyPress is a fresh key press, the only action that triggers commands
	KeyPress KeyAction = iota
	// KeyRelease is reported when a key is let go
	KeyRelease
	// KeyRepeat is reported while a key is held down
	KeyRepeat
)

// Event is a single terminal input or resize event
type Event struct {
	Kind   EventKind
	Key    rune
	Action KeyAction
	Size   TerminalSize
}

// Color is a foreground color hint understood by every terminal backend
type Color int

const (
	// ColorDefault leaves the terminal's foreground color unchanged
	ColorDefault Color = iota
	// ColorGreen marks a playing player
	ColorGreen
	// ColorYellow marks a paused player
	ColorYellow
	// ColorRed marks a stopped player or a failed status query
	ColorRed
	// ColorMuted is used for separators between song fields
	ColorMuted
)

// Style describes how a run of text is written
type Style struct {
	Fg   Color
	Bold bool
}

// Command is a playback action bound to a key
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandNext
	CommandPrevious
	CommandStop
	CommandTogglePause
)

// String returns a lowercase command name for log fields
func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandNext:
		return "next"
	case CommandPrevious:
		return "previous"
	case CommandStop:
		return "stop"
	case CommandTogglePause:
		return "toggle-pause"
	default:
		return "none"
	}
}
