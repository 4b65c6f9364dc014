package display

import (
	"github.com/genricoloni/mpdbar/internal/domain"
	"go.uber.org/multierr"
)

// unknownField replaces a tag the daemon did not report
const unknownField = "Unknown"

// songSeparator sits between title and artist
const songSeparator = " by "

// Label is the status prefix of the line
type Label struct {
	Text  string
	Color domain.Color
}

// failedLabel is shown when the status query fails
var failedLabel = Label{Text: "", Color: domain.ColorRed}

// StatusLabel maps a playback state to its label
func StatusLabel(status domain.PlayerStatus) Label {
	switch status {
	case domain.StatusPlaying:
		return Label{Text: "Playing: ", Color: domain.ColorGreen}
	case domain.StatusPaused:
		return Label{Text: "Paused: ", Color: domain.ColorYellow}
	case domain.StatusStopped:
		return Label{Text: "Stopped: ", Color: domain.ColorRed}
	default:
		return failedLabel
	}
}

// KeyCommand maps a pressed key to its command
func KeyCommand(key rune) domain.Command {
	switch key {
	case 'q':
		return domain.CommandQuit
	case '>':
		return domain.CommandNext
	case '<':
		return domain.CommandPrevious
	case 's':
		return domain.CommandStop
	case 'p':
		return domain.CommandTogglePause
	default:
		return domain.CommandNone
	}
}

func orUnknown(field string) string {
	if field == "" {
		return unknownField
	}
	return field
}

// prepareScreen positions the cursor on the status row and wipes the screen
func prepareScreen(t domain.Terminal, row int) error {
	return multierr.Combine(
		t.MoveTo(0, row),
		t.HideCursor(),
		t.Clear(),
	)
}

// writeLine writes the status label, followed by the song when one is loaded
func writeLine(t domain.Terminal, label Label, song *domain.Song) error {
	err := t.Print(label.Text, domain.Style{Fg: label.Color})
	if song == nil {
		return err
	}

	return multierr.Combine(
		err,
		t.Print(orUnknown(song.Title), domain.Style{Bold: true}),
		t.Print(songSeparator, domain.Style{Fg: domain.ColorMuted}),
		t.Print(orUnknown(song.Artist), domain.Style{}),
	)
}
