package player

import (
	"github.com/fhs/gompd/v2/mpd"
)

// MPDClient defines the subset of the MPD protocol the player uses.
// This abstraction allows us to mock MPD interactions in tests.
//
//go:generate mockgen -destination=mocks/mpd_client_mock.go -package=mocks github.com/genricoloni/mpdbar/internal/player MPDClient
type MPDClient interface {
	// Close closes the connection to the daemon
	Close() error

	// Status returns the daemon status attributes (e.g., "state": "play")
	Status() (mpd.Attrs, error)

	// CurrentSong returns the tags of the loaded song, empty when none is loaded
	CurrentSong() (mpd.Attrs, error)

	// Next skips to the next song in the queue
	Next() error

	// Previous goes back to the previous song in the queue
	Previous() error

	// Stop stops playback
	Stop() error

	// Pause pauses (true) or resumes (false) playback
	Pause(pause bool) error
}

// dialMPD opens a real gompd connection
func dialMPD(address, password string) (MPDClient, error) {
	var (
		client *mpd.Client
		err    error
	)
	if password != "" {
		client, err = mpd.DialAuthenticated("tcp", address, password)
	} else {
		client, err = mpd.Dial("tcp", address)
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}
