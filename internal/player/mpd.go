package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/genricoloni/mpdbar/internal/domain"
	"go.uber.org/zap"
)

// ErrNotConnected is returned by player calls made before Connect succeeded
var ErrNotConnected = errors.New("player is not connected")

// MPDPlayer controls a Music Player Daemon over its TCP protocol
type MPDPlayer struct {
	logger   *zap.Logger
	address  string
	password string
	conn     MPDClient // Interface for testability
	dial     func(address, password string) (MPDClient, error)
}

// NewMPDPlayer creates an unconnected MPD player for the given address
func NewMPDPlayer(logger *zap.Logger, address, password string) *MPDPlayer {
	return &MPDPlayer{
		logger:   logger,
		address:  address,
		password: password,
		dial:     dialMPD,
	}
}

// Connect dials the daemon. It blocks until the connection is established or fails.
func (p *MPDPlayer) Connect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	conn, err := p.dial(p.address, p.password)
	if err != nil {
		return fmt.Errorf("connecting to mpd at %s: %w", p.address, err)
	}
	p.conn = conn

	p.logger.Info("Connected to MPD", zap.String("address", p.address))
	return nil
}

// Close closes the daemon connection
func (p *MPDPlayer) Close() error {
	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn = nil
	return err
}

// Status returns the current playback state
func (p *MPDPlayer) Status() (domain.PlayerStatus, error) {
	state, err := p.state()
	if err != nil {
		return "", err
	}

	switch state {
	case "play":
		return domain.StatusPlaying, nil
	case "pause":
		return domain.StatusPaused, nil
	case "stop":
		return domain.StatusStopped, nil
	default:
		return "", fmt.Errorf("unknown mpd state %q", state)
	}
}

// CurrentSong returns the loaded song, or nil when the queue position is empty
func (p *MPDPlayer) CurrentSong() (*domain.Song, error) {
	if p.conn == nil {
		return nil, ErrNotConnected
	}

	attrs, err := p.conn.CurrentSong()
	if err != nil {
		return nil, fmt.Errorf("querying current song: %w", err)
	}

	// MPD answers "currentsong" with an empty response when nothing is loaded
	if len(attrs) == 0 {
		return nil, nil
	}

	return &domain.Song{
		Title:  attrs["Title"],
		Artist: attrs["Artist"],
	}, nil
}

// Next skips to the next track
func (p *MPDPlayer) Next() error {
	if p.conn == nil {
		return ErrNotConnected
	}
	return p.conn.Next()
}

// Previous goes back to the previous track
func (p *MPDPlayer) Previous() error {
	if p.conn == nil {
		return ErrNotConnected
	}
	return p.conn.Previous()
}

// Stop stops playback
func (p *MPDPlayer) Stop() error {
	if p.conn == nil {
		return ErrNotConnected
	}
	return p.conn.Stop()
}

// TogglePause pauses a playing daemon and resumes a paused one.
// A stopped daemon is left stopped, as MPD's own "pause" toggle does.
func (p *MPDPlayer) TogglePause() error {
	state, err := p.state()
	if err != nil {
		return err
	}

	switch state {
	case "play":
		return p.conn.Pause(true)
	case "pause":
		return p.conn.Pause(false)
	default:
		p.logger.Debug("Ignoring pause toggle while stopped")
		return nil
	}
}

// state returns the raw "state" attribute of the daemon status
func (p *MPDPlayer) state() (string, error) {
	if p.conn == nil {
		return "", ErrNotConnected
	}

	attrs, err := p.conn.Status()
	if err != nil {
		return "", fmt.Errorf("querying status: %w", err)
	}

	state, ok := attrs["state"]
	if !ok {
		return "", errors.New("mpd status has no state attribute")
	}
	return state, nil
}
