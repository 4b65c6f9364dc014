package player

import (
	"context"
	"fmt"
	"strings"

	"github.com/genricoloni/mpdbar/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	mprisPrefix    = "org.mpris.MediaPlayer2."
	mprisPath      = "/org/mpris/MediaPlayer2"
	mprisInterface = "org.mpris.MediaPlayer2.Player"
)

// MPRISPlayer controls a media player exposing the MPRIS D-Bus interface
type MPRISPlayer struct {
	logger    *zap.Logger
	preferred string
	name      string     // Well-known bus name of the controlled player
	conn      DBusClient // Interface for testability
	dial      func() (DBusClient, error)
}

// NewMPRISPlayer creates an unconnected MPRIS player.
// preferred is the bus name to control; empty selects the first player on the bus.
func NewMPRISPlayer(logger *zap.Logger, preferred string) *MPRISPlayer {
	return &MPRISPlayer{
		logger:    logger,
		preferred: preferred,
		dial: func() (DBusClient, error) {
			client, err := NewStdDBusClient()
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	}
}

// Connect attaches to the session bus and selects the player to control
func (p *MPRISPlayer) Connect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	conn, err := p.dial()
	if err != nil {
		return fmt.Errorf("session bus connection failed: %w", err)
	}

	name, err := p.selectPlayer(conn)
	if err != nil {
		if cerr := conn.Close(); cerr != nil {
			p.logger.Warn("Failed to close D-Bus connection", zap.Error(cerr))
		}
		return err
	}

	p.conn = conn
	p.name = name

	p.logger.Info("Connected to MPRIS player", zap.String("player", name))
	return nil
}

// selectPlayer returns the preferred MPRIS name if present, else the first one found
func (p *MPRISPlayer) selectPlayer(conn DBusClient) (string, error) {
	names, err := conn.ListNames()
	if err != nil {
		return "", fmt.Errorf("failed to list bus names: %w", err)
	}

	for _, name := range names {
		if !strings.HasPrefix(name, mprisPrefix) {
			continue
		}
		if p.preferred == "" || name == p.preferred {
			return name, nil
		}
	}

	if p.preferred != "" {
		return "", fmt.Errorf("mpris player %s not found on session bus", p.preferred)
	}
	return "", fmt.Errorf("no mpris player found on session bus")
}

// Close closes the D-Bus connection
func (p *MPRISPlayer) Close() error {
	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn = nil
	return err
}

// Status returns the current playback state
func (p *MPRISPlayer) Status() (domain.PlayerStatus, error) {
	variant, err := p.property("PlaybackStatus")
	if err != nil {
		return "", err
	}

	status, ok := variant.Value().(string)
	if !ok {
		return "", fmt.Errorf("invalid playback status format")
	}

	switch status {
	case "Playing":
		return domain.StatusPlaying, nil
	case "Paused":
		return domain.StatusPaused, nil
	case "Stopped":
		return domain.StatusStopped, nil
	default:
		return "", fmt.Errorf("unknown playback status %q", status)
	}
}

// CurrentSong returns the loaded track, or nil when the player reports no metadata
func (p *MPRISPlayer) CurrentSong() (*domain.Song, error) {
	variant, err := p.property("Metadata")
	if err != nil {
		return nil, err
	}

	// Some players return nil or unexpected types when nothing is loaded
	metadata, ok := variant.Value().(map[string]dbus.Variant)
	if !ok || len(metadata) == 0 {
		return nil, nil
	}

	var song domain.Song

	if titleVar, ok := metadata["xesam:title"]; ok {
		if title, ok := titleVar.Value().(string); ok {
			song.Title = title
		}
	}

	// Extract artist (can be an array)
	if artistVar, ok := metadata["xesam:artist"]; ok {
		switch artists := artistVar.Value().(type) {
		case []string:
			if len(artists) > 0 {
				song.Artist = artists[0]
			}
		case string:
			song.Artist = artists
		default:
			p.logger.Debug("Unexpected artist type in metadata",
				zap.String("type", fmt.Sprintf("%T", artistVar.Value())))
		}
	}

	return &song, nil
}

// Next skips to the next track
func (p *MPRISPlayer) Next() error {
	return p.call("Next")
}

// Previous goes back to the previous track
func (p *MPRISPlayer) Previous() error {
	return p.call("Previous")
}

// Stop stops playback
func (p *MPRISPlayer) Stop() error {
	return p.call("Stop")
}

// TogglePause pauses or resumes playback.
// PlayPause would start a stopped player, so a stopped player is left alone.
func (p *MPRISPlayer) TogglePause() error {
	status, err := p.Status()
	if err != nil {
		return err
	}

	if status == domain.StatusStopped {
		p.logger.Debug("Ignoring pause toggle while stopped", zap.String("player", p.name))
		return nil
	}
	return p.call("PlayPause")
}

func (p *MPRISPlayer) property(name string) (dbus.Variant, error) {
	if p.conn == nil {
		return dbus.Variant{}, ErrNotConnected
	}

	variant, err := p.conn.GetProperty(p.name, mprisPath, mprisInterface+"."+name)
	if err != nil {
		return dbus.Variant{}, fmt.Errorf("failed to get %s: %w", name, err)
	}
	return variant, nil
}

func (p *MPRISPlayer) call(method string) error {
	if p.conn == nil {
		return ErrNotConnected
	}

	if err := p.conn.CallMethod(p.name, mprisPath, mprisInterface+"."+method); err != nil {
		return fmt.Errorf("mpris %s failed: %w", method, err)
	}
	return nil
}
