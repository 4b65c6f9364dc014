package player

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fhs/gompd/v2/mpd"
	"github.com/genricoloni/mpdbar/internal/domain"
	"github.com/genricoloni/mpdbar/internal/player/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestMPDPlayer(t *testing.T) (*MPDPlayer, *mocks.MockMPDClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockMPDClient(ctrl)

	p := NewMPDPlayer(zap.NewNop(), "127.0.0.1:6600", "")
	p.conn = client
	return p, client
}

// TestMPDStatus covers the state attribute mapping and its failure modes
func TestMPDStatus(t *testing.T) {
	tests := []struct {
		name        string
		attrs       mpd.Attrs
		err         error
		expected    domain.PlayerStatus
		expectError bool
	}{
		{name: "Play", attrs: mpd.Attrs{"state": "play", "volume": "80"}, expected: domain.StatusPlaying},
		{name: "Pause", attrs: mpd.Attrs{"state": "pause"}, expected: domain.StatusPaused},
		{name: "Stop", attrs: mpd.Attrs{"state": "stop"}, expected: domain.StatusStopped},
		{name: "Unknown State", attrs: mpd.Attrs{"state": "rewinding"}, expectError: true},
		{name: "Missing State", attrs: mpd.Attrs{"volume": "80"}, expectError: true},
		{name: "Connection Error", err: fmt.Errorf("connection reset"), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, client := newTestMPDPlayer(t)
			client.EXPECT().Status().Return(tt.attrs, tt.err)

			status, err := p.Status()

			if tt.expectError {
				if err == nil {
					t.Fatalf("Expected error, got status %q", status)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if status != tt.expected {
				t.Errorf("Status mismatch: want %s, got %s", tt.expected, status)
			}
		})
	}
}

// TestMPDCurrentSong verifies tag extraction and the empty-queue case
func TestMPDCurrentSong(t *testing.T) {
	tests := []struct {
		name        string
		attrs       mpd.Attrs
		err         error
		expected    *domain.Song
		expectError bool
	}{
		{
			name:     "Full Tags",
			attrs:    mpd.Attrs{"file": "a.flac", "Title": "Foo", "Artist": "Bar"},
			expected: &domain.Song{Title: "Foo", Artist: "Bar"},
		},
		{
			name:     "Missing Artist",
			attrs:    mpd.Attrs{"file": "a.flac", "Title": "Foo"},
			expected: &domain.Song{Title: "Foo"},
		},
		{
			name:     "Untagged File",
			attrs:    mpd.Attrs{"file": "a.flac"},
			expected: &domain.Song{},
		},
		{
			name:     "Nothing Loaded",
			attrs:    mpd.Attrs{},
			expected: nil,
		},
		{
			name:        "Connection Error",
			err:         fmt.Errorf("broken pipe"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, client := newTestMPDPlayer(t)
			client.EXPECT().CurrentSong().Return(tt.attrs, tt.err)

			song, err := p.CurrentSong()

			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.expected == nil {
				if song != nil {
					t.Errorf("Expected no song, got %+v", *song)
				}
				return
			}
			if song == nil {
				t.Fatal("Expected a song, got nil")
			}
			if *song != *tt.expected {
				t.Errorf("Song mismatch: want %+v, got %+v", *tt.expected, *song)
			}
		})
	}
}

// TestMPDTogglePause checks that the toggle follows the current state
func TestMPDTogglePause(t *testing.T) {
	tests := []struct {
		name      string
		state     string
		setupMock func(*mocks.MockMPDClient)
	}{
		{
			name:  "Playing Pauses",
			state: "play",
			setupMock: func(m *mocks.MockMPDClient) {
				m.EXPECT().Pause(true).Return(nil)
			},
		},
		{
			name:  "Paused Resumes",
			state: "pause",
			setupMock: func(m *mocks.MockMPDClient) {
				m.EXPECT().Pause(false).Return(nil)
			},
		},
		{
			name:      "Stopped Is No-op",
			state:     "stop",
			setupMock: func(m *mocks.MockMPDClient) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, client := newTestMPDPlayer(t)
			client.EXPECT().Status().Return(mpd.Attrs{"state": tt.state}, nil)
			tt.setupMock(client)

			if err := p.TogglePause(); err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

// TestMPDTransportCommands verifies command forwarding and error propagation
func TestMPDTransportCommands(t *testing.T) {
	errRejected := errors.New("ACK [2@0] {next} Not playing")

	p, client := newTestMPDPlayer(t)
	client.EXPECT().Next().Return(errRejected)
	client.EXPECT().Previous().Return(nil)
	client.EXPECT().Stop().Return(nil)

	if err := p.Next(); !errors.Is(err, errRejected) {
		t.Errorf("Next: want %v, got %v", errRejected, err)
	}
	if err := p.Previous(); err != nil {
		t.Errorf("Previous: unexpected error %v", err)
	}
	if err := p.Stop(); err != nil {
		t.Errorf("Stop: unexpected error %v", err)
	}
}

func TestMPDNotConnected(t *testing.T) {
	p := NewMPDPlayer(zap.NewNop(), "127.0.0.1:6600", "")

	if _, err := p.Status(); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Status: want ErrNotConnected, got %v", err)
	}
	if _, err := p.CurrentSong(); !errors.Is(err, ErrNotConnected) {
		t.Errorf("CurrentSong: want ErrNotConnected, got %v", err)
	}
	if err := p.Next(); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Next: want ErrNotConnected, got %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close on unconnected player: %v", err)
	}
}

func TestMPDConnect(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockMPDClient(ctrl)
		client.EXPECT().Close().Return(nil)

		p := NewMPDPlayer(zap.NewNop(), "127.0.0.1:6600", "secret")
		p.dial = func(address, password string) (MPDClient, error) {
			if address != "127.0.0.1:6600" || password != "secret" {
				t.Errorf("Unexpected dial arguments: %s %s", address, password)
			}
			return client, nil
		}

		if err := p.Connect(context.Background()); err != nil {
			t.Fatalf("Connect failed: %v", err)
		}
		if err := p.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})

	t.Run("Dial Failure", func(t *testing.T) {
		p := NewMPDPlayer(zap.NewNop(), "127.0.0.1:6600", "")
		p.dial = func(string, string) (MPDClient, error) {
			return nil, fmt.Errorf("connection refused")
		}

		if err := p.Connect(context.Background()); err == nil {
			t.Fatal("Expected connect error, got nil")
		}
		if p.conn != nil {
			t.Error("Connection should not be set after a failed dial")
		}
	})
}
