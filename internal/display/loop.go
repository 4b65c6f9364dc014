package display

import (
	"fmt"
	"time"

	"github.com/genricoloni/mpdbar/internal/domain"
	"go.uber.org/zap"
)

const (
	// eventTimeout bounds how long one iteration waits for input
	eventTimeout = 500 * time.Millisecond
	// pacingDelay caps the redraw rate independently of input
	pacingDelay = 16 * time.Millisecond
)

// Loop drives the status line: it polls terminal input, dispatches key
// commands to the player and repaints the bottom row until quit is pressed.
type Loop struct {
	logger *zap.Logger
	player domain.Player
	term   domain.Terminal
	sleep  func(time.Duration)
}

// NewLoop creates a display loop
func NewLoop(logger *zap.Logger, player domain.Player, term domain.Terminal) *Loop {
	return &Loop{
		logger: logger,
		player: player,
		term:   term,
		sleep:  time.Sleep,
	}
}

// Run enables raw mode and loops until the quit key is pressed.
// A returned error is fatal; the terminal has been restored when possible.
func (l *Loop) Run() error {
	if err := l.term.EnableRawMode(); err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}

	size, err := l.term.Size()
	if err != nil {
		return l.abort(fmt.Errorf("getting terminal size: %w", err))
	}
	height := size.Height

	l.logger.Info("Display loop started",
		zap.Int("width", size.Width),
		zap.Int("height", height))

	for {
		ev, err := l.term.PollEvent(eventTimeout)
		if err != nil {
			return l.abort(fmt.Errorf("polling event: %w", err))
		}

		switch ev.Kind {
		case domain.EventResize:
			height = ev.Size.Height
		case domain.EventKey:
			// Release and repeat events never trigger commands
			if ev.Action == domain.KeyPress {
				cmd := KeyCommand(ev.Key)
				if cmd == domain.CommandQuit {
					return l.stop()
				}
				l.dispatch(cmd)
			}
		}

		if err := l.refresh(height); err != nil {
			return l.abort(err)
		}

		l.sleep(pacingDelay)
	}
}

// dispatch sends a playback command; failures are logged and ignored
func (l *Loop) dispatch(cmd domain.Command) {
	var err error
	switch cmd {
	case domain.CommandNext:
		err = l.player.Next()
	case domain.CommandPrevious:
		err = l.player.Previous()
	case domain.CommandStop:
		err = l.player.Stop()
	case domain.CommandTogglePause:
		err = l.player.TogglePause()
	default:
		return
	}

	if err != nil {
		l.logger.Error("Player rejected command",
			zap.Stringer("command", cmd),
			zap.Error(err))
	}
}

// refresh repaints the status row. Only a failed song query is returned;
// every other failure degrades the frame and is logged.
func (l *Loop) refresh(height int) error {
	label := failedLabel
	status, err := l.player.Status()
	if err != nil {
		l.logger.Error("Failed to get status from player", zap.Error(err))
	} else {
		label = StatusLabel(status)
	}

	if err := prepareScreen(l.term, height-1); err != nil {
		l.logger.Error("Failed to clear screen", zap.Error(err))
	}

	song, err := l.player.CurrentSong()
	if err != nil {
		return fmt.Errorf("getting song from player: %w", err)
	}

	if err := writeLine(l.term, label, song); err != nil {
		l.logger.Error("Failed to print song", zap.Error(err))
	}

	if err := l.term.Flush(); err != nil {
		l.logger.Error("Failed to flush terminal", zap.Error(err))
	}
	return nil
}

// stop leaves raw mode after a quit
func (l *Loop) stop() error {
	if err := l.term.DisableRawMode(); err != nil {
		return fmt.Errorf("disabling raw mode: %w", err)
	}
	l.logger.Info("Display loop stopped")
	return nil
}

// abort restores the terminal before a fatal error propagates
func (l *Loop) abort(cause error) error {
	if err := l.term.DisableRawMode(); err != nil {
		l.logger.Error("Failed to disable raw mode", zap.Error(err))
	}
	return cause
}
