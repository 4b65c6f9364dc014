package terminal

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/genricoloni/mpdbar/internal/domain"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	// ErrNotInitialized is returned by operations issued outside raw mode
	ErrNotInitialized = errors.New("terminal is not in raw mode")
	// ErrEventSourceClosed is returned when the event pump stops delivering events
	ErrEventSourceClosed = errors.New("terminal event source closed")
)

// eventBuffer bounds how many events the pump can hold while the loop is busy
const eventBuffer = 16

// Screen is the tcell-backed terminal the status line is drawn on
type Screen struct {
	logger    *zap.Logger
	newScreen func() (tcell.Screen, error)

	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	col    int
	row    int
}

// NewScreen creates a terminal bound to the process' controlling TTY.
// Nothing is touched until EnableRawMode is called.
func NewScreen(logger *zap.Logger) *Screen {
	return &Screen{
		logger:    logger,
		newScreen: newTTYScreen,
	}
}

// newTTYScreen refuses to start when stdin is not a terminal
func newTTYScreen() (tcell.Screen, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal")
	}
	return tcell.NewScreen()
}

// EnableRawMode initializes the tcell screen and starts delivering events
func (s *Screen) EnableRawMode() error {
	if s.screen != nil {
		return nil
	}

	scr, err := s.newScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}

	s.screen = scr
	s.events = make(chan tcell.Event, eventBuffer)
	s.quit = make(chan struct{})
	go pump(scr, s.events, s.quit)

	w, h := scr.Size()
	s.logger.Debug("Raw mode enabled", zap.Int("width", w), zap.Int("height", h))
	return nil
}

// pump forwards tcell events until the screen is finalized
func pump(scr tcell.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	defer close(events)
	for {
		ev := scr.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// DisableRawMode restores the terminal and stops the event pump
func (s *Screen) DisableRawMode() error {
	if s.screen == nil {
		return ErrNotInitialized
	}

	close(s.quit)
	s.screen.Fini()
	s.screen = nil

	s.logger.Debug("Raw mode disabled")
	return nil
}

// Size returns the current terminal dimensions
func (s *Screen) Size() (domain.TerminalSize, error) {
	if s.screen == nil {
		return domain.TerminalSize{}, ErrNotInitialized
	}
	w, h := s.screen.Size()
	return domain.TerminalSize{Width: w, Height: h}, nil
}

// PollEvent waits up to timeout for the next key or resize event
func (s *Screen) PollEvent(timeout time.Duration) (domain.Event, error) {
	if s.screen == nil {
		return domain.Event{}, ErrNotInitialized
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-s.events:
		if !ok {
			return domain.Event{}, ErrEventSourceClosed
		}
		return translate(ev)
	case <-timer.C:
		return domain.Event{Kind: domain.EventNone}, nil
	}
}

// translate converts a tcell event into a domain event.
// tcell only reports key presses, so every key event is a press.
func translate(ev tcell.Event) (domain.Event, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return domain.Event{
			Kind: domain.EventResize,
			Size: domain.TerminalSize{Width: w, Height: h},
		}, nil
	case *tcell.EventKey:
		var key rune
		if ev.Key() == tcell.KeyRune {
			key = ev.Rune()
		}
		return domain.Event{Kind: domain.EventKey, Key: key, Action: domain.KeyPress}, nil
	case *tcell.EventError:
		return domain.Event{}, fmt.Errorf("reading terminal event: %w", ev)
	default:
		return domain.Event{Kind: domain.EventNone}, nil
	}
}

// MoveTo places the write cursor at the given cell
func (s *Screen) MoveTo(col, row int) error {
	if s.screen == nil {
		return ErrNotInitialized
	}
	s.col, s.row = col, row
	return nil
}

// HideCursor hides the terminal cursor
func (s *Screen) HideCursor() error {
	if s.screen == nil {
		return ErrNotInitialized
	}
	s.screen.HideCursor()
	return nil
}

// Clear clears the entire screen
func (s *Screen) Clear() error {
	if s.screen == nil {
		return ErrNotInitialized
	}
	s.screen.Clear()
	return nil
}

// Print writes text at the cursor, advancing it by each rune's display width
func (s *Screen) Print(text string, style domain.Style) error {
	if s.screen == nil {
		return ErrNotInitialized
	}

	st := tcellStyle(style)

	// Zero-width runes combine with the last base rune written by this call
	var (
		mainc   rune
		combc   []rune
		lastCol = -1
	)
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			if lastCol < 0 {
				continue
			}
			combc = append(combc, r)
			s.screen.SetContent(lastCol, s.row, mainc, combc, st)
			continue
		}
		mainc, combc, lastCol = r, nil, s.col
		s.screen.SetContent(s.col, s.row, r, nil, st)
		s.col += w
	}
	return nil
}

// Flush shows all queued content
func (s *Screen) Flush() error {
	if s.screen == nil {
		return ErrNotInitialized
	}
	s.screen.Show()
	return nil
}

func tcellStyle(style domain.Style) tcell.Style {
	st := tcell.StyleDefault
	switch style.Fg {
	case domain.ColorGreen:
		st = st.Foreground(tcell.ColorGreen)
	case domain.ColorYellow:
		st = st.Foreground(tcell.ColorYellow)
	case domain.ColorRed:
		st = st.Foreground(tcell.ColorRed)
	case domain.ColorMuted:
		st = st.Foreground(tcell.ColorGray)
	}
	return st.Bold(style.Bold)
}
