// Package screen is the terminal boundary: a cell display addressed by
// column and row plus a non-blocking single-keystroke poll.
package screen

import (
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

// Attr carries cell color and style bits.
type Attr = termbox.Attribute

const (
	ColorDefault = termbox.ColorDefault
	ColorBlack   = termbox.ColorBlack
	ColorRed     = termbox.ColorRed
	ColorGreen   = termbox.ColorGreen
	ColorYellow  = termbox.ColorYellow
	ColorBlue    = termbox.ColorBlue
	ColorCyan    = termbox.ColorCyan
	ColorWhite   = termbox.ColorWhite
	AttrBold     = termbox.AttrBold
	AttrReverse  = termbox.AttrReverse
)

// Screen owns the termbox display and the key event pump. All methods must
// be called from the application loop goroutine.
type Screen struct {
	events chan termbox.Event
}

// Open puts the terminal into cell mode and starts the event pump.
func Open() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)

	s := &Screen{events: make(chan termbox.Event, 32)}
	go func() {
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt {
				return
			}
			s.events <- ev
		}
	}()

	return s, nil
}

// Close stops the event pump and restores the terminal.
func (s *Screen) Close() {
	termbox.Interrupt()
	termbox.Close()
}

// Poll returns the next pending key without blocking. The second return is
// false when no input is available.
func (s *Screen) Poll() (Key, bool) {
	for {
		select {
		case ev := <-s.events:
			// Resize events are dropped: field dimensions are captured
			// once at startup.
			if ev.Type != termbox.EventKey {
				continue
			}
			return decodeKey(ev), true
		default:
			return KeyNone, false
		}
	}
}

// Size returns the current terminal dimensions in cells.
func (s *Screen) Size() (int, int) { return termbox.Size() }

// Clear wipes the whole back buffer.
func (s *Screen) Clear() { _ = termbox.Clear(termbox.ColorDefault, termbox.ColorDefault) }

// Flush presents the back buffer.
func (s *Screen) Flush() { _ = termbox.Flush() }

// SetCell writes a single cell.
func (s *Screen) SetCell(x, y int, ch rune, fg, bg Attr) { termbox.SetCell(x, y, ch, fg, bg) }

// Print writes msg starting at (x, y), advancing by rune cell width.
func (s *Screen) Print(x, y int, fg, bg Attr, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
