package screen

import termbox "github.com/nsf/termbox-go"

// Key is one decoded input event. KeyNone stands for a keystroke the
// application has no binding for; screens ignore it.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyRight
	KeyDown
	KeyLeft
	KeyEnter
	KeyQuit
	KeyPause
	KeyRestart
)

func decodeKey(ev termbox.Event) Key {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return KeyUp
	case termbox.KeyArrowRight:
		return KeyRight
	case termbox.KeyArrowDown:
		return KeyDown
	case termbox.KeyArrowLeft:
		return KeyLeft
	case termbox.KeyEnter:
		return KeyEnter
	case termbox.KeyCtrlC, termbox.KeyCtrlD:
		return KeyQuit
	}

	switch ev.Ch {
	case 'w', 'k':
		return KeyUp
	case 'd', 'l':
		return KeyRight
	case 's', 'j':
		return KeyDown
	case 'a', 'h':
		return KeyLeft
	case 'q':
		return KeyQuit
	case 'p':
		return KeyPause
	case 'r':
		return KeyRestart
	}

	return KeyNone
}
