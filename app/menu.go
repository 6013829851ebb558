package app

import "tsnake/screen"

// Menu is the entry screen: a fixed option list with a wrap-around
// selection index.
type Menu struct {
	options  []string
	selected int
}

func NewMenu() *Menu {
	return &Menu{options: []string{"Start", "Info", "Exit"}}
}

func (m *Menu) HandleInput(key screen.Key, f Field) Status {
	switch key {
	case screen.KeyUp:
		m.selected--
		if m.selected < 0 {
			m.selected = len(m.options) - 1
		}
	case screen.KeyDown:
		m.selected++
		if m.selected > len(m.options)-1 {
			m.selected = 0
		}
	case screen.KeyEnter:
		switch m.selected {
		case 0:
			return StatusGame
		case 1:
			return StatusInfo
		case 2:
			return StatusExit
		}
	case screen.KeyQuit:
		return StatusExit
	}
	return StatusMenu
}

func (m *Menu) Render(scr *screen.Screen, f Field) {
	scr.Print(center(f, "SNAKE"), f.Height/2-3, screen.ColorGreen|screen.AttrBold, screen.ColorDefault, "SNAKE")

	for i, opt := range m.options {
		fg, bg := screen.ColorDefault, screen.ColorDefault
		if i == m.selected {
			fg, bg = screen.ColorBlack, screen.ColorCyan
		}
		scr.Print(center(f, opt), f.Height/2+i, fg, bg, opt)
	}

	hint := "arrows move, enter confirms"
	scr.Print(center(f, hint), f.Height/2+len(m.options)+2, screen.ColorDefault, screen.ColorDefault, hint)
}

func center(f Field, msg string) int {
	return max(1, (f.Width-len(msg))/2)
}
