package app

import "tsnake/screen"

// Info is the static help screen.
type Info struct{}

func NewInfo() *Info { return &Info{} }

var infoLines = []string{
	"Steer with the arrow keys, wasd or hjkl.",
	"Eat peas to grow; every pea speeds the game up.",
	"Hitting the border or your own tail ends the run.",
	"p pauses, r restarts, q leaves to the menu.",
	"",
	"Press q to go back to the menu.",
}

func (i *Info) HandleInput(key screen.Key, f Field) Status {
	if key == screen.KeyQuit {
		return StatusMenu
	}
	return StatusInfo
}

func (i *Info) Render(scr *screen.Screen, f Field) {
	top := f.Height/2 - len(infoLines)/2
	for n, line := range infoLines {
		scr.Print(center(f, line), top+n, screen.ColorDefault, screen.ColorDefault, line)
	}
}
