package app

import "tsnake/screen"

// Status is the top-level navigation state. Screens hand the next status
// back from their input handlers; the loop reads it every iteration.
type Status uint8

const (
	StatusMenu Status = iota
	StatusGame
	StatusInfo
	StatusExit
)

func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusGame:
		return "game"
	case StatusInfo:
		return "info"
	case StatusExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Field is the bounded play area. Width and Height are the border
// coordinates; the playable interior is [1, Width-1] x [1, Height-1].
type Field struct {
	Width, Height int
}

// Screen is the contract shared by the menu, info and game screens. Render
// draws one full frame; HandleInput consumes one key and returns the next
// application status. Field dimensions are passed in read-only.
type Screen interface {
	Render(scr *screen.Screen, f Field)
	HandleInput(key screen.Key, f Field) Status
}
