// Package app runs the screen state machine: a single cooperative loop that
// polls for one key per iteration, renders the active screen when idle and
// dispatches the key to it otherwise.
package app

import (
	"fmt"
	"time"

	"tsnake/config"
	"tsnake/screen"

	"github.com/HandyGold75/GOLib/logger"
	"github.com/pkg/errors"
)

// App owns the three screens and the terminal for the process lifetime. The
// game screen persists across menu visits; its state only resets on an
// explicit restart.
type App struct {
	scr   *screen.Screen
	lgr   *logger.Logger
	field Field
	frame time.Duration

	status Status
	menu   *Menu
	info   *Info
	game   *Game
}

// New sets up the terminal and captures the field dimensions. They are read
// once here and never refreshed.
func New() (*App, error) {
	scr, err := screen.Open()
	if err != nil {
		return nil, errors.Wrap(err, "terminal setup")
	}

	w, h := scr.Size()
	f := Field{Width: w - 1, Height: h - 2}

	lgr, _ := logger.New(config.LogFile)
	lgr.UseSeperators = false

	return &App{
		scr:    scr,
		lgr:    lgr,
		field:  f,
		frame:  time.Second / time.Duration(config.FrameRate),
		status: StatusMenu,
		menu:   NewMenu(),
		info:   NewInfo(),
		game:   NewGame(f),
	}, nil
}

func (a *App) active() Screen {
	switch a.status {
	case StatusGame:
		return a.game
	case StatusInfo:
		return a.info
	default:
		return a.menu
	}
}

// Run drives the loop until the status becomes Exit.
func (a *App) Run() error {
	defer a.scr.Close()
	a.lgr.Log("low", "Started", fmt.Sprintf("field %dx%d", a.field.Width, a.field.Height))

	for a.status != StatusExit {
		key, ok := a.scr.Poll()
		if !ok {
			if a.status == StatusGame {
				a.game.Update(time.Now(), a.field)
			}
			a.scr.Clear()
			a.active().Render(a.scr, a.field)
			a.scr.Flush()
			time.Sleep(a.frame)
			continue
		}

		prev := a.status
		a.status = a.active().HandleInput(key, a.field)
		if a.status != prev {
			if prev == StatusGame {
				a.lgr.Log("low", "Screen", fmt.Sprintf("%v -> %v, score %d", prev, a.status, a.game.Score()))
			} else {
				a.lgr.Log("low", "Screen", fmt.Sprintf("%v -> %v", prev, a.status))
			}
		}
	}

	a.lgr.Log("low", "Stopped", "")
	return nil
}
