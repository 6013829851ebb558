package app

import (
	"testing"

	"tsnake/screen"

	"github.com/stretchr/testify/require"
)

func TestMenuSelectionWrapsAtBothEnds(t *testing.T) {
	m := NewMenu()
	require.Equal(t, 0, m.selected)

	m.HandleInput(screen.KeyUp, testField)
	require.Equal(t, len(m.options)-1, m.selected)

	m.HandleInput(screen.KeyDown, testField)
	require.Equal(t, 0, m.selected)

	m.HandleInput(screen.KeyDown, testField)
	require.Equal(t, 1, m.selected)
}

func TestMenuConfirmMapsOptionsToStatus(t *testing.T) {
	m := NewMenu()
	require.Equal(t, StatusGame, m.HandleInput(screen.KeyEnter, testField))

	m.selected = 1
	require.Equal(t, StatusInfo, m.HandleInput(screen.KeyEnter, testField))

	m.selected = 2
	require.Equal(t, StatusExit, m.HandleInput(screen.KeyEnter, testField))
}

func TestMenuIgnoresUnboundKeys(t *testing.T) {
	m := NewMenu()
	require.Equal(t, StatusMenu, m.HandleInput(screen.KeyNone, testField))
	require.Equal(t, 0, m.selected)
}

func TestInfoLeavesOnQuitOnly(t *testing.T) {
	i := NewInfo()
	require.Equal(t, StatusInfo, i.HandleInput(screen.KeyEnter, testField))
	require.Equal(t, StatusInfo, i.HandleInput(screen.KeyDown, testField))
	require.Equal(t, StatusMenu, i.HandleInput(screen.KeyQuit, testField))
}
