package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdvanceMovesHeadOneCell(t *testing.T) {
	s := NewSnake(Cord{X: 10, Y: 10}, Right)
	s.Advance()
	require.Equal(t, Cord{X: 11, Y: 10}, s.Head())
	require.Len(t, s.Body, 1, "no growth was pending")
}

func TestAdvanceShiftsBodyTailToHead(t *testing.T) {
	s := NewSnake(Cord{X: 5, Y: 5}, Right)
	s.Grow()
	s.Advance()
	s.Grow()
	s.Advance()
	require.Equal(t, []Cord{{X: 7, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 5}}, s.Body)

	before := append([]Cord{}, s.Body...)
	s.SetDirection(Down)
	s.Advance()
	require.Equal(t, Cord{X: 7, Y: 6}, s.Head())
	require.Equal(t, before[0], s.Body[1])
	require.Equal(t, before[1], s.Body[2])
}

func TestGrowExtendsOnNextAdvanceOnly(t *testing.T) {
	s := NewSnake(Cord{X: 3, Y: 3}, Right)
	s.Grow()
	s.Advance()
	require.Len(t, s.Body, 2, "pending growth keeps the tail")
	s.Advance()
	require.Len(t, s.Body, 2, "growth flag was consumed")
}

func TestContains(t *testing.T) {
	s := NewSnake(Cord{X: 2, Y: 2}, Right)
	s.Grow()
	s.Advance()
	require.True(t, s.Contains(Cord{X: 3, Y: 2}))
	require.True(t, s.Contains(Cord{X: 2, Y: 2}))
	require.False(t, s.Contains(Cord{X: 4, Y: 2}))
}

func TestSelfCollision(t *testing.T) {
	s := NewSnake(Cord{X: 2, Y: 2}, Right)
	require.False(t, s.SelfCollision(), "single segment cannot collide")

	s.Body = []Cord{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 2}, {X: 2, Y: 2}}
	require.True(t, s.SelfCollision())

	s.Body = []Cord{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}}
	require.False(t, s.SelfCollision())
}

func TestSetDirectionIsUnconditional(t *testing.T) {
	// The reversal guard belongs to the game screen; the model accepts
	// any assignment.
	s := NewSnake(Cord{X: 2, Y: 2}, Right)
	s.SetDirection(Left)
	require.Equal(t, Left, s.Facing)
}

func TestResetRestoresSpawn(t *testing.T) {
	s := NewSnake(Cord{X: 10, Y: 10}, Right)
	s.Grow()
	s.Advance()
	s.SetDirection(Down)
	s.Advance()
	s.Grow()

	s.Reset()
	require.Equal(t, []Cord{{X: 10, Y: 10}}, s.Body)
	require.Equal(t, Right, s.Facing)
	s.Advance()
	require.Len(t, s.Body, 1, "pending growth does not survive a reset")
}
