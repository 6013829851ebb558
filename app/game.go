package app

import (
	"fmt"
	"time"

	"tsnake/game"
	"tsnake/screen"
)

// Movement timing. Each pea eaten shaves speedStep off the tick interval
// until it bottoms out at minInterval.
const (
	baseInterval = 160 * time.Millisecond
	speedStep    = 8 * time.Millisecond
	minInterval  = 60 * time.Millisecond
)

// Game is the play screen. It owns the snake and the coordinate generator
// for its whole lifetime; leaving to the menu does not reset it.
type Game struct {
	snake *game.Snake
	gen   *game.Generator
	food  game.Cord

	// lastDir is the direction applied at the most recent advance. The
	// reversal guard checks against it rather than the requested facing,
	// so two quick 90° turns inside one tick cannot fold the snake onto
	// its neck.
	lastDir game.Direction

	score    int
	interval time.Duration
	status   game.Status
	lastTick time.Time
}

func NewGame(f Field) *Game {
	start := game.Cord{X: f.Width / 2, Y: f.Height / 2}
	g := &Game{
		snake:    game.NewSnake(start, game.Right),
		gen:      game.NewGenerator(f.Width, f.Height, uint64(time.Now().UnixNano())),
		lastDir:  game.Right,
		interval: baseInterval,
		status:   game.Running,
		lastTick: time.Now(),
	}
	g.placeFood()
	return g
}

// Score returns the number of peas eaten since the last restart.
func (g *Game) Score() int { return g.score }

// Update runs one movement tick if the screen is Running and the tick
// interval has elapsed since the previous one. Collision and food checks
// happen after the movement step, boundary crossing included, so an edge
// coordinate never underflows into the border arithmetic.
func (g *Game) Update(now time.Time, f Field) {
	if g.status != game.Running {
		return
	}
	if now.Sub(g.lastTick) < g.interval {
		return
	}
	g.lastTick = now

	g.snake.Advance()
	g.lastDir = g.snake.Facing

	head := g.snake.Head()
	if head.X <= 0 || head.X >= f.Width || head.Y <= 0 || head.Y >= f.Height || g.snake.SelfCollision() {
		g.status = game.GameOver
		return
	}

	if head == g.food {
		g.score++
		g.snake.Grow()
		g.interval = max(minInterval, g.interval-speedStep)
		g.placeFood()
	}
}

// placeFood resamples until the pea lands off the snake body.
func (g *Game) placeFood() {
	c := g.gen.Next()
	for g.snake.Contains(c) {
		c = g.gen.Next()
	}
	g.food = c
}

func (g *Game) HandleInput(key screen.Key, f Field) Status {
	switch key {
	case screen.KeyQuit:
		return StatusMenu
	case screen.KeyPause:
		switch g.status {
		case game.Running:
			g.status = game.Paused
		case game.Paused:
			g.status = game.Running
		}
	case screen.KeyRestart:
		g.restart()
	case screen.KeyUp:
		g.steer(game.Up)
	case screen.KeyRight:
		g.steer(game.Right)
	case screen.KeyDown:
		g.steer(game.Down)
	case screen.KeyLeft:
		g.steer(game.Left)
	}
	return StatusGame
}

// steer sets the facing direction, rejecting the exact reversal of the
// direction the snake last moved in. Direction keys are accepted in every
// state; movement stays gated by the game status.
func (g *Game) steer(d game.Direction) {
	if d == g.lastDir.Opposite() {
		return
	}
	g.snake.SetDirection(d)
}

// restart puts the screen back into its initial shape but leaves it Paused
// so the player resumes explicitly. Accepted in any state.
func (g *Game) restart() {
	g.snake.Reset()
	g.lastDir = g.snake.Facing
	g.score = 0
	g.interval = baseInterval
	g.status = game.Paused
	g.placeFood()
}

func (g *Game) Render(scr *screen.Screen, f Field) {
	drawBorder(scr, f)

	scr.SetCell(g.food.X, g.food.Y, '●', screen.ColorYellow, screen.ColorDefault)
	for _, c := range g.snake.Body {
		scr.SetCell(c.X, c.Y, ' ', screen.ColorGreen, screen.ColorGreen)
	}

	bar := fmt.Sprintf("Score: %d   Speed: %dms   Field: %dx%d",
		g.score, g.interval.Milliseconds(), f.Width, f.Height)
	scr.Print(1, f.Height+1, screen.ColorDefault, screen.ColorDefault, bar)

	// Banners are drawn on every render pass; only movement is tick-gated.
	switch g.status {
	case game.Paused:
		banner(scr, f, screen.ColorYellow|screen.AttrBold, "PAUSED - press p to resume")
	case game.GameOver:
		banner(scr, f, screen.ColorRed|screen.AttrBold,
			fmt.Sprintf("GAME OVER - score %d - r restarts, q for menu", g.score))
	}
}

func drawBorder(scr *screen.Screen, f Field) {
	for x := 1; x < f.Width; x++ {
		scr.SetCell(x, 0, '─', screen.ColorDefault, screen.ColorDefault)
		scr.SetCell(x, f.Height, '─', screen.ColorDefault, screen.ColorDefault)
	}
	for y := 1; y < f.Height; y++ {
		scr.SetCell(0, y, '│', screen.ColorDefault, screen.ColorDefault)
		scr.SetCell(f.Width, y, '│', screen.ColorDefault, screen.ColorDefault)
	}
	scr.SetCell(0, 0, '┌', screen.ColorDefault, screen.ColorDefault)
	scr.SetCell(f.Width, 0, '┐', screen.ColorDefault, screen.ColorDefault)
	scr.SetCell(0, f.Height, '└', screen.ColorDefault, screen.ColorDefault)
	scr.SetCell(f.Width, f.Height, '┘', screen.ColorDefault, screen.ColorDefault)
}

func banner(scr *screen.Screen, f Field, attr screen.Attr, msg string) {
	x := max(1, (f.Width-len(msg))/2)
	scr.Print(x, f.Height/2, attr, screen.ColorDefault, msg)
}
