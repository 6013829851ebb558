package game

// Cord is a cell position on the field, compared by value.
type Cord struct{ X, Y int }

// Snake owns the ordered body segments, head first, and the facing
// direction. The body always holds at least one segment.
type Snake struct {
	Body   []Cord
	Facing Direction

	spawn    Cord
	spawnDir Direction
	pendGrow bool
}

func NewSnake(start Cord, facing Direction) *Snake {
	return &Snake{
		Body:     []Cord{start},
		Facing:   facing,
		spawn:    start,
		spawnDir: facing,
	}
}

// Head returns the first body segment.
func (s *Snake) Head() Cord { return s.Body[0] }

// SetDirection assigns the facing direction unconditionally. The reversal
// guard is the game screen's responsibility, not the snake's.
func (s *Snake) SetDirection(d Direction) { s.Facing = d }

// Grow marks the snake for growth; the next Advance keeps the tail segment
// instead of dropping it.
func (s *Snake) Grow() { s.pendGrow = true }

// Advance shifts every segment to the position of its predecessor, tail to
// head, then steps the head one cell along the facing direction.
func (s *Snake) Advance() {
	dx, dy := s.Facing.Delta()
	head := Cord{X: s.Body[0].X + dx, Y: s.Body[0].Y + dy}

	if s.pendGrow {
		s.Body = append([]Cord{head}, s.Body...)
		s.pendGrow = false
		return
	}

	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
	}
	s.Body[0] = head
}

// Contains reports whether any segment occupies c.
func (s *Snake) Contains(c Cord) bool {
	for _, b := range s.Body {
		if b == c {
			return true
		}
	}
	return false
}

// SelfCollision reports whether the head overlaps any other segment. Only
// meaningful right after an Advance.
func (s *Snake) SelfCollision() bool {
	for _, b := range s.Body[1:] {
		if b == s.Body[0] {
			return true
		}
	}
	return false
}

// Reset truncates the body to a single segment back at the spawn position,
// facing the spawn direction again.
func (s *Snake) Reset() {
	s.Body = []Cord{s.spawn}
	s.Facing = s.spawnDir
	s.pendGrow = false
}
