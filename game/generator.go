package game

import "math/rand/v2"

// Generator draws uniform random coordinates inside the field, keeping one
// cell of clearance from the border on every side.
type Generator struct {
	rnd           *rand.Rand
	width, height int
}

// NewGenerator returns a generator for a field bounded by width and height.
// Both must be at least 2 for the interior to be non-empty.
func NewGenerator(width, height int, seed uint64) *Generator {
	return &Generator{
		rnd:    rand.New(rand.NewPCG(seed, 0)),
		width:  width,
		height: height,
	}
}

// Next returns a coordinate in [1, width-1] x [1, height-1].
func (g *Generator) Next() Cord {
	return Cord{
		X: g.rnd.IntN(g.width-1) + 1,
		Y: g.rnd.IntN(g.height-1) + 1,
	}
}
