package core

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/vmath"
)

// Point is a cell coordinate on a toroidal grid
// Both axes stay in [0, bound) under Move
type Point struct {
	X, Y int
}

// Square returns the bounds of an n×n grid
func Square(n int) Point {
	return Point{X: n, Y: n}
}

// Move steps the point one cell in d, wrapping at the bounds
func (p *Point) Move(d Direction, bounds Point) {
	switch d {
	case Left:
		p.X = vmath.WrapDec(p.X, bounds.X)
	case Right:
		p.X = vmath.WrapInc(p.X, bounds.X)
	case Up:
		p.Y = vmath.WrapDec(p.Y, bounds.Y)
	case Down:
		p.Y = vmath.WrapInc(p.Y, bounds.Y)
	}
}

// Moved returns a copy of p stepped one cell in d
func (p Point) Moved(d Direction, bounds Point) Point {
	p.Move(d, bounds)
	return p
}

// Index returns the row-major index of p in a grid of the given width
func (p Point) Index(width int) int {
	return p.Y*width + p.X
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// RandomPoint draws a uniformly distributed point in [0,bounds.X) × [0,bounds.Y)
func RandomPoint(rng RandSource, bounds Point) Point {
	return Point{
		X: rng.Intn(bounds.X),
		Y: rng.Intn(bounds.Y),
	}
}
