package component

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// Snake stores the body as relative steps behind the head
// steps[i] leads from segment i to segment i+1, segment 0 being the head
// The head position itself is owned by the game
type Snake struct {
	steps []core.Direction
}

// NewSnake creates a snake facing the given direction
// Length is raised to parameter.SnakeMinLength
func NewSnake(facing core.Direction, length int) *Snake {
	if length < parameter.SnakeMinLength {
		length = parameter.SnakeMinLength
	}
	steps := make([]core.Direction, length)
	back := facing.Opposite()
	for i := range steps {
		steps[i] = back
	}
	return &Snake{steps: steps}
}

// Grow advances the head in d and keeps every segment
func (s *Snake) Grow(d core.Direction) {
	s.steps = append(s.steps, 0)
	copy(s.steps[1:], s.steps)
	s.steps[0] = d.Opposite()
}

// Crawl advances the head in d at constant length
func (s *Snake) Crawl(d core.Direction) {
	s.Grow(d)
	s.steps = s.steps[:len(s.steps)-1]
}

// Direction returns the facing, the direction of the last move
func (s *Snake) Direction() core.Direction {
	return s.steps[0].Opposite()
}

// Len returns the body length, head excluded
func (s *Snake) Len() int {
	return len(s.steps)
}

// Steps returns a copy of the relative steps, head side first
func (s *Snake) Steps() []core.Direction {
	out := make([]core.Direction, len(s.steps))
	copy(out, s.steps)
	return out
}
