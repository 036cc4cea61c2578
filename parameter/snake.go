package parameter

import "github.com/lixenwraith/vi-snake/core"

// Snake spawn
const (
	// SnakeMinLength is the body length at game start; crawling never goes below it
	SnakeMinLength = 3

	// SnakeInitialStep is the relative step stored for each initial segment
	// Segments trail to the left, so the snake starts facing right
	SnakeInitialStep = core.Left
)
