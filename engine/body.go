package engine

import "github.com/lixenwraith/vi-snake/core"

// BodyPositions walks the relative steps from head and returns every occupied cell
// Index 0 is the head; the result has len(steps)+1 entries
func BodyPositions(head core.Point, steps []core.Direction, bounds core.Point) []core.Point {
	out := make([]core.Point, 0, len(steps)+1)
	out = append(out, head)
	pos := head
	for _, d := range steps {
		pos.Move(d, bounds)
		out = append(out, pos)
	}
	return out
}
