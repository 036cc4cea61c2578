package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// Game is the snake simulation on an n×n toroidal grid
// Not safe for concurrent use; one goroutine owns it for the whole session
type Game struct {
	size  core.Point
	head  core.Point
	snake *component.Snake

	fruitPos core.Point
	fruit    component.Fruit

	score int

	rng   core.RandSource
	clock TimeProvider
}

// NewGame creates a game on an n×n grid with the head centered
// A nil rng uses a time-seeded source, a nil clock the monotonic provider
func NewGame(n int, rng core.RandSource, clock TimeProvider) *Game {
	if n < 1 {
		panic(fmt.Sprintf("engine: grid size must be positive, got %d", n))
	}
	if rng == nil {
		rng = core.NewRandSource(0)
	}
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}

	g := &Game{
		size:  core.Square(n),
		head:  core.Point{X: n / 2, Y: n / 2},
		snake: component.NewSnake(parameter.SnakeInitialStep.Opposite(), parameter.SnakeMinLength),
		rng:   rng,
		clock: clock,
	}
	g.spawnFruit()
	return g
}

// ProcessInput runs one tick with the requested direction
// Returns the tick status and the direction actually taken
func (g *Game) ProcessInput(requested core.Direction) (Status, core.Direction) {
	facing := g.snake.Direction()
	dir := requested
	// Reversing straight into the body is ignored
	if dir == facing.Opposite() {
		dir = facing
	}

	g.head.Move(dir, g.size)

	status := StatusHungry
	if g.head == g.fruitPos {
		g.score += g.fruit.Score
		g.spawnFruit()
		g.snake.Grow(dir)
		status = StatusFed
	} else {
		g.snake.Crawl(dir)
	}

	body := BodyPositions(g.head, g.snake.Steps(), g.size)
	for _, p := range body[1:] {
		if p == g.head {
			status = StatusDead
			break
		}
	}

	return status, dir
}

// Refresh replaces the fruit if it has rotten, returns true when it did
func (g *Game) Refresh() bool {
	if !g.fruit.Rotten(g.clock.Now()) {
		return false
	}
	g.spawnFruit()
	return true
}

// Board returns n*n cells in row-major order (index y*n+x)
func (g *Game) Board() []Cell {
	n := g.size.X
	cells := make([]Cell, n*g.size.Y)
	for i := range cells {
		cells[i] = emptyCell()
	}

	fruit := &cells[g.fruitPos.Index(n)]
	fruit.Kind = CellFruit
	fruit.Glyph = g.fruit.Symbol
	fruit.Fg = g.fruit.Color

	body := BodyPositions(g.head, g.snake.Steps(), g.size)
	for _, p := range body[1:] {
		c := &cells[p.Index(n)]
		c.Kind = CellBody
		c.Glyph = parameter.GlyphBody
		c.Fg = parameter.ColorBody
	}

	head := &cells[g.head.Index(n)]
	head.Kind = CellHead
	head.Glyph = parameter.GlyphHead
	head.Fg = parameter.ColorHead

	return cells
}

// Score returns the accumulated score
func (g *Game) Score() int {
	return g.score
}

// Size returns the grid side length
func (g *Game) Size() int {
	return g.size.X
}

// Head returns the head position
func (g *Game) Head() core.Point {
	return g.head
}

// Facing returns the direction the snake will keep moving in
func (g *Game) Facing() core.Direction {
	return g.snake.Direction()
}

// SnakeLen returns the body length, head excluded
func (g *Game) SnakeLen() int {
	return g.snake.Len()
}

// Body returns every cell occupied by the snake, head first
func (g *Game) Body() []core.Point {
	return BodyPositions(g.head, g.snake.Steps(), g.size)
}

// Fruit returns the current fruit
func (g *Game) Fruit() component.Fruit {
	return g.fruit
}

// FruitPosition returns the current fruit cell
func (g *Game) FruitPosition() core.Point {
	return g.fruitPos
}

// spawnFruit places a new random fruit anywhere on the grid
// Snake cells are not excluded; a fruit may appear under the body until it moves on
func (g *Game) spawnFruit() {
	g.fruitPos = core.RandomPoint(g.rng, g.size)
	g.fruit = component.RandomFruit(g.rng, g.clock.Now())
}
