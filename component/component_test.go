package component

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// sequenceRand returns scripted values modulo n
type sequenceRand struct {
	values []int
	next   int
}

func (r *sequenceRand) Intn(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func TestNewSnake(t *testing.T) {
	tests := []struct {
		name    string
		facing  core.Direction
		length  int
		wantLen int
	}{
		{"Default length", core.Right, 3, 3},
		{"Longer", core.Up, 6, 6},
		{"Clamped to minimum", core.Down, 1, parameter.SnakeMinLength},
		{"Zero clamped", core.Left, 0, parameter.SnakeMinLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(tt.facing, tt.length)
			if s.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", s.Len(), tt.wantLen)
			}
			if s.Direction() != tt.facing {
				t.Errorf("Direction() = %s, want %s", s.Direction(), tt.facing)
			}
			for i, step := range s.Steps() {
				if step != tt.facing.Opposite() {
					t.Errorf("step %d = %s, want %s", i, step, tt.facing.Opposite())
				}
			}
		})
	}
}

func TestSnakeGrow(t *testing.T) {
	s := NewSnake(core.Right, 3)
	s.Grow(core.Down)

	if s.Len() != 4 {
		t.Fatalf("Len() after Grow = %d, want 4", s.Len())
	}
	if s.Direction() != core.Down {
		t.Errorf("Direction() = %s, want down", s.Direction())
	}
	want := []core.Direction{core.Up, core.Left, core.Left, core.Left}
	for i, step := range s.Steps() {
		if step != want[i] {
			t.Errorf("step %d = %s, want %s", i, step, want[i])
		}
	}
}

func TestSnakeCrawl(t *testing.T) {
	s := NewSnake(core.Right, 3)
	s.Crawl(core.Up)
	s.Crawl(core.Left)

	if s.Len() != 3 {
		t.Fatalf("Len() after Crawl = %d, want 3", s.Len())
	}
	if s.Direction() != core.Left {
		t.Errorf("Direction() = %s, want left", s.Direction())
	}
	want := []core.Direction{core.Right, core.Down, core.Left}
	for i, step := range s.Steps() {
		if step != want[i] {
			t.Errorf("step %d = %s, want %s", i, step, want[i])
		}
	}
}

func TestSnakeStepsIsCopy(t *testing.T) {
	s := NewSnake(core.Right, 3)
	steps := s.Steps()
	steps[0] = core.Up
	if s.Direction() != core.Right {
		t.Error("Mutating Steps() result changed the snake")
	}
}

func TestLookupFruit(t *testing.T) {
	for _, k := range parameter.FruitCatalog {
		got := LookupFruit(k.Symbol)
		if got != k {
			t.Errorf("LookupFruit(%q) = %+v, want %+v", k.Symbol, got, k)
		}
	}

	if got := LookupFruit('x'); got != (parameter.FruitKind{}) {
		t.Errorf("LookupFruit('x') = %+v, want zero kind", got)
	}
}

func TestNewFruitUnknownSymbol(t *testing.T) {
	f := NewFruit('?', time.Now())
	if f.Color != 0 || f.Score != 0 || f.TTL != 0 {
		t.Errorf("Unknown fruit should be neutral, got %+v", f)
	}
	if f.Name() != "unknown" {
		t.Errorf("Name() = %q, want unknown", f.Name())
	}
}

func TestFruitRotten(t *testing.T) {
	born := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Zero TTL", func(t *testing.T) {
		f := Fruit{Symbol: 'x', TTL: 0, Born: born}
		if f.Rotten(born) {
			t.Error("Fruit should not be rotten at birth")
		}
		if !f.Rotten(born.Add(time.Nanosecond)) {
			t.Error("Zero-TTL fruit should be rotten once time advances")
		}
	})

	t.Run("Catalog TTL", func(t *testing.T) {
		f := NewFruit('🍍', born)
		if f.Rotten(born.Add(f.TTL)) {
			t.Error("Fruit should not be rotten exactly at TTL")
		}
		if !f.Rotten(born.Add(f.TTL + time.Millisecond)) {
			t.Error("Fruit should be rotten after TTL")
		}
	})

	t.Run("Monotonic", func(t *testing.T) {
		f := NewFruit('🍇', born)
		rotten := false
		for ms := 0; ms <= 3000; ms += 50 {
			now := born.Add(time.Duration(ms) * time.Millisecond)
			if rotten && !f.Rotten(now) {
				t.Fatalf("Fruit un-rotted at %dms", ms)
			}
			rotten = f.Rotten(now)
		}
		if !rotten {
			t.Error("Fruit never rotted")
		}
	})
}

func TestRandomFruit(t *testing.T) {
	born := time.Now()
	rng := &sequenceRand{values: []int{0, 10, 4}}

	wants := []rune{'🍏', '🍍', '🍒'}
	for i, want := range wants {
		f := RandomFruit(rng, born)
		if f.Symbol != want {
			t.Errorf("draw %d: Symbol = %q, want %q", i, f.Symbol, want)
		}
		if f.Score <= 0 || f.TTL <= 0 {
			t.Errorf("draw %d: catalog fruit has neutral attributes %+v", i, f)
		}
		if !f.Born.Equal(born) {
			t.Errorf("draw %d: Born = %v, want %v", i, f.Born, born)
		}
	}
}
