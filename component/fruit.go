package component

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// Fruit is a collectible that rots after its time-to-live
type Fruit struct {
	Symbol rune
	Color  uint8
	Score  int
	TTL    time.Duration
	Born   time.Time
}

// LookupFruit returns the catalog entry for symbol, or the zero kind if unknown
func LookupFruit(symbol rune) parameter.FruitKind {
	for _, k := range parameter.FruitCatalog {
		if k.Symbol == symbol {
			return k
		}
	}
	return parameter.FruitKind{}
}

// NewFruit creates a fruit of the given symbol born at the given time
func NewFruit(symbol rune, born time.Time) Fruit {
	k := LookupFruit(symbol)
	return Fruit{
		Symbol: symbol,
		Color:  k.Color,
		Score:  k.Score,
		TTL:    k.TTL,
		Born:   born,
	}
}

// RandomFruit picks a uniformly random catalog entry
func RandomFruit(rng core.RandSource, born time.Time) Fruit {
	k := parameter.FruitCatalog[rng.Intn(len(parameter.FruitCatalog))]
	return NewFruit(k.Symbol, born)
}

// Rotten reports whether more than TTL has elapsed since Born
func (f Fruit) Rotten(now time.Time) bool {
	return now.Sub(f.Born) > f.TTL
}

// Name returns the catalog name of the fruit
func (f Fruit) Name() string {
	if k := LookupFruit(f.Symbol); k.Name != "" {
		return k.Name
	}
	return "unknown"
}
