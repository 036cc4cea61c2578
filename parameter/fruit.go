package parameter

import "time"

// FruitKind is the fixed attribute set of one catalog entry
type FruitKind struct {
	Symbol rune
	Name   string
	Color  uint8 // 256-color palette index
	TTL    time.Duration
	Score  int
}

// FruitCatalog lists every fruit that can spawn
// Shorter-lived fruit is worth more
var FruitCatalog = [...]FruitKind{
	{Symbol: '🍏', Name: "green apple", Color: 47, TTL: 5000 * time.Millisecond, Score: 1},
	{Symbol: '🍎', Name: "red apple", Color: 88, TTL: 4500 * time.Millisecond, Score: 2},
	{Symbol: '🍐', Name: "pear", Color: 36, TTL: 4000 * time.Millisecond, Score: 3},
	{Symbol: '🍑', Name: "peach", Color: 179, TTL: 3500 * time.Millisecond, Score: 4},
	{Symbol: '🍒', Name: "cherry", Color: 169, TTL: 3000 * time.Millisecond, Score: 5},
	{Symbol: '🍋', Name: "lemon", Color: 118, TTL: 2500 * time.Millisecond, Score: 6},
	{Symbol: '🍉', Name: "watermelon", Color: 9, TTL: 2000 * time.Millisecond, Score: 7},
	{Symbol: '🍓', Name: "strawberry", Color: 1, TTL: 1500 * time.Millisecond, Score: 8},
	{Symbol: '🍇', Name: "grapes", Color: 54, TTL: 1000 * time.Millisecond, Score: 9},
	{Symbol: '🍈', Name: "melon", Color: 9, TTL: 800 * time.Millisecond, Score: 10},
	{Symbol: '🍍', Name: "pineapple", Color: 191, TTL: 500 * time.Millisecond, Score: 11},
}
