package engine

// Status is the outcome of one tick
type Status uint8

const (
	StatusHungry Status = iota // Moved, nothing eaten
	StatusFed                  // Fruit eaten this tick
	StatusDead                 // Head ran into the body, terminal
)

func (s Status) String() string {
	switch s {
	case StatusHungry:
		return "hungry"
	case StatusFed:
		return "fed"
	case StatusDead:
		return "dead"
	default:
		return "unknown"
	}
}
