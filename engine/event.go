package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
)

// EventType represents the type of game event
type EventType int

const (
	// EventFed is emitted when the head lands on the fruit
	EventFed EventType = iota
	// EventRot is emitted when a rotten fruit is replaced
	EventRot
	// EventDead is emitted once, on the tick the snake hits itself
	EventDead
	// EventPause is emitted when the session pauses
	EventPause
	// EventResume is emitted when the session resumes
	EventResume
)

func (t EventType) String() string {
	switch t {
	case EventFed:
		return "fed"
	case EventRot:
		return "rot"
	case EventDead:
		return "dead"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	default:
		return "unknown"
	}
}

// GameEvent carries the state snapshot relevant to one event
type GameEvent struct {
	Type  EventType
	Tick  uint64
	Time  time.Time
	Score int
	Speed int
	Head  core.Point
	Fruit component.Fruit // Eaten fruit for EventFed, rotten fruit for EventRot
}
