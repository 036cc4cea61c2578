package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// SessionConfig configures one game session
type SessionConfig struct {
	Size      int    // Grid side length
	Seed      uint64 // 0 selects a time-based seed
	BaseSpeed int    // Starting speed, tick interval is parameter.SpeedScale / speed
	SpeedStep int    // Speed added per fruit eaten

	// Optional overrides, used by tests
	Rand  core.RandSource
	Clock TimeProvider // Real time source under the pausable game clock
}

// DefaultSessionConfig returns the stock speed curve for an n×n grid
func DefaultSessionConfig(n int) SessionConfig {
	return SessionConfig{
		Size:      n,
		BaseSpeed: parameter.SpeedBase,
		SpeedStep: parameter.SpeedStep,
	}
}

// Session drives a Game tick by tick: speed curve, pause, events and logging
type Session struct {
	id     string
	game   *Game
	clock  *PausableClock
	router *EventRouter
	log    *log.Logger

	speed int
	step  int
	ticks uint64
	dead  bool
}

// NewSession creates a session and its game
func NewSession(cfg SessionConfig) *Session {
	id := uuid.NewString()

	rng := cfg.Rand
	if rng == nil {
		rng = core.NewRandSource(cfg.Seed)
	}
	speed := cfg.BaseSpeed
	if speed <= 0 {
		speed = parameter.SpeedBase
	}
	step := cfg.SpeedStep
	if step < 0 {
		step = 0
	}

	clock := NewPausableClock(cfg.Clock)
	s := &Session{
		id:     id,
		game:   NewGame(cfg.Size, rng, clock),
		clock:  clock,
		router: NewEventRouter(),
		log: log.New(
			log.Writer(),
			fmt.Sprintf("[session:%s] ", id[:8]),
			log.Flags()|log.Lmsgprefix),
		speed: speed,
		step:  step,
	}

	s.log.Printf("started: grid %dx%d, speed %d (+%d per fruit), fruit %s at %v",
		cfg.Size, cfg.Size, s.speed, s.step, s.game.Fruit().Name(), s.game.FruitPosition())
	return s
}

// RegisterEventHandler adds an event handler to the session router
func (s *Session) RegisterEventHandler(handler EventHandler) {
	s.router.Register(handler)
}

// Tick advances the game one step in the requested direction
// Once dead, further ticks do nothing and return StatusDead
func (s *Session) Tick(requested core.Direction) Status {
	if s.dead {
		return StatusDead
	}
	if s.clock.IsPaused() {
		return StatusHungry
	}

	s.ticks++
	eaten := s.game.Fruit()
	status, dir := s.game.ProcessInput(requested)

	switch status {
	case StatusFed:
		s.speed += s.step
		s.log.Printf("tick %d: ate %s (+%d), score %d, length %d, speed %d",
			s.ticks, eaten.Name(), eaten.Score, s.game.Score(), s.game.SnakeLen(), s.speed)
		s.push(EventFed, eaten)
	case StatusDead:
		s.dead = true
		s.log.Printf("tick %d: died moving %s at %v, score %d, length %d",
			s.ticks, dir, s.game.Head(), s.game.Score(), s.game.SnakeLen())
		s.push(EventDead, eaten)
	}

	if !s.dead {
		rotten := s.game.Fruit()
		if s.game.Refresh() {
			s.log.Printf("tick %d: %s rotted, respawned %s at %v",
				s.ticks, rotten.Name(), s.game.Fruit().Name(), s.game.FruitPosition())
			s.push(EventRot, rotten)
		}
	}

	s.router.DispatchAll()
	return status
}

// Pause freezes game time and ticking
func (s *Session) Pause() {
	if s.dead || !s.clock.Pause() {
		return
	}
	s.log.Printf("tick %d: paused", s.ticks)
	s.push(EventPause, s.game.Fruit())
	s.router.DispatchAll()
}

// Resume continues a paused session
func (s *Session) Resume() {
	if !s.clock.Resume() {
		return
	}
	s.log.Printf("tick %d: resumed after %v total pause", s.ticks, s.clock.TotalPauseDuration())
	s.push(EventResume, s.game.Fruit())
	s.router.DispatchAll()
}

// TogglePause pauses a running session or resumes a paused one
func (s *Session) TogglePause() {
	if s.clock.IsPaused() {
		s.Resume()
	} else {
		s.Pause()
	}
}

// Paused reports whether the session is paused
func (s *Session) Paused() bool {
	return s.clock.IsPaused()
}

// Dead reports whether the session has ended
func (s *Session) Dead() bool {
	return s.dead
}

// Interval returns the delay until the next tick at the current speed
func (s *Session) Interval() time.Duration {
	return parameter.SpeedScale / time.Duration(s.speed)
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Game returns the underlying game for rendering
func (s *Session) Game() *Game {
	return s.game
}

// Speed returns the current speed
func (s *Session) Speed() int {
	return s.speed
}

// Ticks returns the number of processed ticks
func (s *Session) Ticks() uint64 {
	return s.ticks
}

func (s *Session) push(t EventType, fruit component.Fruit) {
	s.router.Push(GameEvent{
		Type:  t,
		Tick:  s.ticks,
		Time:  s.clock.Now(),
		Score: s.game.Score(),
		Speed: s.speed,
		Head:  s.game.Head(),
		Fruit: fruit,
	})
}
