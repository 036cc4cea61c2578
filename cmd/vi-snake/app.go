package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

// app couples terminal events and the tick timer to a session
type app struct {
	screen   tcell.Screen
	keys     *input.KeyTable
	session  *engine.Session
	renderer *render.BoardRenderer

	// Last steering request, applied on the next tick
	next core.Direction
}

func newApp(screen tcell.Screen, keys *input.KeyTable, session *engine.Session) *app {
	return &app{
		screen:   screen,
		keys:     keys,
		session:  session,
		renderer: render.NewBoardRenderer(screen),
		next:     session.Game().Facing(),
	}
}

// handleEvent applies one terminal event, returning false when the app should exit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.Render(a.session)
	case *tcell.EventError:
		log.Printf("tcell error: %v", ev)
		return false
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	// Any key leaves the game over screen
	if a.session.Dead() {
		return false
	}

	action := a.keys.Resolve(ev)
	if d, ok := action.Direction(); ok {
		a.next = d
		return true
	}

	switch action {
	case input.ActionQuit:
		return false
	case input.ActionPause:
		a.session.TogglePause()
		a.renderer.Render(a.session)
	}
	return true
}

// step advances one tick and repaints
func (a *app) step() engine.Status {
	status := a.session.Tick(a.next)
	a.next = a.session.Game().Facing()
	a.renderer.Render(a.session)
	return status
}

// run loops until quit or until the event source closes
func (a *app) run(events <-chan tcell.Event) {
	a.renderer.Render(a.session)

	timer := time.NewTimer(a.session.Interval())
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handleEvent(ev) {
				return
			}

		case <-timer.C:
			if a.step() == engine.StatusDead {
				// Wait on the game over screen for a key
				continue
			}
			timer.Reset(a.session.Interval())
		}
	}
}

// pollEvents forwards screen events until the screen is finalized
func pollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}
