package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
)

func newTestApp(t *testing.T, n int) *app {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 30)

	cfg := engine.DefaultSessionConfig(n)
	cfg.Seed = 7
	return newApp(screen, input.DefaultKeyTable(), engine.NewSession(cfg))
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestAppQuit(t *testing.T) {
	a := newTestApp(t, 10)
	if a.handleEvent(key('q')) {
		t.Error("q should quit")
	}
	if a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc should quit")
	}
	if !a.handleEvent(key('x')) {
		t.Error("Unbound key should be ignored")
	}
}

func TestAppSteering(t *testing.T) {
	a := newTestApp(t, 10)

	a.handleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if a.next != core.Up {
		t.Fatalf("next = %s, want up", a.next)
	}
	a.step()
	if got := a.session.Game().Facing(); got != core.Up {
		t.Errorf("Facing() = %s, want up", got)
	}

	// Reversal is rejected, the request falls back to the current heading
	a.handleEvent(key('j'))
	a.step()
	if got := a.session.Game().Facing(); got != core.Up {
		t.Errorf("Facing() after reversal = %s, want up", got)
	}
	if a.next != core.Up {
		t.Errorf("next = %s, want reset to up", a.next)
	}
	if a.session.Ticks() != 2 {
		t.Errorf("Ticks() = %d, want 2", a.session.Ticks())
	}
}

func TestAppPause(t *testing.T) {
	a := newTestApp(t, 10)

	a.handleEvent(key(' '))
	if !a.session.Paused() {
		t.Fatal("Space should pause")
	}
	a.step()
	if a.session.Ticks() != 0 {
		t.Error("Paused step advanced the game")
	}

	a.handleEvent(key(' '))
	if a.session.Paused() {
		t.Fatal("Space should resume")
	}
	a.step()
	if a.session.Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", a.session.Ticks())
	}
}

func TestAppGameOverWaitsForKey(t *testing.T) {
	// A 1×1 grid dies on the first move
	a := newTestApp(t, 1)
	if status := a.step(); status != engine.StatusDead {
		t.Fatalf("status = %s, want dead", status)
	}
	if a.handleEvent(key('x')) {
		t.Error("Any key should leave the game over screen")
	}
}

func TestAppRunStopsOnQuit(t *testing.T) {
	a := newTestApp(t, 10)
	events := make(chan tcell.Event, 1)
	events <- key('q')

	done := make(chan struct{})
	go func() {
		a.run(events)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after quit")
	}
}

func TestAppRunTicks(t *testing.T) {
	a := newTestApp(t, 10)
	events := make(chan tcell.Event)

	done := make(chan struct{})
	go func() {
		a.run(events)
		close(done)
	}()

	// Default speed ticks every 100ms
	time.Sleep(350 * time.Millisecond)
	close(events)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after the event source closed")
	}
	if a.session.Ticks() == 0 {
		t.Error("Expected the timer to advance the game")
	}
}

func TestPollEvents(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %v", err)
	}

	events := make(chan tcell.Event, 4)
	go pollEvents(screen, events)

	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	select {
	case ev := <-events:
		if k, ok := ev.(*tcell.EventKey); !ok || k.Rune() != 'w' {
			t.Errorf("Unexpected event %T %v", ev, ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("No event forwarded")
	}

	screen.Fini()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("Events channel not closed after Fini")
		}
	}
}
