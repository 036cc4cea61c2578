package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that stands still while paused
// Fruit lifetimes are measured against it so a paused game does not rot its fruit
type PausableClock struct {
	mu sync.RWMutex

	base TimeProvider

	paused          bool
	pauseStartTime  time.Time     // Real time when the current pause started
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a pausable clock over the given real time source
// A nil source uses the monotonic provider
func NewPausableClock(base TimeProvider) *PausableClock {
	if base == nil {
		base = NewMonotonicTimeProvider()
	}
	return &PausableClock{base: base}
}

// Now returns current game time: real time minus all paused time
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pauseStartTime.Add(-pc.totalPausedTime)
	}
	return pc.base.Now().Add(-pc.totalPausedTime)
}

// RealTime returns the underlying time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.base.Now()
}

// Pause stops game time advancement, returns false if already paused
func (pc *PausableClock) Pause() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return false
	}
	pc.paused = true
	pc.pauseStartTime = pc.base.Now()
	return true
}

// Resume continues game time advancement, returns false if not paused
func (pc *PausableClock) Resume() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return false
	}
	pc.totalPausedTime += pc.base.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.paused = false
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time, including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.base.Now().Sub(pc.pauseStartTime)
	}
	return total
}
