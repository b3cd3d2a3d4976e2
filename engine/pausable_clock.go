package engine

import (
	"sync"
	"time"
)

// PausableClock measures elapsed game time, excluding paused intervals
// Paused while an upgrade choice is pending so cooldowns and difficulty do not advance
type PausableClock struct {
	mu       sync.RWMutex
	provider TimeProvider

	startTime time.Time // Epoch of the current session (real time)

	// Pause state
	paused          bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration since epoch
}

// NewPausableClock creates a running clock whose epoch is the provider's current time
func NewPausableClock(provider TimeProvider) *PausableClock {
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Reset restarts the epoch and clears pause state
func (pc *PausableClock) Reset() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.startTime = pc.provider.Now()
	pc.paused = false
	pc.pauseStartTime = time.Time{}
	pc.totalPausedTime = 0
}

// Elapsed returns game time since the epoch; frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	end := pc.provider.Now()
	if pc.paused {
		end = pc.pauseStartTime
	}
	return end.Sub(pc.startTime) - pc.totalPausedTime
}

// RealTime returns actual wall clock time (unaffected by pause)
func (pc *PausableClock) RealTime() time.Time {
	return pc.provider.Now()
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.provider.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.paused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including any current pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
