package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/neon-strike/constants"
)

// MockTimeProvider is a hand-driven clock for tests
// Tick moves it forward one frame so a test can step the loop deterministically
type MockTimeProvider struct {
	mu    sync.Mutex
	start time.Time
	now   time.Time
	frame time.Duration
	ticks int
}

// NewMockTimeProvider starts the clock at start with the loop's frame interval as its tick
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		start: start,
		now:   start,
		frame: constants.FrameUpdateInterval,
	}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance jumps the clock by d without counting a frame
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// SetFrame changes the tick length; non-positive values are ignored
func (m *MockTimeProvider) SetFrame(d time.Duration) {
	if d <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frame = d
}

// Tick advances one frame and returns its length
func (m *MockTimeProvider) Tick() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(m.frame)
	m.ticks++
	return m.frame
}

// Frames ticks n times, calling fn after each tick
// fn runs without the lock held and may read Now
func (m *MockTimeProvider) Frames(n int, fn func(dt time.Duration)) {
	for i := 0; i < n; i++ {
		fn(m.Tick())
	}
}

// Elapsed is the mocked time since construction, advances included
func (m *MockTimeProvider) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now.Sub(m.start)
}

// Ticks returns how many frames have been stepped
func (m *MockTimeProvider) Ticks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ticks
}
