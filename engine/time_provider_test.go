package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/neon-strike/constants"
)

func TestMockTimeProviderFrames(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	var steps []time.Duration
	mock.Frames(3, func(dt time.Duration) {
		steps = append(steps, mock.Elapsed())
		if dt != constants.FrameUpdateInterval {
			t.Errorf("tick = %v, want %v", dt, constants.FrameUpdateInterval)
		}
	})
	for i, got := range steps {
		if want := time.Duration(i+1) * constants.FrameUpdateInterval; got != want {
			t.Errorf("elapsed at frame %d = %v, want %v", i, got, want)
		}
	}

	mock.Advance(time.Second)
	mock.SetFrame(0)
	mock.SetFrame(10 * time.Millisecond)
	if dt := mock.Tick(); dt != 10*time.Millisecond {
		t.Errorf("tick after SetFrame = %v, want 10ms", dt)
	}
	if mock.Ticks() != 4 {
		t.Errorf("Ticks = %d, want 4 (Advance is not a frame)", mock.Ticks())
	}
	want := 3*constants.FrameUpdateInterval + time.Second + 10*time.Millisecond
	if got := mock.Elapsed(); got != want {
		t.Errorf("Elapsed = %v, want %v", got, want)
	}
}

func TestPausableClockExcludesPauses(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock)

	mock.Advance(2 * time.Second)
	if got := clock.Elapsed(); got != 2*time.Second {
		t.Fatalf("Elapsed = %v, want 2s", got)
	}

	clock.Pause()
	mock.Advance(10 * time.Second)
	if got := clock.Elapsed(); got != 2*time.Second {
		t.Errorf("Elapsed moved while paused: %v", got)
	}
	if got := clock.TotalPauseDuration(); got != 10*time.Second {
		t.Errorf("TotalPauseDuration = %v, want 10s", got)
	}

	// Double pause is a no-op
	clock.Pause()
	clock.Resume()
	mock.Advance(time.Second)
	if got := clock.Elapsed(); got != 3*time.Second {
		t.Errorf("Elapsed after resume = %v, want 3s", got)
	}
	if clock.IsPaused() {
		t.Error("clock still paused after Resume")
	}
}

func TestPausableClockReset(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock)
	mock.Advance(time.Minute)
	clock.Pause()

	clock.Reset()
	if clock.IsPaused() || clock.Elapsed() != 0 {
		t.Fatalf("Reset left paused=%v elapsed=%v", clock.IsPaused(), clock.Elapsed())
	}
	mock.Advance(500 * time.Millisecond)
	if got := clock.Elapsed(); got != 500*time.Millisecond {
		t.Errorf("Elapsed = %v, want 500ms", got)
	}
}
