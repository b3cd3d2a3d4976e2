package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/engine"
	"github.com/lixenwraith/neon-strike/events"
)

const testFrame = 16 * time.Millisecond

// newPlayingWorld returns a 1000x800 world already in PhasePlaying with its queue drained
func newPlayingWorld(t *testing.T) *engine.World {
	t.Helper()
	w := engine.NewWorld(1000, 800, 7, events.NewQueue())
	if err := Reset(w); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	w.Events.Drain()
	// Keep the spawner quiet unless a test drives it
	w.SpawnAccum = 0
	return w
}

// runFrames steps n frames of testFrame on a mock clock continuing from the world's current time
func runFrames(w *engine.World, in core.Controls, n int) {
	epoch := time.Unix(0, 0)
	clock := engine.NewMockTimeProvider(epoch.Add(w.Now))
	clock.SetFrame(testFrame)
	clock.Frames(n, func(dt time.Duration) {
		Step(w, in, clock.Now().Sub(epoch), dt)
	})
}

// countEvents consumes the queue and tallies events by type
func countEvents(w *engine.World) map[events.EventType]int {
	counts := make(map[events.EventType]int)
	for _, ev := range w.Events.Consume() {
		counts[ev.Type]++
	}
	return counts
}
