package events

import (
	"testing"

	"github.com/lixenwraith/neon-strike/constants"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 5; i++ {
		if !q.Push(GameEvent{Type: EventShoot, Frame: int64(i)}) {
			t.Fatalf("push %d reported an eviction on an empty queue", i)
		}
	}
	if q.Len() != 5 {
		t.Fatalf("Len = %d, want 5", q.Len())
	}

	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("consumed %d events, want 5", len(got))
	}
	for i, ev := range got {
		if ev.Frame != int64(i) {
			t.Errorf("event %d has frame %d", i, ev.Frame)
		}
	}
	if q.Consume() != nil {
		t.Error("second consume should be empty")
	}
}

func TestQueueOverflowEvictsOldest(t *testing.T) {
	q := NewQueue()
	total := constants.EventQueueSize + 10
	evicted := 0
	for i := 0; i < total; i++ {
		if !q.Push(GameEvent{Frame: int64(i)}) {
			evicted++
		}
	}
	if evicted != 10 {
		t.Errorf("Push reported %d evictions, want 10", evicted)
	}

	got := q.Consume()
	if len(got) != constants.EventQueueSize {
		t.Fatalf("consumed %d, want %d", len(got), constants.EventQueueSize)
	}
	if got[0].Frame != 10 || got[len(got)-1].Frame != int64(total-1) {
		t.Errorf("surviving frames %d..%d, want 10..%d", got[0].Frame, got[len(got)-1].Frame, total-1)
	}
	if q.Dropped() != 10 {
		t.Errorf("Dropped = %d, want 10", q.Dropped())
	}
}

func TestQueueWrapsAcrossFrames(t *testing.T) {
	q := NewQueue()
	// Move head near the end of the ring so the next batch wraps
	for i := 0; i < constants.EventQueueSize-2; i++ {
		q.Push(GameEvent{})
	}
	q.Drain()

	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Frame: int64(i)})
	}
	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("consumed %d, want 5", len(got))
	}
	for i, ev := range got {
		if ev.Frame != int64(i) {
			t.Errorf("wrapped event %d has frame %d", i, ev.Frame)
		}
	}
	if q.Len() != 0 || q.Dropped() != 0 {
		t.Errorf("Len=%d Dropped=%d after wrap, want 0 and 0", q.Len(), q.Dropped())
	}
}
