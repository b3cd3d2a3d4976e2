package input

import (
	"time"

	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/vmath"
)

// Tracker turns discrete terminal key events into held-key state
// Terminals report presses and auto-repeats but no releases, so a key counts as held
// for KeyHoldWindow after its last event; pressing the opposite direction releases it
type Tracker struct {
	lastPress [4]time.Time
	held      [4]bool
	fireUntil time.Time

	mouseDown    bool
	cellX, cellY int
	hasPointer   bool
}

// NewTracker returns a tracker with nothing held
func NewTracker() *Tracker {
	return &Tracker{}
}

// Apply records a play intent observed at real time now
func (t *Tracker) Apply(in Intent, now time.Time) {
	switch in.Type {
	case IntentMove:
		t.lastPress[in.Dir] = now
		t.held[in.Dir] = true
		t.held[in.Dir.Opposite()] = false
	case IntentFire:
		t.fireUntil = now.Add(constants.KeyHoldWindow)
	case IntentPointer:
		t.cellX, t.cellY = in.CellX, in.CellY
		t.hasPointer = true
		t.mouseDown = in.Pressed
	}
}

// Held reports whether direction d is held at real time now
func (t *Tracker) Held(d Direction, now time.Time) bool {
	return t.held[d] && now.Sub(t.lastPress[d]) < constants.KeyHoldWindow
}

// Release clears all held state (phase changes, focus loss)
func (t *Tracker) Release() {
	t.held = [4]bool{}
	t.fireUntil = time.Time{}
	t.mouseDown = false
}

// Controls samples the frame's input intent
// Without any pointer event yet, aim defaults to the player's right
func (t *Tracker) Controls(now time.Time, vp core.Viewport, player core.Player) core.Controls {
	c := core.Controls{
		Up:    t.Held(DirUp, now),
		Down:  t.Held(DirDown, now),
		Left:  t.Held(DirLeft, now),
		Right: t.Held(DirRight, now),
		Fire:  t.mouseDown || now.Before(t.fireUntil),
	}
	if t.hasPointer {
		c.Aim = vp.CellToWorld(t.cellX, t.cellY)
	} else {
		c.Aim = player.Pos.Add(vmath.V2(1, 0))
	}
	return c
}
