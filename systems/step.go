// Package systems implements the simulation step and the rules it applies:
// spawning, movement, combat, pickups, progression and particles.
package systems

import (
	"time"

	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/engine"
)

// FrameFactor converts a step duration to reference frames (1/60 s)
func FrameFactor(dt time.Duration) float64 {
	return float64(dt) / float64(constants.ReferenceFrame)
}

// ClampStep bounds dt to [0, MaxStep]
func ClampStep(dt time.Duration) time.Duration {
	return min(max(dt, 0), constants.MaxStep)
}

// Step advances the world by one frame at game time now
// No-op outside PhasePlaying. Sub-phases run in fixed order and the step ends early
// once a sub-phase leaves PhasePlaying (level-up or game over)
func Step(w *engine.World, in core.Controls, now, dt time.Duration) {
	if !w.Phase.Is(engine.PhasePlaying) {
		return
	}

	dt = ClampStep(dt)
	f := FrameFactor(dt)
	w.Now = now
	w.Frame++

	if in.Fire {
		Fire(w, in.Aim)
	}

	movePlayer(w, in, f)

	collectPickups(w)
	if !w.Phase.Is(engine.PhasePlaying) {
		return
	}

	advanceBullets(w, f, dt)

	resolveEnemyBullets(w)
	if !w.Phase.Is(engine.PhasePlaying) {
		return
	}

	contacts := advanceEnemies(w, f)

	applyContacts(w, contacts, f)
	if !w.Phase.Is(engine.PhasePlaying) {
		return
	}

	resolvePlayerBullets(w)

	updateParticles(w, f, dt)

	tickSpawner(w, dt)

	w.Shake.Decay(f)
}
