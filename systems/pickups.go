package systems

import (
	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/engine"
	"github.com/lixenwraith/neon-strike/events"
	"github.com/lixenwraith/neon-strike/vmath"
)

// attract pulls a pickup toward the player by a fixed per-step distance when in range
// Not dt-scaled so pickup feel is independent of frame rate
func attract(pos, target vmath.Vec2, radius, speed float64) vmath.Vec2 {
	dir, dist := vmath.Direction(pos, target)
	if dist == 0 || dist >= radius {
		return pos
	}
	return pos.Add(dir.Scale(min(speed, dist)))
}

// collectPickups attracts and consumes experience orbs and health packs
func collectPickups(w *engine.World) {
	p := &w.Player

	for i := w.Orbs.Len() - 1; i >= 0; i-- {
		orb := w.Orbs.At(i)
		orb.Pos = attract(orb.Pos, p.Pos, constants.OrbAttractRange, constants.OrbAttractSpeed)
		if !vmath.CirclesOverlap(orb.Pos, orb.Radius, p.Pos, p.Radius) {
			continue
		}

		value, pos := orb.Value, orb.Pos
		w.Orbs.SwapRemove(i)
		CreateExplosion(w, pos, core.RGBNeonCyan, constants.OrbPickupCount, constants.OrbPickupSpeed)
		w.Emit(events.EventPickupCollected, &events.PickupPayload{
			Kind:   events.PickupOrb,
			Pos:    pos,
			Amount: value,
		})
		GainExperience(w, value)
	}

	for i := w.Packs.Len() - 1; i >= 0; i-- {
		pack := w.Packs.At(i)
		pack.Pos = attract(pack.Pos, p.Pos, constants.HealthPackAttractRange, constants.HealthPackAttractSpeed)
		if !vmath.CirclesOverlap(pack.Pos, pack.Radius, p.Pos, p.Radius) {
			continue
		}

		before := p.Health
		p.SetHealth(p.Health + pack.Heal)
		pos := pack.Pos
		w.Packs.SwapRemove(i)
		CreateExplosion(w, pos, core.RGBNeonGreen, constants.PackPickupCount, constants.PackPickupSpeed)
		w.Emit(events.EventPickupCollected, &events.PickupPayload{
			Kind:   events.PickupHealth,
			Pos:    pos,
			Amount: p.Health - before,
		})
	}
}
