package systems

import (
	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/engine"
	"github.com/lixenwraith/neon-strike/events"
	"github.com/lixenwraith/neon-strike/vmath"
)

// resolvePlayerBullets tests every live enemy against every live player bullet
// A bullet is consumed by its first hit; a dying enemy stops absorbing bullets
func resolvePlayerBullets(w *engine.World) {
	for i := w.Enemies.Len() - 1; i >= 0; i-- {
		e := w.Enemies.At(i)

		for j := w.Bullets.Len() - 1; j >= 0; j-- {
			b := w.Bullets.At(j)
			if !vmath.CirclesOverlap(e.Pos, e.Radius, b.Pos, b.Radius) {
				continue
			}

			damage, hitPos := b.Damage, b.Pos
			w.Bullets.SwapRemove(j)

			e.Health -= damage
			e.LastHit = w.Now
			CreateExplosion(w, hitPos, core.RGBWhite, constants.HitSparkCount, constants.HitSparkSpeed)
			w.Emit(events.EventEnemyHit, &events.EnemyHitPayload{
				Enemy:     e.ID,
				Type:      e.Type,
				Pos:       hitPos,
				Damage:    damage,
				Remaining: max(e.Health, 0),
			})

			if e.Health <= 0 {
				killEnemy(w, i)
				break
			}
		}
	}
}

// killEnemy applies every death side effect and swap-removes enemy i
func killEnemy(w *engine.World, i int) {
	e := *w.Enemies.At(i)
	prof := e.Profile()

	w.Kills++
	w.Score += e.ScoreValue
	if w.Score > w.HighScore {
		w.HighScore = w.Score
	}

	w.Orbs.Add(core.ExperienceOrb{
		ID:     w.NextID(),
		Pos:    e.Pos,
		Value:  prof.Exp,
		Radius: core.OrbRadius(prof.Exp),
	})

	dropped := w.Rng.Float64() < constants.HealthPackDropChance
	if dropped {
		w.Packs.Add(core.HealthPack{
			ID:     w.NextID(),
			Pos:    e.Pos,
			Heal:   constants.HealthPackHeal,
			Radius: constants.HealthPackRadius,
		})
	}

	if e.Type == core.EnemyTitan {
		w.Shake.Trigger(constants.ShakeTitanKill)
		CreateExplosion(w, e.Pos, e.Color, constants.TitanDeathCount, constants.TitanDeathSpeed)
	} else {
		w.Shake.Trigger(constants.ShakeKill)
		CreateExplosion(w, e.Pos, e.Color, constants.DeathBurstCount, constants.DeathBurstSpeed)
	}

	w.Enemies.SwapRemove(i)

	w.Emit(events.EventEnemyDeath, &events.EnemyDeathPayload{
		Enemy:       e.ID,
		Type:        e.Type,
		Pos:         e.Pos,
		ScoreValue:  e.ScoreValue,
		Exp:         prof.Exp,
		DroppedPack: dropped,
	})
}
