package systems

import (
	"time"

	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/engine"
	"github.com/lixenwraith/neon-strike/events"
	"github.com/lixenwraith/neon-strike/vmath"
)

// steerHoming rotates the bullet heading toward target by its steer fraction, keeping speed
func steerHoming(b *core.Bullet, target vmath.Vec2) {
	dir, dist := vmath.Direction(b.Pos, target)
	if dist == 0 {
		return
	}
	speed := b.Vel.Len()
	heading := vmath.SteerAngle(b.Vel.Angle(), dir.Angle(), b.Steer)
	b.Vel = vmath.FromAngle(heading, speed)
}

// advanceBullets integrates both bullet sets and culls those past the bounds margin
// Homing bullets re-aim before moving and stop steering once their lifespan runs out
func advanceBullets(w *engine.World, f float64, dt time.Duration) {
	w.Bullets.RemoveIf(func(b *core.Bullet) bool {
		b.Integrate(f)
		return !w.InBounds(b.Pos, constants.BoundsMargin)
	})

	target := w.Player.Pos
	w.EnemyBullets.RemoveIf(func(b *core.Bullet) bool {
		if b.Homes() {
			steerHoming(b, target)
			b.Lifespan -= dt
		}
		b.Integrate(f)
		return !w.InBounds(b.Pos, constants.BoundsMargin)
	})
}

// resolveEnemyBullets applies enemy projectile hits on the player
func resolveEnemyBullets(w *engine.World) {
	p := &w.Player
	for i := w.EnemyBullets.Len() - 1; i >= 0; i-- {
		b := w.EnemyBullets.At(i)
		if !vmath.CirclesOverlap(b.Pos, b.Radius, p.Pos, p.Radius) {
			continue
		}

		damage, pos := b.Damage, b.Pos
		w.EnemyBullets.SwapRemove(i)
		w.Shake.Trigger(constants.ShakeProjectileHit)
		damagePlayer(w, damage, events.HitProjectile, pos)
		if !w.Phase.Is(engine.PhasePlaying) {
			return
		}
	}
}
