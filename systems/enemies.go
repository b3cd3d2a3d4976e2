package systems

import (
	"math"

	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/engine"
	"github.com/lixenwraith/neon-strike/events"
	"github.com/lixenwraith/neon-strike/vmath"
)

// fireRule executes a ranged attack for one enemy; dir is the unit vector toward the player
type fireRule func(w *engine.World, e *core.Enemy, dir vmath.Vec2)

// fireRules is the ranged-attack half of the enemy behaviour table
var fireRules = map[core.FirePattern]fireRule{
	core.FireRadial: fireRadial,
	core.FireHoming: fireHoming,
}

// fireRadial emits BurstCount projectiles evenly spaced over a full circle
func fireRadial(w *engine.World, e *core.Enemy, _ vmath.Vec2) {
	shot := e.Profile().Projectile
	step := 2 * math.Pi / float64(shot.BurstCount)
	for k := 0; k < shot.BurstCount; k++ {
		w.EnemyBullets.Add(core.Bullet{
			ID:      w.NextID(),
			Kinetic: core.Kinetic{Pos: e.Pos, Vel: vmath.FromAngle(float64(k)*step, shot.Speed)},
			Radius:  shot.Radius,
			Damage:  shot.Damage,
			Color:   e.Color,
			Owner:   core.OwnerEnemy,
			Source:  e.ID,
		})
	}
}

// fireHoming emits one steering projectile aimed at the player's current position
func fireHoming(w *engine.World, e *core.Enemy, dir vmath.Vec2) {
	shot := e.Profile().Projectile
	if dir.IsZero() {
		dir = vmath.V2(1, 0)
	}
	w.EnemyBullets.Add(core.Bullet{
		ID:       w.NextID(),
		Kinetic:  core.Kinetic{Pos: e.Pos, Vel: dir.Scale(shot.Speed)},
		Radius:   shot.Radius,
		Damage:   shot.Damage,
		Color:    e.Color,
		Owner:    core.OwnerEnemy,
		Source:   e.ID,
		Homing:   true,
		Steer:    shot.Steer,
		Lifespan: shot.Lifespan,
	})
}

// contact records an enemy overlapping the player before it moved
type contact struct {
	damage float64
	pos    vmath.Vec2
}

// advanceEnemies applies per-type movement and fire rules, then integrates positions
// Contacts are tested against pre-movement positions and returned for applyContacts
func advanceEnemies(w *engine.World, f float64) []contact {
	p := &w.Player
	var contacts []contact

	for i := 0; i < w.Enemies.Len(); i++ {
		e := w.Enemies.At(i)
		prof := e.Profile()

		dir, dist := vmath.Direction(e.Pos, p.Pos)
		e.Vel = prof.Move(dir, dist, prof.Speed)

		if rule, ok := fireRules[prof.Fire]; ok && w.Now-e.LastShot >= e.FireRate {
			rule(w, e, dir)
			e.LastShot = w.Now
		}

		if vmath.CirclesOverlap(e.Pos, e.Radius, p.Pos, p.Radius) {
			contacts = append(contacts, contact{damage: prof.Contact, pos: e.Pos})
		}

		e.Integrate(f)

		switch e.Type {
		case core.EnemyTitan:
			e.Heading = vmath.WrapAngle(e.Heading + constants.TitanSpin*f)
		case core.EnemyHunter:
			e.Heading = dir.Angle()
		default:
			if !e.Vel.IsZero() {
				e.Heading = e.Vel.Angle()
			}
		}
	}
	return contacts
}

// applyContacts deals frame-scaled contact damage for every overlapping enemy
func applyContacts(w *engine.World, contacts []contact, f float64) {
	for _, c := range contacts {
		w.Shake.Trigger(constants.ShakeContact)
		damagePlayer(w, c.damage*f, events.HitContact, c.pos)
		if !w.Phase.Is(engine.PhasePlaying) {
			return
		}
	}
}
