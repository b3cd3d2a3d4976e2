package systems

import (
	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/engine"
	"github.com/lixenwraith/neon-strike/events"
	"github.com/lixenwraith/neon-strike/vmath"
)

// movePlayer integrates four-way movement and keeps the player inside the arena
func movePlayer(w *engine.World, in core.Controls, f float64) {
	p := &w.Player

	// Zero intent skips normalization entirely
	dir := in.Direction()
	if dir.IsZero() {
		p.Vel = vmath.Vec2{}
	} else {
		p.Vel = dir.Normalize().Scale(p.MoveSpeed)
		p.Integrate(f)
	}

	r := p.Radius
	p.Pos = vmath.ClampToRect(p.Pos, r, r, max(r, w.Width-r), max(r, w.Height-r))
}

// Fire spawns a player bullet toward aim if the cooldown has elapsed
// Returns true when a bullet was created
func Fire(w *engine.World, aim vmath.Vec2) bool {
	if !w.Phase.Is(engine.PhasePlaying) {
		return false
	}
	p := &w.Player
	if !p.CanFire(w.Now) {
		return false
	}

	angle := aim.Sub(p.Pos).Angle()
	b := core.Bullet{
		ID:      w.NextID(),
		Kinetic: core.Kinetic{Pos: p.Pos, Vel: vmath.FromAngle(angle, constants.BulletSpeed)},
		Radius:  constants.BulletRadius,
		Damage:  p.Damage,
		Color:   core.RGBNeonCyan,
		Owner:   core.OwnerPlayer,
	}
	w.Bullets.Add(b)
	p.LastShot = w.Now

	w.Emit(events.EventShoot, &events.ShootPayload{Pos: b.Pos, Vel: b.Vel})
	return true
}

// damagePlayer subtracts health and ends the game on the first drop to zero
func damagePlayer(w *engine.World, amount float64, source events.HitSource, at vmath.Vec2) {
	if amount <= 0 || !w.Phase.Is(engine.PhasePlaying) {
		return
	}
	p := &w.Player
	p.SetHealth(p.Health - amount)

	w.Emit(events.EventPlayerHit, &events.PlayerHitPayload{
		Source: source,
		Pos:    at,
		Damage: amount,
		Health: p.Health,
	})

	if p.Health <= 0 {
		endGame(w)
	}
}

// endGame performs the single PLAYING -> GAMEOVER transition
func endGame(w *engine.World) {
	if err := w.Phase.Transition(engine.PhaseGameOver); err != nil {
		return
	}
	w.Emit(events.EventGameOver, &events.GameOverPayload{
		Score:    w.Score,
		Kills:    w.Kills,
		Level:    w.Player.Level,
		Duration: w.Now,
	})
}
