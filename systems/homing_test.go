package systems

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/vmath"
)

func headingError(b *core.Bullet, target vmath.Vec2) float64 {
	dir, _ := vmath.Direction(b.Pos, target)
	return math.Abs(vmath.WrapAngle(dir.Angle() - b.Vel.Angle()))
}

func TestHomingHeadingConverges(t *testing.T) {
	target := vmath.V2(0, 0)
	b := &core.Bullet{
		Kinetic:  core.Kinetic{Pos: vmath.V2(500, 0), Vel: vmath.V2(0, constants.HunterProjectileSpeed)},
		Homing:   true,
		Steer:    constants.HomingSteer,
		Lifespan: constants.HomingLifespan,
	}

	prev := headingError(b, target)
	for i := 0; i < 100; i++ {
		steerHoming(b, target)
		errNow := headingError(b, target)
		if errNow > prev+1e-12 {
			t.Fatalf("step %d: heading error grew %f -> %f", i, prev, errNow)
		}
		if math.Abs(b.Vel.Len()-constants.HunterProjectileSpeed) > 1e-9 {
			t.Fatalf("step %d: speed changed to %f", i, b.Vel.Len())
		}
		prev = errNow
	}
	if prev > 0.1 {
		t.Errorf("heading error %f after 100 steps", prev)
	}
}

func TestHomingStopsAfterLifespan(t *testing.T) {
	w := newPlayingWorld(t)
	w.Player.Pos = vmath.V2(500, 100)
	w.EnemyBullets.Add(core.Bullet{
		Kinetic:  core.Kinetic{Pos: vmath.V2(100, 400), Vel: vmath.V2(5, 0)},
		Radius:   constants.HunterProjectileRadius,
		Homing:   true,
		Steer:    constants.HomingSteer,
		Lifespan: 3 * testFrame,
	})

	for i := 0; i < 3; i++ {
		advanceBullets(w, 1, testFrame)
	}
	b := w.EnemyBullets.At(0)
	if b.Homes() {
		t.Fatalf("still homing with lifespan %v", b.Lifespan)
	}
	if b.Vel.Y >= 0 {
		t.Errorf("bullet never turned toward player: %v", b.Vel)
	}

	vel := b.Vel
	advanceBullets(w, 1, testFrame)
	if w.EnemyBullets.At(0).Vel != vel {
		t.Error("velocity changed after lifespan expired")
	}
}

func TestHunterKeepsStandoffAndFires(t *testing.T) {
	w := newPlayingWorld(t)
	w.Player.Pos = vmath.V2(500, 400)
	w.Enemies.Add(NewEnemy(w.NextID(), core.EnemyHunter, vmath.V2(500, 100), 0, 1, 0))
	w.Now = constants.HunterFireRate

	advanceEnemies(w, 1)

	e := w.Enemies.At(0)
	if e.Pos.Y >= 100 {
		t.Errorf("hunter inside stand-off did not retreat: %v", e.Pos)
	}
	if w.EnemyBullets.Len() != 1 || !w.EnemyBullets.At(0).Homing {
		t.Fatalf("hunter fired %d bullets", w.EnemyBullets.Len())
	}
	if e.LastShot != w.Now {
		t.Error("cooldown not reset")
	}
}

func TestTitanRadialBurst(t *testing.T) {
	w := newPlayingWorld(t)
	w.Enemies.Add(NewEnemy(w.NextID(), core.EnemyTitan, vmath.V2(100, 100), 0, 1, 0))
	w.Now = constants.TitanFireRate

	advanceEnemies(w, 1)

	if w.EnemyBullets.Len() != constants.TitanBurstCount {
		t.Fatalf("burst of %d, want %d", w.EnemyBullets.Len(), constants.TitanBurstCount)
	}
	var sum vmath.Vec2
	for _, b := range w.EnemyBullets.Items() {
		sum = sum.Add(b.Vel)
		if math.Abs(b.Vel.Len()-constants.TitanProjectileSpeed) > 1e-9 {
			t.Errorf("burst speed %f", b.Vel.Len())
		}
	}
	if sum.Len() > 1e-9 {
		t.Errorf("burst not evenly spaced, velocity sum %v", sum)
	}

	// Cooldown holds until the next interval
	w.Now += constants.TitanFireRate - time.Millisecond
	advanceEnemies(w, 1)
	if w.EnemyBullets.Len() != constants.TitanBurstCount {
		t.Error("titan fired inside cooldown")
	}
}
