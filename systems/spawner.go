package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/engine"
	"github.com/lixenwraith/neon-strike/vmath"
)

// DifficultyLevel is the health multiplier after elapsed game time, linear and capped
func DifficultyLevel(elapsed time.Duration) float64 {
	return min(constants.DifficultyCap, 1+elapsed.Seconds()/constants.DifficultyScale)
}

// SpawnInterval is the spawn cadence after elapsed game time, falling linearly to a floor
func SpawnInterval(elapsed time.Duration) time.Duration {
	decay := time.Duration(float64(constants.SpawnIntervalDecay) * elapsed.Seconds())
	return max(constants.MinSpawnInterval, constants.InitialSpawnInterval-decay)
}

// SpawnThresholds returns the titan and hunter cut-offs for a uniform draw
// Both fall with time so later spawns skew toward the stronger archetypes
func SpawnThresholds(elapsed time.Duration) (titan, hunter float64) {
	s := elapsed.Seconds()
	titan = max(constants.TitanThresholdFloor, constants.TitanThresholdStart-s/constants.TitanThresholdScale)
	hunter = max(constants.HunterThresholdFloor, constants.HunterThresholdStart-s/constants.HunterThresholdScale)
	return titan, hunter
}

// SelectEnemyType maps a uniform draw r in [0,1) to an archetype at elapsed game time
func SelectEnemyType(elapsed time.Duration, r float64) core.EnemyType {
	titan, hunter := SpawnThresholds(elapsed)
	switch {
	case r > titan:
		return core.EnemyTitan
	case r > hunter:
		return core.EnemyHunter
	default:
		return core.EnemyVanguard
	}
}

// spawnPoint picks a uniform point just outside a uniformly chosen arena edge
func spawnPoint(w *engine.World) vmath.Vec2 {
	off := constants.SpawnEdgeOffset
	switch w.Rng.IntN(4) {
	case 0:
		return vmath.V2(w.Rng.Float64()*w.Width, -off)
	case 1:
		return vmath.V2(w.Width+off, w.Rng.Float64()*w.Height)
	case 2:
		return vmath.V2(w.Rng.Float64()*w.Width, w.Height+off)
	default:
		return vmath.V2(-off, w.Rng.Float64()*w.Height)
	}
}

// NewEnemy builds an enemy of type t scaled to difficulty at game time now
// Health scales with difficulty; fire cooldown shrinks with its square root
func NewEnemy(id core.EntityID, t core.EnemyType, pos vmath.Vec2, now time.Duration, difficulty, jitter float64) core.Enemy {
	prof := t.Profile()
	e := core.Enemy{
		ID:         id,
		Kinetic:    core.Kinetic{Pos: pos},
		Type:       t,
		Radius:     prof.Radius,
		Health:     prof.Health * difficulty,
		MaxHealth:  prof.Health * difficulty,
		ScoreValue: prof.Score,
		Color:      prof.Color,
		LastShot:   now + time.Duration(jitter*float64(constants.EnemyFirstShotJitter)),
		LastHit:    -1,
	}
	if prof.FireRate > 0 {
		e.FireRate = time.Duration(float64(prof.FireRate) / math.Sqrt(difficulty))
	}
	return e
}

// SpawnEnemy places one enemy chosen by the time-indexed probability model
func SpawnEnemy(w *engine.World) core.Enemy {
	pos := spawnPoint(w)
	typ := SelectEnemyType(w.Now, w.Rng.Float64())
	e := NewEnemy(w.NextID(), typ, pos, w.Now, DifficultyLevel(w.Now), w.Rng.Float64())
	w.Enemies.Add(e)
	return e
}

// tickSpawner accumulates dt and spawns once the current interval is reached
func tickSpawner(w *engine.World, dt time.Duration) {
	w.SpawnAccum += dt
	if w.SpawnAccum >= SpawnInterval(w.Now) {
		SpawnEnemy(w)
		w.SpawnAccum = 0
	}
}
