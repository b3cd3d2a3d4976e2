package events

import (
	"time"

	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/vmath"
)

// ShootPayload carries the spawned bullet's origin and velocity
type ShootPayload struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
}

// EnemyHitPayload reports damage dealt to an enemy by one bullet
type EnemyHitPayload struct {
	Enemy     core.EntityID
	Type      core.EnemyType
	Pos       vmath.Vec2
	Damage    float64
	Remaining float64
}

// EnemyDeathPayload reports a kill and its rewards
type EnemyDeathPayload struct {
	Enemy       core.EntityID
	Type        core.EnemyType
	Pos         vmath.Vec2
	ScoreValue  int
	Exp         float64
	DroppedPack bool
}

// HitSource distinguishes projectile hits from contact damage
type HitSource uint8

const (
	HitProjectile HitSource = iota
	HitContact
)

// PlayerHitPayload reports damage taken by the player
type PlayerHitPayload struct {
	Source HitSource
	Pos    vmath.Vec2
	Damage float64
	// Health is player health after the hit
	Health float64
}

// PickupKind tags the collected pickup
type PickupKind uint8

const (
	PickupOrb PickupKind = iota
	PickupHealth
)

// PickupPayload reports a consumed pickup; Amount is experience or health restored
type PickupPayload struct {
	Kind   PickupKind
	Pos    vmath.Vec2
	Amount float64
}

// LevelUpPayload carries the new level and the offered upgrades
type LevelUpPayload struct {
	Level   int
	Choices []core.UpgradeKind
}

// UpgradeAppliedPayload reports the chosen upgrade
type UpgradeAppliedPayload struct {
	Kind  core.UpgradeKind
	Level int
}

// GameOverPayload summarizes a finished session
type GameOverPayload struct {
	Score    int
	Kills    int
	Level    int
	Duration time.Duration
}
