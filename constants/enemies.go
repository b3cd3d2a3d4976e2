package constants

import "time"

// Vanguard: fast melee chaser
const (
	VanguardHealth = 18.0
	VanguardRadius = 12.0
	VanguardScore  = 100
	VanguardSpeed  = 2.0
	VanguardExp    = 15.0
)

// Titan: slow siege enemy with radial burst
const (
	TitanHealth   = 350.0
	TitanRadius   = 35.0
	TitanScore    = 800
	TitanSpeed    = 0.6
	TitanExp      = 80.0
	TitanFireRate = 3400 * time.Millisecond

	// TitanBurstCount projectiles are spread evenly over a full circle
	TitanBurstCount       = 8
	TitanProjectileSpeed  = 3.2
	TitanProjectileRadius = 6.0
	TitanProjectileDamage = 18.0
)

// Hunter: strafing ranged attacker firing homing projectiles
const (
	HunterHealth   = 55.0
	HunterRadius   = 18.0
	HunterScore    = 300
	HunterSpeed    = 1.4
	HunterExp      = 35.0
	HunterFireRate = 3000 * time.Millisecond

	// HunterStandoff separates approach from retreat
	HunterStandoff      = 400.0
	HunterApproachScale = 1.2
	HunterRetreatScale  = -0.7

	HunterProjectileSpeed  = 5.0
	HunterProjectileRadius = 5.0
	HunterProjectileDamage = 12.0

	// HomingSteer is the fraction of heading error removed per step
	HomingSteer    = 0.04
	HomingLifespan = 2200 * time.Millisecond
)

// EnemyFirstShotJitter delays an enemy's first shot by a random amount up to this
const EnemyFirstShotJitter = time.Second

// HitFlashDuration is how long an enemy renders white after a hit
const HitFlashDuration = 50 * time.Millisecond

// TitanSpin is the cosmetic glyph rotation in radians per reference frame
const TitanSpin = 0.02
