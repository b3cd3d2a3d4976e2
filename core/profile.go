package core

import (
	"time"

	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/vmath"
)

// EnemyType is the archetype tag indexing the profile table
type EnemyType uint8

const (
	EnemyVanguard EnemyType = iota
	EnemyTitan
	EnemyHunter

	enemyTypeCount
)

var enemyTypeNames = [enemyTypeCount]string{"vanguard", "titan", "hunter"}

func (t EnemyType) String() string {
	if t < enemyTypeCount {
		return enemyTypeNames[t]
	}
	return "unknown"
}

// FirePattern selects the ranged attack executed on cooldown expiry
type FirePattern uint8

const (
	FireNone FirePattern = iota
	// FireRadial emits BurstCount projectiles evenly spaced over a full circle
	FireRadial
	// FireHoming emits one steering projectile aimed at the player
	FireHoming
)

// MoveRule returns an enemy velocity from the unit direction toward the player,
// the distance to the player and the type's base speed
type MoveRule func(dir vmath.Vec2, dist, speed float64) vmath.Vec2

// Approach always closes in at base speed
func Approach(dir vmath.Vec2, _ float64, speed float64) vmath.Vec2 {
	return dir.Scale(speed)
}

// KeepStandoff approaches while beyond the stand-off distance and backs off inside it
func KeepStandoff(dir vmath.Vec2, dist, speed float64) vmath.Vec2 {
	factor := constants.HunterRetreatScale
	if dist > constants.HunterStandoff {
		factor = constants.HunterApproachScale
	}
	return dir.Scale(speed * factor)
}

// ProjectileSpec describes bullets produced by a FirePattern
type ProjectileSpec struct {
	Speed    float64
	Radius   float64
	Damage   float64
	Steer    float64
	Lifespan time.Duration
	// BurstCount applies to FireRadial only
	BurstCount int
}

// EnemyProfile is the static behaviour entry for one archetype
type EnemyProfile struct {
	Health     float64
	Radius     float64
	Speed      float64
	Score      int
	Exp        float64
	Color      RGB
	Glyph      rune
	FireRate   time.Duration
	Contact    float64
	Move       MoveRule
	Fire       FirePattern
	Projectile ProjectileSpec
}

var enemyProfiles = [enemyTypeCount]EnemyProfile{
	EnemyVanguard: {
		Health:  constants.VanguardHealth,
		Radius:  constants.VanguardRadius,
		Speed:   constants.VanguardSpeed,
		Score:   constants.VanguardScore,
		Exp:     constants.VanguardExp,
		Color:   RGBNeonPink,
		Glyph:   '▲',
		Contact: constants.ContactDamage,
		Move:    Approach,
		Fire:    FireNone,
	},
	EnemyTitan: {
		Health:   constants.TitanHealth,
		Radius:   constants.TitanRadius,
		Speed:    constants.TitanSpeed,
		Score:    constants.TitanScore,
		Exp:      constants.TitanExp,
		Color:    RGBNeonViolet,
		Glyph:    '■',
		FireRate: constants.TitanFireRate,
		Contact:  constants.TitanContactDamage,
		Move:     Approach,
		Fire:     FireRadial,
		Projectile: ProjectileSpec{
			Speed:      constants.TitanProjectileSpeed,
			Radius:     constants.TitanProjectileRadius,
			Damage:     constants.TitanProjectileDamage,
			BurstCount: constants.TitanBurstCount,
		},
	},
	EnemyHunter: {
		Health:   constants.HunterHealth,
		Radius:   constants.HunterRadius,
		Speed:    constants.HunterSpeed,
		Score:    constants.HunterScore,
		Exp:      constants.HunterExp,
		Color:    RGBNeonAmber,
		Glyph:    '◆',
		FireRate: constants.HunterFireRate,
		Contact:  constants.ContactDamage,
		Move:     KeepStandoff,
		Fire:     FireHoming,
		Projectile: ProjectileSpec{
			Speed:    constants.HunterProjectileSpeed,
			Radius:   constants.HunterProjectileRadius,
			Damage:   constants.HunterProjectileDamage,
			Steer:    constants.HomingSteer,
			Lifespan: constants.HomingLifespan,
		},
	},
}

// Profile returns the behaviour table entry for t
func (t EnemyType) Profile() *EnemyProfile {
	return &enemyProfiles[t]
}
