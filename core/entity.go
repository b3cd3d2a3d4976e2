package core

import (
	"math"
	"time"

	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/vmath"
)

// EntityID identifies a transient entity within one game session
// Issued from a monotonic counter; only used for bookkeeping and event payloads
type EntityID uint64

// Kinetic holds position and per-reference-frame velocity in world units
type Kinetic struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
}

// Integrate advances position by velocity scaled by the frame factor
func (k *Kinetic) Integrate(factor float64) {
	k.Pos = k.Pos.Add(k.Vel.Scale(factor))
}

// Player is the single controllable ship
type Player struct {
	Kinetic
	Radius float64

	Health    float64
	MaxHealth float64

	Level          int
	Exp            float64
	ExpToNextLevel float64

	FireRate  time.Duration
	Damage    float64
	MoveSpeed float64

	// LastShot is game time of the last shot
	LastShot time.Duration
}

// NewPlayer returns a player with base stats centred at pos
func NewPlayer(pos vmath.Vec2) Player {
	return Player{
		Kinetic:        Kinetic{Pos: pos},
		Radius:         constants.PlayerRadius,
		Health:         constants.InitialMaxHealth,
		MaxHealth:      constants.InitialMaxHealth,
		Level:          1,
		ExpToNextLevel: constants.InitialExpToNextLevel,
		FireRate:       constants.InitialFireRate,
		Damage:         constants.InitialDamage,
		MoveSpeed:      constants.InitialMoveSpeed,
		LastShot:       -constants.InitialFireRate,
	}
}

// SetHealth stores h clamped to [0, MaxHealth]
func (p *Player) SetHealth(h float64) {
	p.Health = vmath.Clamp(h, 0, p.MaxHealth)
}

// CanFire reports whether the fire cooldown has elapsed at game time now
func (p *Player) CanFire(now time.Duration) bool {
	return now-p.LastShot >= p.FireRate
}

// Owner tags which side fired a bullet
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

// Bullet is a projectile fired by the player or an enemy
type Bullet struct {
	ID EntityID
	Kinetic
	Radius float64
	Damage float64
	Color  RGB

	Owner Owner
	// Source is the firing enemy; zero for player bullets
	Source EntityID

	// Homing bullets re-aim toward the player by Steer of the heading error per step
	// while Lifespan is positive
	Homing   bool
	Steer    float64
	Lifespan time.Duration
}

// Homes reports whether the bullet is still steering
func (b *Bullet) Homes() bool {
	return b.Homing && b.Lifespan > 0
}

// Enemy is a hostile unit; behaviour comes from its type profile
type Enemy struct {
	ID EntityID
	Kinetic
	Type   EnemyType
	Radius float64

	Health    float64
	MaxHealth float64

	ScoreValue int
	Color      RGB

	// FireRate is the per-instance cooldown, shortened by difficulty
	FireRate time.Duration
	// LastShot may lie in the future to delay the first shot
	LastShot time.Duration
	// LastHit drives the hit flash; negative means never hit
	LastHit time.Duration

	// Heading is the cosmetic rotation angle in radians
	Heading float64
}

// Profile returns the static behaviour entry of the enemy's type
func (e *Enemy) Profile() *EnemyProfile {
	return e.Type.Profile()
}

// Flashing reports whether the enemy should render with hit flash at game time now
func (e *Enemy) Flashing(now time.Duration) bool {
	return e.LastHit >= 0 && now-e.LastHit < constants.HitFlashDuration
}

// ParticleShape selects the glyph used for a particle
type ParticleShape uint8

const (
	ShapeCircle ParticleShape = iota
	ShapeLine
	ShapeRect
)

// Particle is a purely cosmetic spark
type Particle struct {
	Kinetic
	// Life counts down from 1 to 0
	Life float64
	// MaxLife is drawn at creation and kept with the particle; aging is a flat one second
	MaxLife float64
	Color   RGB
	Shape   ParticleShape
}

// ExperienceOrb grants Value experience on pickup
type ExperienceOrb struct {
	ID     EntityID
	Pos    vmath.Vec2
	Value  float64
	Radius float64
}

// OrbRadius is the collision radius of an orb carrying value experience
func OrbRadius(value float64) float64 {
	return constants.OrbBaseRadius + constants.OrbRadiusFactor*math.Sqrt(value)
}

// HealthPack restores Heal health on pickup
type HealthPack struct {
	ID     EntityID
	Pos    vmath.Vec2
	Heal   float64
	Radius float64
}
