package constants

// Particle Physics
const (
	// ParticleDamping is the velocity retained per reference frame
	ParticleDamping = 0.96

	ParticleBaseForce   = 2.0
	ParticleRandomForce = 8.0

	ParticleMinLife   = 0.4
	ParticleLifeRange = 0.8
)

// Burst sizes: count and speed multiplier
const (
	HitSparkCount     = 3
	HitSparkSpeed     = 0.5
	OrbPickupCount    = 5
	OrbPickupSpeed    = 0.4
	PackPickupCount   = 12
	PackPickupSpeed   = 0.6
	DeathBurstCount   = 20
	DeathBurstSpeed   = 0.9
	TitanDeathCount   = 50
	TitanDeathSpeed   = 1.8
	UpgradeBurstCount = 40
	UpgradeBurstSpeed = 2.0
)

// Screen Shake
const (
	// ShakeDecay is the magnitude retained per reference frame
	ShakeDecay = 0.9

	ShakeProjectileHit = 10.0
	ShakeContact       = 8.0
	ShakeKill          = 5.0
	ShakeTitanKill     = 18.0
	ShakeUpgrade       = 20.0

	// ShakeFloor snaps tiny residual shake to zero
	ShakeFloor = 0.05
)
