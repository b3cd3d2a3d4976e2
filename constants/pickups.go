package constants

// Experience Orbs
const (
	OrbBaseRadius   = 4.0
	OrbRadiusFactor = 0.5
	OrbAttractRange = 200.0
	OrbAttractSpeed = 8.5
)

// Health Packs
const (
	HealthPackDropChance   = 0.06
	HealthPackHeal         = 30.0
	HealthPackRadius       = 12.0
	HealthPackAttractRange = 150.0
	HealthPackAttractSpeed = 7.0
)
