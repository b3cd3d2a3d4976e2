package constants

import "time"

// Player Base Stats
const (
	PlayerRadius = 15.0

	// InitialMaxHealth is health at game start
	InitialMaxHealth = 200.0

	// InitialMoveSpeed is units per reference frame
	InitialMoveSpeed = 6.0

	// InitialFireRate is the minimum interval between shots
	InitialFireRate = 140 * time.Millisecond

	// InitialDamage is damage per player bullet
	InitialDamage = 35.0
)

// Player Bullets
const (
	BulletSpeed  = 14.0
	BulletRadius = 4.0
)

// Contact damage per reference frame while an enemy overlaps the player
const (
	ContactDamage      = 1.0
	TitanContactDamage = 2.0
)
