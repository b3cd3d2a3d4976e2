package constants

import "time"

// Spawn Cadence
const (
	InitialSpawnInterval = 1800 * time.Millisecond
	MinSpawnInterval     = 500 * time.Millisecond

	// SpawnIntervalDecay is subtracted from the interval per second of play
	SpawnIntervalDecay = 8 * time.Millisecond

	// FirstSpawnLead pre-fills the accumulator so the first enemy arrives shortly after start
	FirstSpawnLead = 200 * time.Millisecond
)

// Difficulty Curve
const (
	// DifficultyCap bounds the health multiplier
	DifficultyCap = 4.0
	// DifficultyScale seconds of play add +1 to the multiplier
	DifficultyScale = 100.0

	TitanThresholdStart = 0.98
	TitanThresholdFloor = 0.85
	TitanThresholdScale = 200.0

	HunterThresholdStart = 0.90
	HunterThresholdFloor = 0.60
	HunterThresholdScale = 150.0
)
