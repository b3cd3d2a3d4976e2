package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two cues of the same kind
	MinSoundGap = 50 * time.Millisecond
)

// Cue Timing
const (
	ShootSoundDuration     = 100 * time.Millisecond
	HitSoundDuration       = 50 * time.Millisecond
	DeathSoundDuration     = 200 * time.Millisecond
	PlayerHitSoundDuration = 300 * time.Millisecond
	PickupSoundDuration    = 100 * time.Millisecond
	LevelUpSoundDuration   = 400 * time.Millisecond
	LevelUpNoteDuration    = 100 * time.Millisecond

	SoundAttack = 3 * time.Millisecond
)
