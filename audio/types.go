package audio

import (
	"errors"

	"github.com/lixenwraith/neon-strike/constants"
)

// CueType represents the short synthesized sound effects
type CueType int

const (
	CueShoot     CueType = iota // Player shot
	CueHit                      // Bullet lands on enemy
	CueDeath                    // Enemy destroyed
	CuePlayerHit                // Player takes damage
	CuePickup                   // Orb or health pack collected
	CueLevelUp                  // Experience threshold crossed
	cueTypeCount
)

var cueNames = [cueTypeCount]string{"shoot", "hit", "death", "playerHit", "pickup", "levelup"}

func (c CueType) String() string {
	if c >= 0 && c < cueTypeCount {
		return cueNames[c]
	}
	return "unknown"
}

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	EffectVolumes map[CueType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the configuration used when no environment overrides are set
func DefaultAudioConfig() *AudioConfig {
	vols := make(map[CueType]float64, cueTypeCount)
	for c := CueType(0); c < cueTypeCount; c++ {
		vols[c] = 1.0
	}
	return &AudioConfig{
		Enabled:       true,
		MasterVolume:  0.5,
		EffectVolumes: vols,
		SampleRate:    constants.AudioSampleRate,
	}
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrDisabled       = errors.New("audio disabled by configuration")
)
