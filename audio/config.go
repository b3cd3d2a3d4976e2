package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// Environment variables recognized by LoadAudioConfig
const (
	EnvAudioEnabled = "NEON_STRIKE_AUDIO_ENABLED"
	EnvMasterVolume = "NEON_STRIKE_MASTER_VOLUME"
	EnvSFXVolumes   = "NEON_STRIKE_SFX_VOLUMES"
	EnvSampleRate   = "NEON_STRIKE_SAMPLE_RATE"
)

// LoadAudioConfig loads audio configuration from environment variables
// Malformed values are ignored and the default kept
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Per-cue volumes as JSON object keyed by cue name
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for c := CueType(0); c < cueTypeCount; c++ {
				if v, ok := volumes[c.String()]; ok {
					cfg.EffectVolumes[c] = min(max(v, 0), 1)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
