package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/neon-strike/constants"
)

// SoundManager owns the speaker and mixes one-shot cues
// All operations are safe to call before Initialize or after Cleanup; they do nothing
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlayed  map[CueType]time.Time
	now         func() time.Time
	// play hands a streamer to the mixer; replaced in tests
	play func(beep.Streamer)
}

// NewSoundManager creates a sound manager; a nil config uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		cfg:        cfg,
		mixer:      &beep.Mixer{},
		lastPlayed: make(map[CueType]time.Time),
		now:        time.Now,
	}
	sm.play = sm.addToMixer
	return sm
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("%w: speaker: %v", ErrNotInitialized, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Info().Int("sample_rate", sm.cfg.SampleRate).Float64("master_volume", sm.cfg.MasterVolume).Msg("audio initialized")
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; clearing the mixer leaves it idle
	sm.initialized = false
}

// Play starts a cue unless audio is off, muted, or the same cue played within MinSoundGap
// Returns whether the cue was started
func (sm *SoundManager) Play(cue CueType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	now := sm.now()
	if last, ok := sm.lastPlayed[cue]; ok && now.Sub(last) < constants.MinSoundGap {
		return false
	}

	s := CreateCue(cue, sm.cfg)
	if s == nil {
		return false
	}
	sm.lastPlayed[cue] = now
	sm.play(s)
	return true
}

func (sm *SoundManager) addToMixer(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted enables or disables cue playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
