package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/neon-strike/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// Curve selects how a parameter moves from its start to its end value
type Curve int

const (
	CurveLinear Curve = iota
	CurveExponential
)

// ramp interpolates from a to b at progress t in [0,1]
// Exponential ramps require a and b of the same sign and non-zero; otherwise linear is used
func ramp(a, b, t float64, c Curve) float64 {
	if c == CurveExponential && a > 0 && b > 0 {
		return a * math.Pow(b/a, t)
	}
	return a + (b-a)*t
}

// sweepOscillator generates a wave whose frequency glides from start to end over its duration
type sweepOscillator struct {
	startFreq float64
	endFreq   float64
	curve     Curve
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewSweep creates an oscillator gliding between two frequencies
func NewSweep(startFreq, endFreq float64, curve Curve, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweepOscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		curve:     curve,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, CurveLinear, duration, wave, rate)
}

func (o *sweepOscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1.0 - 4.0*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := ramp(o.startFreq, o.endFreq, t, o.curve)
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *sweepOscillator) Err() error { return nil }

// gainEnvelope ramps amplitude from start to end gain with a short linear attack
type gainEnvelope struct {
	streamer      beep.Streamer
	startGain     float64
	endGain       float64
	curve         Curve
	position      int
	attackSamples int
	totalSamples  int
}

// NewGainEnvelope shapes a stream with an attack followed by a gain ramp
func NewGainEnvelope(s beep.Streamer, duration, attack time.Duration, startGain, endGain float64, curve Curve, rate beep.SampleRate) beep.Streamer {
	return &gainEnvelope{
		streamer:      s,
		startGain:     startGain,
		endGain:       endGain,
		curve:         curve,
		attackSamples: rate.N(attack),
		totalSamples:  rate.N(duration),
	}
}

func (e *gainEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		t := float64(e.position) / float64(e.totalSamples)
		vol := ramp(e.startGain, e.endGain, t, e.curve)
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol *= float64(e.position) / float64(e.attackSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *gainEnvelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a volume effect
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// cueShape describes a single swept tone
type cueShape struct {
	wave      WaveType
	startFreq float64
	endFreq   float64
	freqCurve Curve
	startGain float64
	endGain   float64
	gainCurve Curve
	duration  time.Duration
}

// Gains are normalized so the loudest cue (player hit) peaks at 1.0
var cueShapes = map[CueType]cueShape{
	CueShoot:     {WaveSquare, 800, 100, CurveExponential, 0.2, 0.05, CurveExponential, constants.ShootSoundDuration},
	CueHit:       {WaveSine, 1200, 1200, CurveLinear, 0.075, 0, CurveLinear, constants.HitSoundDuration},
	CueDeath:     {WaveSaw, 200, 50, CurveLinear, 0.4, 0.05, CurveExponential, constants.DeathSoundDuration},
	CuePlayerHit: {WaveTriangle, 150, 40, CurveLinear, 1.0, 0, CurveLinear, constants.PlayerHitSoundDuration},
	CuePickup:    {WaveSine, 400, 1200, CurveExponential, 0.4, 0, CurveLinear, constants.PickupSoundDuration},
}

// Level-up arpeggio: C5 E5 G5
var levelUpNotes = []float64{523.25, 659.25, 783.99}

const levelUpGain = 0.5

func (s cueShape) streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(s.startFreq, s.endFreq, s.freqCurve, s.duration, s.wave, rate)
	return NewGainEnvelope(osc, s.duration, constants.SoundAttack, s.startGain, s.endGain, s.gainCurve, rate)
}

// CreateLevelUpSound generates a rising three-note arpeggio
func CreateLevelUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(levelUpNotes)+1)
	for i, freq := range levelUpNotes {
		d := constants.LevelUpNoteDuration
		// Final note rings out to fill the cue
		if i == len(levelUpNotes)-1 {
			d = constants.LevelUpSoundDuration - constants.LevelUpNoteDuration*time.Duration(len(levelUpNotes)-1)
		}
		notes = append(notes, cueShape{WaveSine, freq, freq, CurveLinear, levelUpGain, 0, CurveLinear, d}.streamer(rate))
	}

	vol := cfg.EffectVolumes[CueLevelUp] * cfg.MasterVolume
	return newVolume(beep.Seq(notes...), vol)
}

// CreateCue returns the streamer for the given cue, nil for an unknown cue
func CreateCue(cue CueType, cfg *AudioConfig) beep.Streamer {
	if cue == CueLevelUp {
		return CreateLevelUpSound(cfg)
	}
	shape, ok := cueShapes[cue]
	if !ok {
		return nil
	}
	rate := beep.SampleRate(cfg.SampleRate)
	vol := cfg.EffectVolumes[cue] * cfg.MasterVolume
	return newVolume(shape.streamer(rate), vol)
}

// CueDuration returns the nominal playback length of a cue
func CueDuration(cue CueType) time.Duration {
	if cue == CueLevelUp {
		return constants.LevelUpSoundDuration
	}
	return cueShapes[cue].duration
}
