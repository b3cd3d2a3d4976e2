package engine

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/vmath"
)

// Shake is the decaying screen-shake impulse
type Shake struct {
	Magnitude float64
}

// Trigger raises the magnitude to m; impulses never stack
func (s *Shake) Trigger(m float64) {
	s.Magnitude = max(s.Magnitude, m)
}

// Set overrides the magnitude (upgrade burst)
func (s *Shake) Set(m float64) {
	s.Magnitude = m
}

// Decay applies the per-frame retention scaled by the frame factor
func (s *Shake) Decay(factor float64) {
	s.Magnitude *= math.Pow(constants.ShakeDecay, factor)
	if s.Magnitude < constants.ShakeFloor {
		s.Magnitude = 0
	}
}

// Offset returns a random displacement within +-Magnitude/2 on each axis
func (s *Shake) Offset(rng *rand.Rand) vmath.Vec2 {
	if s.Magnitude == 0 {
		return vmath.Vec2{}
	}
	return vmath.V2(
		(rng.Float64()-0.5)*s.Magnitude,
		(rng.Float64()-0.5)*s.Magnitude,
	)
}
