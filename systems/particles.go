package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/engine"
	"github.com/lixenwraith/neon-strike/vmath"
)

// CreateExplosion emits count particles radiating from pos
// Bursts are truncated once the particle cap is reached
func CreateExplosion(w *engine.World, pos vmath.Vec2, color core.RGB, count int, speedMult float64) {
	for i := 0; i < count; i++ {
		angle := w.Rng.Float64() * 2 * math.Pi
		force := w.Rng.Float64()*constants.ParticleRandomForce*speedMult + constants.ParticleBaseForce

		shape := core.ShapeCircle
		switch r := w.Rng.Float64(); {
		case r > 0.7:
			shape = core.ShapeRect
		case r > 0.4:
			shape = core.ShapeLine
		}

		ok := w.Particles.Add(core.Particle{
			Kinetic: core.Kinetic{Pos: pos, Vel: vmath.FromAngle(angle, force)},
			Life:    1,
			MaxLife: constants.ParticleMinLife + w.Rng.Float64()*constants.ParticleLifeRange,
			Color:   color,
			Shape:   shape,
		})
		if !ok {
			return
		}
	}
}

// updateParticles integrates, damps and ages particles, removing expired ones
// Life drains by real seconds, so every particle fades out over one second
func updateParticles(w *engine.World, f float64, dt time.Duration) {
	damping := math.Pow(constants.ParticleDamping, f)
	seconds := dt.Seconds()

	w.Particles.RemoveIf(func(p *core.Particle) bool {
		p.Integrate(f)
		p.Vel = p.Vel.Scale(damping)
		p.Life -= seconds
		return p.Life <= 0
	})
}
