package engine

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/events"
	"github.com/lixenwraith/neon-strike/vmath"
)

// World is the complete simulation state of one session
// Owned exclusively by the simulation step; the render pass only reads it
type World struct {
	// ===== ARENA =====
	Width  float64 // World units
	Height float64

	// ===== ENTITIES =====
	Player       core.Player
	Bullets      Arena[core.Bullet] // Player-owned
	EnemyBullets Arena[core.Bullet]
	Enemies      Arena[core.Enemy]
	Particles    Arena[core.Particle]
	Orbs         Arena[core.ExperienceOrb]
	Packs        Arena[core.HealthPack]

	// ===== SESSION COUNTERS =====
	Score     int
	Kills     int
	HighScore int // Loaded from the score store, raised live when exceeded

	// ===== TIMING =====
	Now        time.Duration // Game time of the current step
	SpawnAccum time.Duration // Time since last spawn
	Frame      int64         // Simulation steps taken this session

	// ===== PROGRESSION =====
	Phase PhaseMachine
	// PendingLevelUps counts threshold crossings not yet resolved by a choice
	PendingLevelUps int
	// Offer holds the upgrades presented while in LEVEL_UP
	Offer []core.UpgradeKind

	// ===== EFFECTS =====
	Shake Shake

	Rng    *rand.Rand
	Events *events.Queue
	// LostEvents counts events evicted from a full queue since the frame loop last reported them
	LostEvents int

	nextID core.EntityID
}

// NewWorld creates a world in PhaseStart with the given arena size and rng seed
func NewWorld(width, height float64, seed uint64, queue *events.Queue) *World {
	w := &World{
		Width:        width,
		Height:       height,
		Bullets:      NewArena[core.Bullet](64, 0),
		EnemyBullets: NewArena[core.Bullet](64, 0),
		Enemies:      NewArena[core.Enemy](32, 0),
		Particles:    NewArena[core.Particle](256, constants.MaxParticles),
		Orbs:         NewArena[core.ExperienceOrb](32, 0),
		Packs:        NewArena[core.HealthPack](8, 0),
		Rng:          rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Events:       queue,
	}
	w.Player = core.NewPlayer(w.Center())
	return w
}

// Reset restores a fresh session: base player at centre, empty collections, zeroed counters
// Phase, HighScore and rng state are kept
func (w *World) Reset() {
	w.Player = core.NewPlayer(w.Center())
	w.Bullets.Clear()
	w.EnemyBullets.Clear()
	w.Enemies.Clear()
	w.Particles.Clear()
	w.Orbs.Clear()
	w.Packs.Clear()

	w.Score = 0
	w.Kills = 0
	w.Now = 0
	w.SpawnAccum = 0
	w.Frame = 0
	w.PendingLevelUps = 0
	w.Offer = nil
	w.Shake = Shake{}
	w.nextID = 0
}

// Resize changes arena bounds and pulls the player back inside
func (w *World) Resize(width, height float64) {
	w.Width = width
	w.Height = height
	r := w.Player.Radius
	w.Player.Pos = vmath.ClampToRect(w.Player.Pos, r, r, max(r, width-r), max(r, height-r))
}

// Center returns the arena midpoint
func (w *World) Center() vmath.Vec2 {
	return vmath.V2(w.Width/2, w.Height/2)
}

// NextID issues a session-unique entity id
func (w *World) NextID() core.EntityID {
	w.nextID++
	return w.nextID
}

// Emit pushes an event stamped with the current frame and game time
func (w *World) Emit(t events.EventType, payload any) {
	if w.Events == nil {
		return
	}
	ok := w.Events.Push(events.GameEvent{
		Type:     t,
		Payload:  payload,
		Frame:    w.Frame,
		GameTime: w.Now,
	})
	if !ok {
		w.LostEvents++
	}
}

// InBounds reports whether p lies within the arena expanded by margin
func (w *World) InBounds(p vmath.Vec2, margin float64) bool {
	return p.X >= -margin && p.X <= w.Width+margin && p.Y >= -margin && p.Y <= w.Height+margin
}
