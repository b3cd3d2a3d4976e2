package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the driving loop cadence (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// ReferenceFrame is the frame duration the per-frame velocities are tuned for
	ReferenceFrame = time.Second / 60

	// MaxStep caps the simulated delta per frame so a stalled terminal does not teleport entities
	MaxStep = 32 * time.Millisecond
)

// Arena
const (
	// CellWidth and CellHeight map one terminal cell to world units (cells are ~1:2)
	CellWidth  = 10.0
	CellHeight = 20.0

	// BoundsMargin is how far past the arena edge a bullet may travel before it is culled
	BoundsMargin = 100.0

	// SpawnEdgeOffset is how far outside the arena edge enemies appear
	SpawnEdgeOffset = 50.0
)

// Entity Limits
const (
	// MaxParticles caps cosmetic particles; bursts beyond the cap are truncated
	MaxParticles = 1500

	// EventQueueSize must be a power of two
	EventQueueSize  = 512
	EventBufferMask = EventQueueSize - 1
)
