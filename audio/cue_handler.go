package audio

import (
	"github.com/lixenwraith/neon-strike/events"
)

// CuePlayer plays a cue by type
type CuePlayer interface {
	Play(cue CueType) bool
}

var eventCues = map[events.EventType]CueType{
	events.EventShoot:           CueShoot,
	events.EventEnemyHit:        CueHit,
	events.EventEnemyDeath:      CueDeath,
	events.EventPlayerHit:       CuePlayerHit,
	events.EventPickupCollected: CuePickup,
	events.EventLevelUp:         CueLevelUp,
	events.EventUpgradeApplied:  CuePickup,
}

// CueHandler maps gameplay events to sound cues
type CueHandler[T any] struct {
	player CuePlayer
}

func NewCueHandler[T any](player CuePlayer) *CueHandler[T] {
	return &CueHandler[T]{player: player}
}

func (h *CueHandler[T]) HandleEvent(_ T, event events.GameEvent) {
	if cue, ok := eventCues[event.Type]; ok {
		h.player.Play(cue)
	}
}

func (h *CueHandler[T]) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventShoot,
		events.EventEnemyHit,
		events.EventEnemyDeath,
		events.EventPlayerHit,
		events.EventPickupCollected,
		events.EventLevelUp,
		events.EventUpgradeApplied,
	}
}
