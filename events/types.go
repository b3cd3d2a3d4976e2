package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventGameStart marks a fresh session entering PLAYING
	// Trigger: start or restart key | Payload: nil
	EventGameStart EventType = iota

	// EventShoot signals a player shot
	// Trigger: Fire with cooldown elapsed
	// Consumer: CueHandler | Payload: *ShootPayload
	EventShoot

	// EventEnemyHit signals a player bullet landing on a surviving or dying enemy
	// Consumer: CueHandler | Payload: *EnemyHitPayload
	EventEnemyHit

	// EventEnemyDeath signals an enemy removed with health <= 0
	// Emitted after the EventEnemyHit of the killing bullet
	// Consumer: CueHandler, Recorder | Payload: *EnemyDeathPayload
	EventEnemyDeath

	// EventPlayerHit signals damage to the player from a projectile or contact
	// Contact damage emits once per overlapping frame
	// Consumer: CueHandler | Payload: *PlayerHitPayload
	EventPlayerHit

	// EventPickupCollected signals an orb or health pack consumed by the player
	// Consumer: CueHandler | Payload: *PickupPayload
	EventPickupCollected

	// EventLevelUp signals an experience threshold crossing and the upgrade offer
	// Consumer: CueHandler | Payload: *LevelUpPayload
	EventLevelUp

	// EventUpgradeApplied signals an upgrade choice resuming play
	// Consumer: CueHandler | Payload: *UpgradeAppliedPayload
	EventUpgradeApplied

	// EventGameOver signals the single transition into GAMEOVER
	// Consumer: Recorder | Payload: *GameOverPayload
	EventGameOver

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventGameStart:       "GameStart",
	EventShoot:           "Shoot",
	EventEnemyHit:        "EnemyHit",
	EventEnemyDeath:      "EnemyDeath",
	EventPlayerHit:       "PlayerHit",
	EventPickupCollected: "PickupCollected",
	EventLevelUp:         "LevelUp",
	EventUpgradeApplied:  "UpgradeApplied",
	EventGameOver:        "GameOver",
}

func (t EventType) String() string {
	if t >= 0 && t < eventTypeCount {
		return eventNames[t]
	}
	return "Unknown"
}

// AllTypes returns every defined event type in declaration order
func AllTypes() []EventType {
	types := make([]EventType, 0, eventTypeCount)
	for t := EventType(0); t < eventTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Simulation step that emitted the event
	// GameTime is elapsed play time when emitted
	GameTime time.Duration
}
