package store

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/neon-strike/events"
)

// Recorder writes a history record when a game ends
type Recorder[T any] struct {
	store *ScoreStore
	now   func() time.Time
}

func NewRecorder[T any](s *ScoreStore) *Recorder[T] {
	return &Recorder[T]{store: s, now: time.Now}
}

func (r *Recorder[T]) HandleEvent(_ T, event events.GameEvent) {
	p, ok := event.Payload.(*events.GameOverPayload)
	if !ok || p == nil {
		return
	}
	rec, err := r.store.RecordGame(p.Score, p.Kills, p.Duration, r.now())
	if err != nil {
		// Persistence failure never reaches the simulation
		log.Warn().Err(err).Int("score", p.Score).Msg("failed to save game record")
		return
	}
	log.Info().Str("id", rec.ID).Int("score", rec.Score).Int("kills", rec.Kills).Int("time", rec.Time).Msg("game recorded")
}

func (r *Recorder[T]) EventTypes() []events.EventType {
	return []events.EventType{events.EventGameOver}
}
