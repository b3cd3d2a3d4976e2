package game

import (
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/neon-strike/engine"
	"github.com/lixenwraith/neon-strike/events"
)

// newEventLogger traces every gameplay event at debug level
func newEventLogger() events.Handler[*engine.World] {
	return events.HandlerFunc[*engine.World]{
		Types: events.AllTypes(),
		Fn: func(w *engine.World, ev events.GameEvent) {
			e := log.Debug().
				Stringer("event", ev.Type).
				Int64("frame", ev.Frame).
				Dur("game_time", ev.GameTime)
			switch p := ev.Payload.(type) {
			case *events.EnemyDeathPayload:
				e = e.Stringer("enemy", p.Type).Int("score", p.ScoreValue).Bool("pack", p.DroppedPack)
			case *events.PlayerHitPayload:
				e = e.Float64("damage", p.Damage).Float64("health", p.Health)
			case *events.LevelUpPayload:
				e = e.Int("level", p.Level).Int("choices", len(p.Choices))
			case *events.UpgradeAppliedPayload:
				e = e.Stringer("upgrade", p.Kind)
			case *events.GameOverPayload:
				e = e.Int("score", p.Score).Int("kills", p.Kills).Dur("duration", p.Duration)
			}
			e.Uint64("queue_dropped", w.Events.Dropped()).Msg("game event")
		},
	}
}
