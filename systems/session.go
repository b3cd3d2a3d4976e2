package systems

import (
	"fmt"

	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/engine"
	"github.com/lixenwraith/neon-strike/events"
)

// Reset starts a fresh session from START or GAMEOVER
// The spawn accumulator is pre-filled so the first enemy arrives after FirstSpawnLead
func Reset(w *engine.World) error {
	if !w.Phase.CanTransition(engine.PhasePlaying) || w.Phase.Is(engine.PhaseLevelUp) {
		return fmt.Errorf("%w: reset from %s", engine.ErrInvalidTransition, w.Phase.Current())
	}

	w.Reset()
	w.SpawnAccum = constants.InitialSpawnInterval - constants.FirstSpawnLead
	if err := w.Phase.Transition(engine.PhasePlaying); err != nil {
		return err
	}
	w.Emit(events.EventGameStart, nil)
	return nil
}
