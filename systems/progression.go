package systems

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/engine"
	"github.com/lixenwraith/neon-strike/events"
)

var (
	// ErrNoUpgradePending is returned when choosing an upgrade outside LEVEL_UP
	ErrNoUpgradePending = errors.New("no upgrade pending")
	// ErrInvalidChoice is returned for an index outside the current offer
	ErrInvalidChoice = errors.New("invalid upgrade choice")
)

// GainExperience adds experience and performs at most one level-up per call
// The old threshold is deducted rather than resetting exp to zero
// Returns true if a level was gained
func GainExperience(w *engine.World, value float64) bool {
	p := &w.Player
	p.Exp += value
	if p.Exp < p.ExpToNextLevel {
		return false
	}

	p.Exp -= p.ExpToNextLevel
	p.Level++
	p.ExpToNextLevel = math.Floor(p.ExpToNextLevel * constants.ExpGrowthFactor)

	if w.Phase.Is(engine.PhaseLevelUp) {
		// Already choosing; queue this crossing behind the current offer
		w.PendingLevelUps++
		return true
	}
	if err := w.Phase.Transition(engine.PhaseLevelUp); err != nil {
		w.PendingLevelUps++
		return true
	}
	OfferUpgrades(w)
	return true
}

// OfferUpgrades draws distinct upgrades into the world's offer and announces the level-up
func OfferUpgrades(w *engine.World) []core.UpgradeKind {
	perm := w.Rng.Perm(int(core.UpgradeKindCount))
	offer := make([]core.UpgradeKind, 0, constants.UpgradeChoices)
	for _, k := range perm[:constants.UpgradeChoices] {
		offer = append(offer, core.UpgradeKind(k))
	}
	w.Offer = offer

	w.Emit(events.EventLevelUp, &events.LevelUpPayload{
		Level:   w.Player.Level,
		Choices: slices.Clone(offer),
	})
	return offer
}

// ChooseUpgrade applies the offered upgrade at index and resumes play,
// or presents the next offer if further level-ups are queued
func ChooseUpgrade(w *engine.World, index int) error {
	if !w.Phase.Is(engine.PhaseLevelUp) {
		return ErrNoUpgradePending
	}
	if index < 0 || index >= len(w.Offer) {
		return fmt.Errorf("%w: %d of %d", ErrInvalidChoice, index, len(w.Offer))
	}

	kind := w.Offer[index]
	ApplyUpgrade(w, kind)
	w.Emit(events.EventUpgradeApplied, &events.UpgradeAppliedPayload{Kind: kind, Level: w.Player.Level})

	if w.PendingLevelUps > 0 {
		w.PendingLevelUps--
		OfferUpgrades(w)
		return nil
	}

	w.Offer = nil
	return w.Phase.Transition(engine.PhasePlaying)
}

// ApplyUpgrade modifies the player stat for kind and plays the celebratory burst
func ApplyUpgrade(w *engine.World, kind core.UpgradeKind) {
	p := &w.Player
	switch kind {
	case core.UpgradeFireRate:
		p.FireRate = time.Duration(float64(p.FireRate) * constants.UpgradeFireRateFactor)
	case core.UpgradeDamage:
		p.Damage *= constants.UpgradeDamageFactor
	case core.UpgradeMaxHealth:
		p.MaxHealth += constants.UpgradeMaxHealthBonus
		p.SetHealth(p.Health + constants.UpgradeHealAmount)
	case core.UpgradeSpeed:
		p.MoveSpeed *= constants.UpgradeSpeedFactor
	}

	CreateExplosion(w, p.Pos, core.RGBWhite, constants.UpgradeBurstCount, constants.UpgradeBurstSpeed)
	w.Shake.Set(constants.ShakeUpgrade)
}
