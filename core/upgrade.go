package core

// UpgradeKind identifies one of the level-up stat modifiers
type UpgradeKind uint8

const (
	UpgradeFireRate UpgradeKind = iota
	UpgradeDamage
	UpgradeMaxHealth
	UpgradeSpeed

	UpgradeKindCount
)

// UpgradeInfo is the display text of an upgrade
type UpgradeInfo struct {
	Title string
	Desc  string
}

var upgradeInfo = [UpgradeKindCount]UpgradeInfo{
	UpgradeFireRate:  {"Overclock Module", "Fire interval -15%"},
	UpgradeDamage:    {"High-Energy Core", "Bullet damage +25%"},
	UpgradeMaxHealth: {"Reinforced Frame", "Max health +60, repair 100"},
	UpgradeSpeed:     {"Pulse Engine", "Move speed +12%"},
}

// Info returns the display text of k
func (k UpgradeKind) Info() UpgradeInfo {
	if k < UpgradeKindCount {
		return upgradeInfo[k]
	}
	return UpgradeInfo{Title: "unknown"}
}

func (k UpgradeKind) String() string {
	return k.Info().Title
}
