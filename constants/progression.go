package constants

// Experience
const (
	InitialExpToNextLevel = 100.0
	ExpGrowthFactor       = 1.3

	// UpgradeChoices is how many distinct upgrades are offered per level-up
	UpgradeChoices = 3
)

// Upgrade Magnitudes
const (
	UpgradeFireRateFactor = 0.85
	UpgradeDamageFactor   = 1.25
	UpgradeMaxHealthBonus = 60.0
	UpgradeHealAmount     = 100.0
	UpgradeSpeedFactor    = 1.12
)
