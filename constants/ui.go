package constants

import "time"

// HUD Layout
const (
	// HUDRows are reserved at the top of the terminal; the arena starts below them
	HUDRows = 2

	// HealthBarWidth and ExpBarWidth are in cells
	HealthBarWidth = 20

	// LowHealthRatio switches the health bar to warning colours
	LowHealthRatio = 0.3

	// GridSpacing is the background grid pitch in world units
	GridSpacing = 60.0

	// GridParallax is the grid drift across the full arena width/height
	GridParallax = 20.0
)

// Input
const (
	// KeyHoldWindow keeps a direction held after its last press or auto-repeat
	// Terminals report no key release; the window must bridge the initial repeat delay
	KeyHoldWindow = 220 * time.Millisecond
)

// Persistence
const (
	// HistoryLimit is the number of game records kept, most recent first
	HistoryLimit = 5
)
