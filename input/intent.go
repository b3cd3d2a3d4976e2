package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+Q, Ctrl+C, q
	IntentToggleMute // Ctrl+S, m
	IntentResize     // Terminal resize event

	// Menu intents
	IntentStart        // Enter or Space on START/GAMEOVER
	IntentMenu         // Esc on GAMEOVER
	IntentClearHistory // c on START
	IntentChoose       // 1..3 on LEVEL_UP, Index holds 0..2

	// Play intents
	IntentMove    // WASD, hjkl, arrows; Dir holds the direction
	IntentFire    // Space press or auto-repeat
	IntentPointer // Mouse motion or button change; Cell holds position, Pressed holds button 1
)

// Direction is one of the four movement directions
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the direction cancelled by d
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Intent is a semantic action parsed from one terminal event
type Intent struct {
	Type IntentType

	Dir   Direction
	Index int

	CellX, CellY int
	Pressed      bool
}
