package core

import "github.com/lixenwraith/neon-strike/vmath"

// Controls is the input intent sampled once per frame
type Controls struct {
	Up, Down, Left, Right bool

	// Aim is the pointer position in world units
	Aim vmath.Vec2
	// Fire is true while the trigger is held
	Fire bool
}

// Direction returns the unnormalized four-way movement vector
func (c Controls) Direction() vmath.Vec2 {
	var d vmath.Vec2
	if c.Left {
		d.X--
	}
	if c.Right {
		d.X++
	}
	if c.Up {
		d.Y--
	}
	if c.Down {
		d.Y++
	}
	return d
}
