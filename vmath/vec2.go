package vmath

import "math"

// Vec2 is a float64 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns v.X*o.X + v.Y*o.Y
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns squared magnitude without sqrt
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector, zero-safe: a zero vector stays zero
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Angle returns the heading in radians, atan2(y, x)
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle returns a vector of the given length along angle (radians)
func FromAngle(angle, length float64) Vec2 {
	return Vec2{math.Cos(angle) * length, math.Sin(angle) * length}
}

// Dist returns Euclidean distance between two points
func Dist(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// DistSq returns squared distance between two points
func DistSq(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// Direction returns the unit vector from a toward b and the distance between them
// Coincident points yield a zero direction
func Direction(from, to Vec2) (Vec2, float64) {
	d := to.Sub(from)
	l := d.Len()
	if l == 0 {
		return Vec2{}, 0
	}
	return Vec2{d.X / l, d.Y / l}, l
}

// CirclesOverlap is the collision test used for every entity pair
// Touching circles (distance == sum of radii) do not overlap
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	r := ra + rb
	return DistSq(a, b) < r*r
}

// Clamp limits value to [lo, hi]
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// ClampToRect limits v into the rectangle [minX,maxX] x [minY,maxY]
func ClampToRect(v Vec2, minX, minY, maxX, maxY float64) Vec2 {
	return Vec2{Clamp(v.X, minX, maxX), Clamp(v.Y, minY, maxY)}
}

// WrapAngle maps an angle in radians into (-pi, pi]
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// SteerAngle turns current toward target by fraction of the shortest signed difference
// fraction 1 snaps, 0 keeps current
func SteerAngle(current, target, fraction float64) float64 {
	return current + WrapAngle(target-current)*fraction
}
