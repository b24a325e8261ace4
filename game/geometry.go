package game

import "math"

// Vec2 is a point or direction in world coordinates
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the Euclidean length of v
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Direction returns the unit vector pointing from `from` to `to`.
// Coincident points yield the zero vector so callers never see NaN.
func Direction(from, to Vec2) Vec2 {
	d := to.Sub(from)
	dist := d.Len()
	if dist == 0 {
		return Vec2{}
	}
	return d.Scale(1 / dist)
}

// StepToward moves `from` toward `to` by `speed` units along a straight line.
// It may overshoot; callers that care compare distances themselves.
func StepToward(from, to Vec2, speed float64) Vec2 {
	return from.Add(Direction(from, to).Scale(speed))
}

// Bearing returns the angle in radians from `from` to `to`
func Bearing(from, to Vec2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// FromAngle returns a vector of the given length pointing along angle
func FromAngle(angle, length float64) Vec2 {
	return Vec2{math.Cos(angle) * length, math.Sin(angle) * length}
}

// circlesOverlap reports whether two circles intersect (touching does not count)
func circlesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return Distance(a, b) < ra+rb
}

// clamp limits v to [lo, hi]
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
