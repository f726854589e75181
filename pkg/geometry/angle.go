package geometry

import "math"

// FullTurn is one complete revolution in radians
const FullTurn = 2 * math.Pi

// NormalizeAngle wraps an angle into [0, 2π). Angles are cyclic, so values
// outside the range are rotated back in rather than clamped.
func NormalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, FullTurn)
	if theta < 0 {
		theta += FullTurn
	}
	// math.Mod of a tiny negative value plus a full turn can round up to 2π
	if theta >= FullTurn {
		theta = 0
	}
	return theta
}

// Polar returns the point at the given distance from origin in direction theta.
//
// Theta is measured counter-clockwise from the positive X axis in the usual
// mathematical sense. Screen Y grows downward, so the sine term is negated.
func Polar(origin Point, distance, theta float64) Point {
	return Point{
		X: origin.X + distance*math.Cos(theta),
		Y: origin.Y - distance*math.Sin(theta),
	}
}

// Direction returns the angle in [0, 2π) of the ray from one point to another,
// using the same Y-down convention as Polar.
func Direction(from, to Point) float64 {
	return NormalizeAngle(math.Atan2(-(to.Y - from.Y), to.X-from.X))
}

// Degrees converts radians to degrees
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Radians converts degrees to radians
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
