// internal/utils/math.go
package utils

import "math"

// Vec2 is a 2D position, velocity or direction.
type Vec2 struct{ X, Y float64 }

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Dot(b Vec2) float64   { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Neg() Vec2            { return Vec2{-a.X, -a.Y} }

// Distance returns |a-b|.
func (a Vec2) Distance(b Vec2) float64 { return a.Sub(b).Len() }

// Normalize returns the unit vector of a. The zero vector normalizes to itself.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// Vec4 is an RGBA color with components in [0, 1].
type Vec4 struct{ X, Y, Z, W float64 }

// RGBA255 builds a color from 0..255 channel values.
func RGBA255(r, g, b, a float64) Vec4 {
	return Vec4{r / 255, g / 255, b / 255, a / 255}
}

// VectorToAngle returns the angle of v in radians.
func VectorToAngle(v Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleToVector returns the unit vector pointing at angle radians.
func AngleToVector(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// Rotate rotates v counter-clockwise by angle radians.
func Rotate(v Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Lerp performs standard linear interpolation.
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// ColorLerp interpolates every channel of two colors.
func ColorLerp(from, to Vec4, t float64) Vec4 {
	return Vec4{
		X: Lerp(from.X, to.X, t),
		Y: Lerp(from.Y, to.Y, t),
		Z: Lerp(from.Z, to.Z, t),
		W: Lerp(from.W, to.W, t),
	}
}

// NormalizeAngle wraps angle into [-π, π].
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
