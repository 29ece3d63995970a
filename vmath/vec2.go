package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector for world-space physics
type Vec2 struct {
	X, Y float64
}

// AxisX is the fallback direction for degenerate normals
var AxisX = Vec2{X: 1}

func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Normalize returns the unit vector, zero vector for zero input
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2NormalizeOr returns the unit vector, or fallback when |v| <= eps
func V2NormalizeOr(v Vec2, eps float64, fallback Vec2) Vec2 {
	mag := V2Mag(v)
	if mag <= eps {
		return fallback
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Lerp interpolates a→b by t (unclamped)
func V2Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// V2FromAngle returns the unit vector at angle radians
func V2FromAngle(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{c, s}
}

// V2ClampMag scales v down to maxMag preserving direction
func V2ClampMag(v Vec2, maxMag float64) Vec2 {
	magSq := V2MagSq(v)
	if magSq <= maxMag*maxMag || magSq == 0 {
		return v
	}
	return V2Scale(v, maxMag/math.Sqrt(magSq))
}

// V2WeightedMean blends a and b by weights wa, wb
// Returns a when the combined weight is not positive
func V2WeightedMean(a Vec2, wa float64, b Vec2, wb float64) Vec2 {
	total := wa + wb
	if total <= 0 {
		return a
	}
	inv := 1.0 / total
	return Vec2{(a.X*wa + b.X*wb) * inv, (a.Y*wa + b.Y*wb) * inv}
}

// V2IsFinite reports whether both components are finite
func V2IsFinite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
