// Package geom provides the small set of 2D primitives used by the curve
// generator: points, vectors, and cubic Bezier segments with polyline
// sampling.
package geom

import (
	"fmt"
	"math"
)

// Point is a 2D position.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Sub computes the displacement p−o.
func (p Point) Sub(o Point) Vec2 {
	return Vec2{X: p.X - o.X, Y: p.Y - o.Y}
}

// Translate returns p moved by v.
func (p Point) Translate(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Lerp linearly interpolates between p and o.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{
		X: p.X + (o.X-p.X)*t,
		Y: p.Y + (o.Y-p.Y)*t,
	}
}

// Vec2 is a 2D displacement.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v−o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged; callers must handle degenerate
// geometry before normalizing.
func (v Vec2) Normalize() Vec2 {
	h := v.Hypot()
	if h == 0 {
		return v
	}
	return v.Mul(1 / h)
}

// Perp returns v rotated 90 degrees counterclockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}
