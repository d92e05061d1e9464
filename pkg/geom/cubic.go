package geom

// CubicBez is a cubic Bezier segment. P0 and P3 are the endpoints, P1 and P2
// the control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval returns the point on the curve at parameter t in [0, 1], using the
// closed-form cubic Bernstein basis:
//
//	(1−t)³·P0 + 3(1−t)²t·P1 + 3(1−t)t²·P2 + t³·P3
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// Sample evaluates the curve at n evenly spaced parameters in [0, 1] and
// returns the resulting polyline. The first point is exactly P0 and the last
// exactly P3, so downstream consumers can rely on endpoint fidelity without a
// tolerance. n must be at least 2; callers validate before sampling.
func (c CubicBez) Sample(n int) []Point {
	pts := make([]Point, n)
	pts[0] = c.P0
	for i := 1; i < n-1; i++ {
		pts[i] = c.Eval(float64(i) / float64(n-1))
	}
	pts[n-1] = c.P3
	return pts
}
