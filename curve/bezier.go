package curve

import "math"

// Bezier2 is a quadratic Bezier curve: it starts at E0, ends at E1, and is
// pulled toward C. Two consecutive on-curve TrueType points with no
// control point between them become a degenerate Bezier2 whose C is the
// midpoint of E0 and E1 (see the font package's contour walk).
type Bezier2 struct {
	E0, C, E1 Point
}

// PointAt evaluates the curve at parameter t in [0,1].
func (b Bezier2) PointAt(t float64) Point {
	u := 1 - t
	x := u*u*b.E0.X + 2*u*t*b.C.X + t*t*b.E1.X
	y := u*u*b.E0.Y + 2*u*t*b.C.Y + t*t*b.E1.Y
	return Point{x, y}
}

// Bounds returns the tight axis-aligned bounding box of the curve,
// found from the roots of its derivative rather than just its control
// points.
func (b Bezier2) Bounds() Rect {
	minX, maxX := minmax3(b.E0.X, b.C.X, b.E1.X)
	minY, maxY := minmax3(b.E0.Y, b.C.Y, b.E1.Y)

	if t, ok := quadraticExtremumT(b.E0.X, b.C.X, b.E1.X); ok {
		x := b.PointAt(t).X
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
	}
	if t, ok := quadraticExtremumT(b.E0.Y, b.C.Y, b.E1.Y); ok {
		y := b.PointAt(t).Y
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// IntersectsRect reports whether the curve's bounding box overlaps r.
// This is a conservative test (the first filter when deciding which
// VGrid cells a curve is recorded in): it never misses a rectangle the
// curve actually touches, but it also reports rectangles inside the
// bounding box that the curve itself does not reach.
func (b Bezier2) IntersectsRect(r Rect) bool {
	bb := b.Bounds()
	return bb.MinX <= r.MaxX && bb.MaxX >= r.MinX && bb.MinY <= r.MaxY && bb.MaxY >= r.MinY
}

// CrossesRightwardRay reports whether a horizontal ray cast from origin in
// the +X direction crosses this curve an odd or even number of times,
// returning the crossing count. Used to determine whether a given point
// lies inside the glyph's filled region via the even-odd rule, the same
// technique the original VGrid midInside computation uses for each cell's
// midpoint.
func (b Bezier2) CrossesRightwardRay(origin Point) int {
	// Solve E(t).Y == origin.Y for t via the quadratic Bezier coefficients
	// Y(t) = a*t^2 + b*t + c.
	a := b.E0.Y - 2*b.C.Y + b.E1.Y
	bb := -2*b.E0.Y + 2*b.C.Y
	c := b.E0.Y - origin.Y

	count := 0
	for _, t := range quadraticRoots(a, bb, c) {
		if t < 0 || t >= 1 {
			continue
		}
		p := b.PointAt(t)
		if p.X > origin.X {
			count++
		}
	}
	return count
}

// SolveX returns the parameter values t (not restricted to [0,1]) at
// which the curve's X coordinate equals value.
func (b Bezier2) SolveX(value float64) []float64 {
	a := b.E0.X - 2*b.C.X + b.E1.X
	bb := -2*b.E0.X + 2*b.C.X
	c := b.E0.X - value
	return quadraticRoots(a, bb, c)
}

// SolveY returns the parameter values t (not restricted to [0,1]) at
// which the curve's Y coordinate equals value.
func (b Bezier2) SolveY(value float64) []float64 {
	a := b.E0.Y - 2*b.C.Y + b.E1.Y
	bb := -2*b.E0.Y + 2*b.C.Y
	c := b.E0.Y - value
	return quadraticRoots(a, bb, c)
}

// minmax3 returns the min and max of three values.
func minmax3(a, b, c float64) (minV, maxV float64) {
	minV = math.Min(a, math.Min(b, c))
	maxV = math.Max(a, math.Max(b, c))
	return
}

// quadraticExtremumT returns the parameter t at which the scalar
// quadratic Bezier with control values p0, p1, p2 has a derivative of
// zero, if that t lies in (0,1).
func quadraticExtremumT(p0, p1, p2 float64) (float64, bool) {
	denom := p0 - 2*p1 + p2
	if denom == 0 {
		return 0, false
	}
	t := (p0 - p1) / denom
	if t <= 0 || t >= 1 {
		return 0, false
	}
	return t, true
}

// quadraticRoots returns the real roots of a*t^2 + b*t + c == 0.
func quadraticRoots(a, b, c float64) []float64 {
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) < 1e-12 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
