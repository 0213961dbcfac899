package font

import "github.com/gogpu/vgtext/curve"

// GlyphID is a glyph index within a font, assigned by the font file.
type GlyphID uint16

// Contour is a single closed loop of quadratic Bezier curves: the curve at
// index i+1 starts exactly where the curve at index i ends, and the last
// curve's end point equals the first curve's start point.
type Contour []curve.Bezier2

// Closed reports whether the contour's curves form a closed loop, each
// one picking up exactly where the previous one ended.
func (c Contour) Closed() bool {
	if len(c) == 0 {
		return true
	}
	for i := 0; i < len(c)-1; i++ {
		if c[i].E1 != c[i+1].E0 {
			return false
		}
	}
	return c[len(c)-1].E1 == c[0].E0
}

// GlyphOutline is the extracted, already-quadratic representation of a
// single glyph: one or more closed contours plus the metrics a VGrid
// build needs.
type GlyphOutline struct {
	GID      GlyphID
	Contours []Contour
	Bounds   curve.Rect
	Advance  float64
}

// IsEmpty reports whether the outline has no contours (e.g. space).
func (o *GlyphOutline) IsEmpty() bool {
	return o == nil || len(o.Contours) == 0
}

// RawPoint is a single point from a glyf-table contour, in font units,
// tagged with whether it is on-curve or an off-curve control point. It is the raw representation the truetype backend walks; the
// sfnt backend never produces these, since sfnt.Font.LoadGlyph already
// resolves them into MoveTo/LineTo/QuadTo/CubeTo segments.
type RawPoint struct {
	X, Y    float64
	OnCurve bool
}

// walkGlyfContour converts a closed sequence of raw glyf points into a
// Contour, applying TrueType's implicit on/off-curve point rule: two
// consecutive off-curve points imply an on-curve point at their midpoint,
// and the first point of a contour is always treated as on-curve.
//
// This mirrors golang-freetype's Context.drawContour point-by-point, but
// appends curve.Bezier2 curves instead of feeding a scan-converting
// rasterizer.
func walkGlyfContour(ps []RawPoint) Contour {
	if len(ps) == 0 {
		return nil
	}

	toPoint := func(p RawPoint) curve.Point { return curve.Point{X: p.X, Y: p.Y} }

	start := toPoint(ps[0])
	pen := start
	prev := start
	prevOn := true

	var contour Contour
	addLine := func(to curve.Point) {
		contour = append(contour, curve.Bezier2{E0: pen, C: pen.Lerp(to, 0.5), E1: to})
		pen = to
	}
	addQuad := func(ctrl, to curve.Point) {
		contour = append(contour, curve.Bezier2{E0: pen, C: ctrl, E1: to})
		pen = to
	}

	for _, rp := range ps[1:] {
		p := toPoint(rp)
		on := rp.OnCurve

		switch {
		case on && prevOn:
			addLine(p)
		case on && !prevOn:
			addQuad(prev, p)
		case !on && prevOn:
			// No-op: remember this off-curve point as a pending control.
		default: // !on && !prevOn
			mid := prev.Lerp(p, 0.5)
			addQuad(prev, mid)
		}

		prev, prevOn = p, on
	}

	// Close the contour back to its start point.
	if prevOn {
		addLine(start)
	} else {
		addQuad(prev, start)
	}

	return contour
}

// FontMetrics holds font-level metrics at a given pixels-per-em size.
type FontMetrics struct {
	Ascent    float64
	Descent   float64
	LineGap   float64
	XHeight   float64
	CapHeight float64
}

// Height returns the recommended line height.
func (m FontMetrics) Height() float64 {
	return m.Ascent - m.Descent + m.LineGap
}
