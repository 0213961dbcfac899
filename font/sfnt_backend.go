package font

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/vgtext/curve"
)

func init() {
	RegisterBackend("sfnt", newSFNTBackend)
}

// sfntBackend implements Backend using golang.org/x/image/font/sfnt. Its
// segments are already resolved to MoveTo/LineTo/QuadTo/CubeTo, so
// outline extraction here only needs to translate segment ops into
// curve.Bezier2 curves and approximate any cubics; there is no raw
// on/off-curve point classification to do, unlike the truetype backend.
type sfntBackend struct {
	font        *opentype.Font
	buf         sfnt.Buffer
	cubicConfig curve.Config
}

func newSFNTBackend(data []byte, cubicConfig curve.Config) (Backend, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return &sfntBackend{font: f, cubicConfig: cubicConfig}, nil
}

func (b *sfntBackend) Name() string {
	if s, err := b.font.Name(&b.buf, sfnt.NameIDFamily); err == nil {
		return s
	}
	return ""
}

func (b *sfntBackend) FullName() string {
	if s, err := b.font.Name(&b.buf, sfnt.NameIDFull); err == nil {
		return s
	}
	return ""
}

func (b *sfntBackend) NumGlyphs() int {
	return b.font.NumGlyphs()
}

func (b *sfntBackend) UnitsPerEm() int {
	return int(b.font.UnitsPerEm())
}

func (b *sfntBackend) GlyphIndex(r rune) GlyphID {
	idx, err := b.font.GlyphIndex(&b.buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

func (b *sfntBackend) Advance(gid GlyphID, ppem float64) float64 {
	adv, err := b.font.GlyphAdvance(&b.buf, sfnt.GlyphIndex(gid), toFixed(ppem), font.HintingNone)
	if err != nil {
		return 0
	}
	return fromFixed(adv)
}

func (b *sfntBackend) Metrics(ppem float64) FontMetrics {
	m, err := b.font.Metrics(&b.buf, toFixed(ppem), font.HintingNone)
	if err != nil {
		return FontMetrics{}
	}
	return FontMetrics{
		Ascent:    fromFixed(m.Ascent),
		Descent:   fromFixed(m.Descent),
		LineGap:   fromFixed(m.Height) - fromFixed(m.Ascent) + fromFixed(m.Descent),
		XHeight:   fromFixed(m.XHeight),
		CapHeight: fromFixed(m.CapHeight),
	}
}

// Outline implements Backend.Outline. The returned bounds come from the
// font's own stored per-glyph metrics (sfnt.Font.GlyphBounds, backed by
// the glyf/CFF table's bbox), not from walking control points, so the
// VGrid's normalized [0,1]^2 box matches what the truetype backend
// produces for the same invariant.
func (b *sfntBackend) Outline(gid GlyphID, ppem float64) (*GlyphOutline, error) {
	ppemFixed := toFixed(ppem)

	segments, err := b.font.LoadGlyph(&b.buf, sfnt.GlyphIndex(gid), ppemFixed, nil)
	if err != nil {
		return nil, fmt.Errorf("load glyph %d: %w", gid, err)
	}

	advance := b.Advance(gid, ppem)

	if len(segments) == 0 {
		return &GlyphOutline{GID: gid, Advance: advance}, nil
	}

	fixedBounds, _, err := b.font.GlyphBounds(&b.buf, sfnt.GlyphIndex(gid), ppemFixed, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("glyph bounds %d: %w", gid, err)
	}
	bounds := curve.Rect{
		MinX: fromFixed26(fixedBounds.Min.X),
		MinY: fromFixed26(fixedBounds.Min.Y),
		MaxX: fromFixed26(fixedBounds.Max.X),
		MaxY: fromFixed26(fixedBounds.Max.Y),
	}

	out := &GlyphOutline{GID: gid, Advance: advance, Bounds: bounds}

	var contour Contour
	var start, cur curve.Point

	flushContour := func() {
		if len(contour) > 0 {
			// Close the contour back to its start if the last point
			// didn't already land there.
			if contour[len(contour)-1].E1 != start {
				contour = append(contour, curve.Bezier2{
					E0: contour[len(contour)-1].E1,
					C:  contour[len(contour)-1].E1.Lerp(start, 0.5),
					E1: start,
				})
			}
			out.Contours = append(out.Contours, contour)
		}
		contour = nil
	}

	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			flushContour()
			start = fixedToPoint(seg.Args[0])
			cur = start

		case sfnt.SegmentOpLineTo:
			p := fixedToPoint(seg.Args[0])
			contour = append(contour, curve.Bezier2{E0: cur, C: cur.Lerp(p, 0.5), E1: p})
			cur = p

		case sfnt.SegmentOpQuadTo:
			c := fixedToPoint(seg.Args[0])
			p := fixedToPoint(seg.Args[1])
			contour = append(contour, curve.Bezier2{E0: cur, C: c, E1: p})
			cur = p

		case sfnt.SegmentOpCubeTo:
			c1 := fixedToPoint(seg.Args[0])
			c2 := fixedToPoint(seg.Args[1])
			p := fixedToPoint(seg.Args[2])
			contour = append(contour, curve.ApproximateCubic(cur, c1, c2, p, b.cubicConfig)...)
			cur = p
		}
	}
	flushContour()

	return out, nil
}

func fixedToPoint(p fixed.Point26_6) curve.Point {
	return curve.Point{X: fromFixed26(p.X), Y: fromFixed26(p.Y)}
}

func fromFixed26(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

func toFixed(ppem float64) fixed.Int26_6 {
	return fixed.Int26_6(ppem * 64)
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
