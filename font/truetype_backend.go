package font

import (
	"fmt"

	"github.com/goki/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/vgtext/curve"
)

func init() {
	RegisterBackend("truetype", newTrueTypeBackend)
}

// truetypeBackend implements Backend using github.com/goki/freetype/truetype,
// walking the glyf table's raw on/off-curve points directly rather than
// relying on a pre-resolved segment API. This is the backend that
// exercises the implicit-midpoint contour rule (see walkGlyfContour).
type truetypeBackend struct {
	font *truetype.Font
}

// newTrueTypeBackend ignores cubicConfig: the glyf table this backend
// walks has no cubic segments, only on/off-curve points, so there is
// never a cubic to approximate.
func newTrueTypeBackend(data []byte, cubicConfig curve.Config) (Backend, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return &truetypeBackend{font: f}, nil
}

// Name always returns "": this backend's minimal truetype.Font does not
// parse the name table, unlike the sfnt backend. Callers that need font
// naming should use the sfnt backend, or name the FontSource externally.
func (b *truetypeBackend) Name() string {
	return ""
}

func (b *truetypeBackend) FullName() string {
	return ""
}

// NumGlyphs always returns 0: truetype.Font does not expose the glyph
// count parsed from maxp.
func (b *truetypeBackend) NumGlyphs() int {
	return 0
}

func (b *truetypeBackend) UnitsPerEm() int {
	return int(b.font.FUnitsPerEm())
}

// rawScale is the scale value to pass to the truetype package's scale-aware
// methods (Bounds, HMetric, GlyphBuf.Load) to get back raw, unscaled font
// units: the package's internal scale() divides by FUnitsPerEm, so passing
// FUnitsPerEm as the scale cancels that division out.
func (b *truetypeBackend) rawScale() fixed.Int26_6 {
	return fixed.Int26_6(b.font.FUnitsPerEm())
}

func (b *truetypeBackend) GlyphIndex(r rune) GlyphID {
	return GlyphID(b.font.Index(r))
}

func (b *truetypeBackend) scale(ppem float64) float64 {
	upm := b.UnitsPerEm()
	if upm == 0 {
		return 0
	}
	return ppem / float64(upm)
}

func (b *truetypeBackend) Advance(gid GlyphID, ppem float64) float64 {
	hm := b.font.HMetric(b.rawScale(), truetype.Index(gid))
	return float64(hm.AdvanceWidth) * b.scale(ppem)
}

func (b *truetypeBackend) Metrics(ppem float64) FontMetrics {
	s := b.scale(ppem)
	bounds := b.font.Bounds(b.rawScale())
	return FontMetrics{
		Ascent:  float64(bounds.Max.Y) * s,
		Descent: float64(bounds.Min.Y) * s,
	}
}

// Outline implements Backend.Outline by loading the glyph's raw,
// unscaled glyf points and walking each contour with walkGlyfContour,
// then scaling every resulting curve to the requested pixels-per-em.
func (b *truetypeBackend) Outline(gid GlyphID, ppem float64) (*GlyphOutline, error) {
	var gb truetype.GlyphBuf
	if err := gb.Load(b.font, b.rawScale(), truetype.Index(gid), font.HintingNone); err != nil {
		return nil, fmt.Errorf("load glyph %d: %w", gid, err)
	}

	advance := b.Advance(gid, ppem)

	if len(gb.Points) == 0 {
		return &GlyphOutline{GID: gid, Advance: advance}, nil
	}

	s := b.scale(ppem)
	out := &GlyphOutline{GID: gid, Advance: advance}

	start := 0
	for _, end := range gb.Ends {
		pts := make([]RawPoint, 0, end-start)
		for _, p := range gb.Points[start:end] {
			pts = append(pts, RawPoint{
				X:       float64(p.X),
				Y:       float64(p.Y),
				OnCurve: p.Flags&0x01 != 0,
			})
		}
		start = end

		contour := walkGlyfContour(pts)
		if len(contour) > 0 {
			out.Contours = append(out.Contours, scaleContour(contour, s))
		}
	}

	out.Bounds = curve.Rect{
		MinX: float64(gb.Bounds.Min.X) * s,
		MinY: float64(gb.Bounds.Min.Y) * s,
		MaxX: float64(gb.Bounds.Max.X) * s,
		MaxY: float64(gb.Bounds.Max.Y) * s,
	}

	return out, nil
}

// scaleContour returns a copy of c with every coordinate multiplied by s.
func scaleContour(c Contour, s float64) Contour {
	scaled := make(Contour, len(c))
	for i, b := range c {
		scaled[i] = curve.Bezier2{
			E0: b.E0.Mul(s),
			C:  b.C.Mul(s),
			E1: b.E1.Mul(s),
		}
	}
	return scaled
}
