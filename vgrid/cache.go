package vgrid

import (
	"github.com/gogpu/vgtext/curve"
	"github.com/gogpu/vgtext/font"
)

// GlyphKey identifies one cached glyph by its font handle and rune, per
// §4.6's (fontHandle, codepoint) key. The font handle is the
// *font.FontSource pointer itself: callers keep one FontSource alive
// per distinct font rather than re-parsing it.
type GlyphKey struct {
	Font *font.FontSource
	Rune rune
}

// GlyphRecord is a cache value: a weak view into an atlas group by
// index and offset. It never pins memory — the cache exclusively owns
// the sequence of atlas groups it indexes into.
type GlyphRecord struct {
	AtlasGroupIndex int
	GlyphDataOffset int // texels
	EmBoxSize       GlyphBox
	BearingX        float64
	BearingY        float64
	Advance         float64
	NoCurvesFlag    bool
}

// Cache maps (font, codepoint) to GlyphRecord. It is monotonic: records
// are never evicted, and it is single-threaded cooperative per the
// concurrency model — the caller must not invoke it from more than one
// goroutine concurrently.
type Cache struct {
	groups  []*AtlasGroup
	records map[GlyphKey]*GlyphRecord
}

// NewCache creates an empty glyph cache with one open atlas group.
func NewCache() *Cache {
	return &Cache{
		groups:  []*AtlasGroup{newAtlasGroup()},
		records: make(map[GlyphKey]*GlyphRecord),
	}
}

// Groups returns the cache's atlas groups in insertion order, for the
// GPU-upload side to walk and flush whichever are dirty.
func (c *Cache) Groups() []*AtlasGroup { return c.groups }

// Get returns the cached record for (source, r), building it on a
// miss. A second call with the same key returns the identical
// *GlyphRecord without touching the font backend again.
func (c *Cache) Get(source *font.FontSource, r rune) (*GlyphRecord, error) {
	key := GlyphKey{Font: source, Rune: r}
	if rec, ok := c.records[key]; ok {
		return rec, nil
	}

	rec, err := c.build(source, r)
	if err != nil {
		// OutlineProviderError: propagated unchanged, no cache entry.
		return nil, err
	}
	c.records[key] = rec
	return rec, nil
}

// build runs the cache's miss path: request the glyph's outline at no
// scale (font units), extract curves, and either store a degenerate
// record or pack a full one.
func (c *Cache) build(source *font.FontSource, r rune) (*GlyphRecord, error) {
	backend := source.Backend()
	upm := float64(backend.UnitsPerEm())
	face := source.Face(upm) // ppem == unitsPerEm: unscaled font-unit coordinates

	outline, err := face.Outline(r)
	if err != nil {
		return nil, err
	}

	if outline.IsEmpty() {
		Logger().Debug("glyph has no contours", "rune", r)
		return &GlyphRecord{Advance: outline.Advance, NoCurvesFlag: true}, nil
	}

	curves, box, bearingX, bearingY := extractCurves(outline)
	if len(curves) == 0 || box.Width <= 0 || box.Height <= 0 {
		return &GlyphRecord{Advance: outline.Advance, NoCurvesFlag: true}, nil
	}

	grid, buildErr := BuildVGrid(curves, box)
	if buildErr != nil {
		Logger().Warn("glyph stored as degenerate", "rune", r, "err", buildErr)
		return &GlyphRecord{Advance: outline.Advance, NoCurvesFlag: true}, nil
	}

	pg := packedGlyph{Curves: curves, Grid: grid, Box: box}
	offset, groupIndex, packErr := c.pack(pg)
	if packErr != nil {
		Logger().Warn("glyph stored as degenerate", "rune", r, "err", packErr)
		return &GlyphRecord{Advance: outline.Advance, NoCurvesFlag: true}, nil
	}

	return &GlyphRecord{
		AtlasGroupIndex: groupIndex,
		GlyphDataOffset: offset,
		EmBoxSize:       box,
		BearingX:        bearingX,
		BearingY:        bearingY,
		Advance:         outline.Advance,
	}, nil
}

// pack inserts pg into the currently open group, opening a new one if
// the current group is full or the insert would not fit. It reports
// ErrBezierBudgetExceeded only if the glyph cannot fit even in a fresh,
// empty group.
func (c *Cache) pack(pg packedGlyph) (offset, groupIndex int, err error) {
	last := c.groups[len(c.groups)-1]
	if off, ok := last.insert(pg); ok {
		return off, len(c.groups) - 1, nil
	}

	fresh := newAtlasGroup()
	if off, ok := fresh.insert(pg); ok {
		c.groups = append(c.groups, fresh)
		return off, len(c.groups) - 1, nil
	}

	return 0, 0, newBuildError(KindBezierBudgetExceeded, ErrBezierBudgetExceeded)
}

// extractCurves flattens an outline's contours into one curve list and
// computes its em-box and bearing, translating every point so the
// box's minimum corner becomes the origin. This is the glue between a
// font.GlyphOutline and the VGrid builder, which expects curves already
// normalized to [0,W]x[0,H].
func extractCurves(outline *font.GlyphOutline) (curves []curve.Bezier2, box GlyphBox, bearingX, bearingY float64) {
	b := outline.Bounds
	bearingX, bearingY = b.MinX, b.MinY
	box = GlyphBox{Width: b.Width(), Height: b.Height()}

	shift := curve.Point{X: -b.MinX, Y: -b.MinY}
	for _, contour := range outline.Contours {
		for _, seg := range contour {
			curves = append(curves, curve.Bezier2{
				E0: seg.E0.Add(shift),
				C:  seg.C.Add(shift),
				E1: seg.E1.Add(shift),
			})
		}
	}
	return
}
