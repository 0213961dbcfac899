package vgrid

import (
	"testing"

	"github.com/gogpu/vgtext/curve"
	"github.com/gogpu/vgtext/font"
)

func TestExtractCurvesTranslatesToOrigin(t *testing.T) {
	outline := &font.GlyphOutline{
		Bounds: curve.Rect{MinX: 100, MinY: 200, MaxX: 300, MaxY: 500},
		Contours: []font.Contour{
			{
				{E0: curve.Point{X: 100, Y: 200}, C: curve.Point{X: 200, Y: 200}, E1: curve.Point{X: 300, Y: 200}},
			},
		},
	}

	curves, box, bearingX, bearingY := extractCurves(outline)
	if bearingX != 100 || bearingY != 200 {
		t.Errorf("bearing = (%v,%v), want (100,200)", bearingX, bearingY)
	}
	if box.Width != 200 || box.Height != 300 {
		t.Errorf("box = %+v, want {200,300}", box)
	}
	if len(curves) != 1 {
		t.Fatalf("got %d curves, want 1", len(curves))
	}
	if curves[0].E0 != (curve.Point{X: 0, Y: 0}) {
		t.Errorf("E0 = %v, want (0,0) after translation", curves[0].E0)
	}
	if curves[0].E1 != (curve.Point{X: 200, Y: 0}) {
		t.Errorf("E1 = %v, want (200,0) after translation", curves[0].E1)
	}
}

func TestCachePackOpensNewGroupWhenFull(t *testing.T) {
	c := NewCache()
	grid := emptyGrid(t)
	box := GlyphBox{Width: 10, Height: 10}
	capacity := (GridAtlasSize / GridMaxSize) * (GridAtlasSize / GridMaxSize)

	for i := 0; i < capacity; i++ {
		if _, _, err := c.pack(packedGlyph{Grid: grid, Box: box}); err != nil {
			t.Fatalf("pack %d/%d failed: %v", i+1, capacity, err)
		}
	}
	if len(c.groups) != 1 {
		t.Fatalf("groups after filling one group = %d, want 1", len(c.groups))
	}

	offset, groupIndex, err := c.pack(packedGlyph{Grid: grid, Box: box})
	if err != nil {
		t.Fatalf("pack after group full: %v", err)
	}
	if groupIndex != 1 {
		t.Errorf("groupIndex = %d, want 1 (a new group opened)", groupIndex)
	}
	if offset != 0 {
		t.Errorf("offset in new group = %d, want 0", offset)
	}
	if len(c.groups) != 2 {
		t.Fatalf("groups after overflow = %d, want 2", len(c.groups))
	}
}

func TestCacheGetIsIdempotentByIdentity(t *testing.T) {
	c := NewCache()
	rec := &GlyphRecord{Advance: 42, NoCurvesFlag: true}
	key := GlyphKey{Font: nil, Rune: 'x'}
	c.records[key] = rec

	got, err := c.Get(nil, 'x')
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != rec {
		t.Error("Get on a cache hit must return the identical record")
	}
}
