package vgrid

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/vgtext/font"
)

// TestCacheRealFontOGlyph covers spec scenario S2: 'O' in a stock font
// must produce a record built from at least 8 curves, its VGrid must
// contain both inside and outside cells (an 'O' has a hollow center),
// and re-querying the same (font, rune) must return the identical
// record rather than rebuilding it.
func TestCacheRealFontOGlyph(t *testing.T) {
	source, err := font.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}

	backend := source.Backend()
	upm := float64(backend.UnitsPerEm())
	face := source.Face(upm)

	outline, err := face.Outline('O')
	if err != nil {
		t.Fatalf("Outline('O'): %v", err)
	}
	curves, box, _, _ := extractCurves(outline)
	if len(curves) < 8 {
		t.Fatalf("'O' flattened to %d curves, want >= 8", len(curves))
	}

	grid, err := BuildVGrid(curves, box)
	if err != nil {
		t.Fatalf("BuildVGrid: %v", err)
	}

	sawInside, sawOutside := false, false
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			cell := grid.At(x, y)
			if cell.MidInside {
				sawInside = true
			} else {
				sawOutside = true
			}
		}
	}
	if !sawInside || !sawOutside {
		t.Errorf("'O' grid must have both inside and outside cells, got inside=%v outside=%v", sawInside, sawOutside)
	}

	cache := NewCache()
	rec1, err := cache.Get(source, 'O')
	if err != nil {
		t.Fatalf("Get('O') first call: %v", err)
	}
	if rec1.NoCurvesFlag {
		t.Fatal("'O' must not be stored as a degenerate record")
	}

	rec2, err := cache.Get(source, 'O')
	if err != nil {
		t.Fatalf("Get('O') second call: %v", err)
	}
	if rec1 != rec2 {
		t.Error("re-querying the same (font, rune) must return the identical record")
	}
}
