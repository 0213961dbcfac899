package font

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// loadTestFont loads the embedded Go Regular font, the same stock font
// the teacher's own face tests use.
func loadTestFont(t *testing.T) *FontSource {
	t.Helper()
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to load test font: %v", err)
	}
	return source
}

// TestSFNTBackendOutlineRealGlyph exercises the sfnt backend against a
// real stock font: 'O' should decompose into at least 8 quadratic
// curves across its outer and inner contours, with a non-degenerate
// bounding box sourced from the font's own stored glyph metrics.
func TestSFNTBackendOutlineRealGlyph(t *testing.T) {
	source := loadTestFont(t)
	upm := float64(source.Backend().UnitsPerEm())
	face := source.Face(upm)

	outline, err := face.Outline('O')
	if err != nil {
		t.Fatalf("Outline('O'): %v", err)
	}
	if outline.IsEmpty() {
		t.Fatal("'O' should not be an empty outline in a stock font")
	}

	total := 0
	for _, c := range outline.Contours {
		if !c.Closed() {
			t.Error("every contour from the sfnt backend must be closed")
		}
		total += len(c)
	}
	if total < 8 {
		t.Errorf("'O' decomposed into %d curves, want >= 8", total)
	}

	if outline.Bounds.Width() <= 0 || outline.Bounds.Height() <= 0 {
		t.Errorf("bounds = %+v, want a positive-area box from stored glyph metrics", outline.Bounds)
	}
}

// TestSFNTBackendCubicToleranceOption checks that WithCubicTolerance is
// accepted at both a fine and a coarse setting and that the coarse one
// never produces more quadratics than the fine one. Go Regular is a glyf
// (quadratic-only) font, so 'S' has no cubic segments here and both
// sources decompose it into the same curves.
func TestSFNTBackendCubicToleranceOption(t *testing.T) {
	fine, err := NewFontSource(goregular.TTF, WithCubicTolerance(0.1))
	if err != nil {
		t.Fatalf("NewFontSource(fine): %v", err)
	}
	coarse, err := NewFontSource(goregular.TTF, WithCubicTolerance(50))
	if err != nil {
		t.Fatalf("NewFontSource(coarse): %v", err)
	}

	upm := float64(fine.Backend().UnitsPerEm())
	fineOutline, err := fine.Face(upm).Outline('S')
	if err != nil {
		t.Fatalf("Outline('S') fine: %v", err)
	}
	coarseOutline, err := coarse.Face(upm).Outline('S')
	if err != nil {
		t.Fatalf("Outline('S') coarse: %v", err)
	}

	fineCount, coarseCount := 0, 0
	for _, c := range fineOutline.Contours {
		fineCount += len(c)
	}
	for _, c := range coarseOutline.Contours {
		coarseCount += len(c)
	}
	if coarseCount > fineCount {
		t.Errorf("coarse tolerance produced %d curves, fine tolerance produced %d; coarse should never exceed fine", coarseCount, fineCount)
	}
}
