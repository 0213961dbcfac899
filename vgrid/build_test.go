package vgrid

import (
	"testing"

	"github.com/gogpu/vgtext/curve"
)

// rectangleCurves returns the four straight-edge quadratics of a closed
// axis-aligned rectangle, traced clockwise.
func rectangleCurves(minX, minY, maxX, maxY float64) []curve.Bezier2 {
	corners := []curve.Point{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
	var cs []curve.Bezier2
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		cs = append(cs, curve.Bezier2{E0: a, C: a.Lerp(b, 0.5), E1: b})
	}
	return cs
}

func TestBuildVGridRectangleInteriorAndExterior(t *testing.T) {
	cs := rectangleCurves(5, 5, 15, 15)
	grid, err := BuildVGrid(cs, GlyphBox{Width: 20, Height: 20})
	if err != nil {
		t.Fatalf("BuildVGrid: %v", err)
	}

	// Cell (0,0) is entirely outside the rectangle and should carry no
	// curves, midInside = false.
	outside := grid.At(0, 0)
	if outside.MidInside {
		t.Error("corner cell expected to be outside")
	}
	if outside.Slots != [4]uint8{0, 1, 0, 0} {
		t.Errorf("outside empty cell slots = %v, want [0,1,0,0]", outside.Slots)
	}

	// Cell (10,10) (grid units) sits at box coordinate [10,11)x[10,11),
	// well inside the [5,15] rectangle interior, carrying no curves.
	inside := grid.At(10, 10)
	if !inside.MidInside {
		t.Error("center cell expected to be inside")
	}
	if inside.Slots != [4]uint8{1, 0, 0, 0} {
		t.Errorf("inside empty cell slots = %v, want [1,0,0,0]", inside.Slots)
	}
}

func TestBuildVGridBoundaryCellsCarryCurves(t *testing.T) {
	cs := rectangleCurves(0, 0, 20, 20)
	grid, err := BuildVGrid(cs, GlyphBox{Width: 20, Height: 20})
	if err != nil {
		t.Fatalf("BuildVGrid: %v", err)
	}

	// Every cell along the top edge must list at least one curve slot.
	for x := 0; x < GridSize; x++ {
		cell := grid.At(x, 0)
		if cell.Slots[0] < 2 {
			t.Errorf("top-edge cell (%d,0) has no curve slots: %v", x, cell.Slots)
		}
	}
}

func TestBuildVGridTooManyCurvesInCell(t *testing.T) {
	// Five distinct curves all passing through the same single cell.
	var cs []curve.Bezier2
	for i := 0; i < 5; i++ {
		y := 1.0 + float64(i)*0.1
		cs = append(cs, curve.Bezier2{
			E0: curve.Point{X: 0.5, Y: y},
			C:  curve.Point{X: 1.0, Y: y},
			E1: curve.Point{X: 1.5, Y: y},
		})
	}

	_, err := BuildVGrid(cs, GlyphBox{Width: 20, Height: 20})
	if err == nil {
		t.Fatal("expected TooManyCurvesInCell")
	}
	var be *BuildError
	if be, _ = err.(*BuildError); be == nil || be.Kind != KindTooManyCurvesInCell {
		t.Errorf("got %v, want a KindTooManyCurvesInCell BuildError", err)
	}
}

func TestBuildVGridGridCoverage(t *testing.T) {
	cs := rectangleCurves(3, 3, 17, 17)
	grid, err := BuildVGrid(cs, GlyphBox{Width: 20, Height: 20})
	if err != nil {
		t.Fatalf("BuildVGrid: %v", err)
	}

	boxRect := curve.Rect{MinX: 0, MinY: 0, MaxX: 20, MaxY: 20}
	for ci, c := range cs {
		for y := 0; y < GridSize; y++ {
			for x := 0; x < GridSize; x++ {
				cellRect := boxRect.Cell(x, y, GridSize, GridSize)
				if !curveIntersectsCell(c, cellRect) {
					continue
				}
				cell := grid.At(x, y)
				found := false
				for _, s := range cell.Slots {
					if int(s) == ci+2 {
						found = true
					}
				}
				if !found {
					t.Errorf("cell (%d,%d) missing curve %d in slots %v", x, y, ci, cell.Slots)
				}
			}
		}
	}
}
