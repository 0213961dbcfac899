package vgrid

import (
	"math"

	"github.com/gogpu/vgtext/curve"
)

// BuildVGrid computes the spatial index for a glyph's flat curve list
// over its em-box: cell-curve incidence, per-cell capacity, the
// mid-inside ray cast, and the four-slot sentinel encoding.
//
// box must have non-negative, non-zero Width and Height; the caller
// (the glyph cache) is responsible for treating zero-curve glyphs as
// degenerate before ever calling this.
func BuildVGrid(curves []curve.Bezier2, box GlyphBox) (*VGrid, error) {
	grid := &VGrid{}
	boxRect := curve.Rect{MinX: 0, MinY: 0, MaxX: box.Width, MaxY: box.Height}

	var indices [GridSize * GridSize][]int

	sx := float64(GridSize) / box.Width
	sy := float64(GridSize) / box.Height

	for ci, c := range curves {
		// Candidate cells are every cell whose closed rectangle overlaps
		// the curve's bbox, including cells the curve only touches along
		// a shared edge, matching curveIntersectsCell's inclusive test.
		bb := c.Bounds()
		x0 := clampCell(int(math.Ceil(bb.MinX*sx)) - 1)
		x1 := clampCell(int(math.Floor(bb.MaxX * sx)))
		y0 := clampCell(int(math.Ceil(bb.MinY*sy)) - 1)
		y1 := clampCell(int(math.Floor(bb.MaxY * sy)))
		if x1 < x0 {
			x1 = x0
		}
		if y1 < y0 {
			y1 = y0
		}

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				cellRect := boxRect.Cell(x, y, GridSize, GridSize)
				if !curveIntersectsCell(c, cellRect) {
					continue
				}
				idx := y*GridSize + x
				if len(indices[idx]) >= MaxCurvesPerCell {
					return nil, newBuildError(KindTooManyCurvesInCell, ErrTooManyCurvesInCell)
				}
				indices[idx] = append(indices[idx], ci)
			}
		}
	}

	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			idx := y*GridSize + x
			cellRect := boxRect.Cell(x, y, GridSize, GridSize)
			center := curve.Point{
				X: (cellRect.MinX + cellRect.MaxX) / 2,
				Y: (cellRect.MinY + cellRect.MaxY) / 2,
			}
			midInside := rayCastInside(curves, center)

			cell := Cell{MidInside: midInside}
			list := indices[idx]
			for i, ci := range list {
				if ci+2 > math.MaxUint8 {
					return nil, newBuildError(KindBezierBudgetExceeded, ErrCurveIndexOverflow)
				}
				cell.Slots[i] = uint8(ci + 2)
			}
			fillSentinels(&cell, len(list), midInside)
			grid.Cells[idx] = cell
		}
	}

	return grid, nil
}

// clampCell clamps a grid coordinate to [0, GridSize-1].
func clampCell(v int) int {
	if v < 0 {
		return 0
	}
	if v > GridSize-1 {
		return GridSize - 1
	}
	return v
}

// curveIntersectsCell is the "finer test" from the VGrid build algorithm:
// a curve intersects a cell if either endpoint lies in the cell, or the
// curve crosses one of the cell's four edges within its own [0,1] span.
func curveIntersectsCell(c curve.Bezier2, cell curve.Rect) bool {
	if !c.IntersectsRect(cell) {
		return false
	}
	if inRect(cell, c.E0) || inRect(cell, c.E1) {
		return true
	}
	if crossesAt(c.SolveX(cell.MinX), func(p curve.Point) bool { return p.Y >= cell.MinY && p.Y <= cell.MaxY }, c) {
		return true
	}
	if crossesAt(c.SolveX(cell.MaxX), func(p curve.Point) bool { return p.Y >= cell.MinY && p.Y <= cell.MaxY }, c) {
		return true
	}
	if crossesAt(c.SolveY(cell.MinY), func(p curve.Point) bool { return p.X >= cell.MinX && p.X <= cell.MaxX }, c) {
		return true
	}
	if crossesAt(c.SolveY(cell.MaxY), func(p curve.Point) bool { return p.X >= cell.MinX && p.X <= cell.MaxX }, c) {
		return true
	}
	// A perfectly horizontal or vertical straight segment (a common
	// case: serif feet, stem edges) has a degenerate quadratic along
	// one axis, so SolveX/SolveY above can return no roots even when
	// the segment runs exactly along a cell's boundary. The bbox
	// overlap already confirmed above is exact for this case.
	bb := c.Bounds()
	if bb.Width() == 0 || bb.Height() == 0 {
		return true
	}
	return false
}

func inRect(r curve.Rect, p curve.Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

func crossesAt(ts []float64, inBand func(curve.Point) bool, c curve.Bezier2) bool {
	for _, t := range ts {
		if t < 0 || t > 1 {
			continue
		}
		if inBand(c.PointAt(t)) {
			return true
		}
	}
	return false
}

// rayCastInside casts a rightward ray from origin against the glyph's
// full curve list and applies the even-odd rule.
func rayCastInside(curves []curve.Bezier2, origin curve.Point) bool {
	count := 0
	for _, c := range curves {
		count += c.CrossesRightwardRay(origin)
	}
	return count%2 == 1
}

// fillSentinels fills a cell's slots beyond the `used` real curves with
// the ordered sentinel pair (1,0) if midInside, else (0,1), padding any
// further slots with 0. This reproduces both of §4.4's worked examples
// (zero curves, two curves) exactly; see the vgrid package's design
// notes for the odd-count (one or three real curves) interpretation.
func fillSentinels(cell *Cell, used int, midInside bool) {
	pair := emptySlotOutside
	if midInside {
		pair = emptySlotInside
	}
	first, second := pair[0], pair[1]
	for i := used; i < MaxCurvesPerCell; i++ {
		switch i - used {
		case 0:
			cell.Slots[i] = first
		case 1:
			cell.Slots[i] = second
		default:
			cell.Slots[i] = 0
		}
	}
}
