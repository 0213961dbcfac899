package vgrid

import "github.com/gogpu/vgtext/curve"

const (
	glyphDataTexelCount = BezierAtlasSize * BezierAtlasSize
	gridTexelCount      = GridAtlasSize * GridAtlasSize
)

// AtlasGroup holds the CPU-backed buffers for one group of packed
// glyphs: glyphData (header-plus-curve texels) and gridAtlas (one texel
// per VGrid cell). Groups are append-only; once a glyph is packed, its
// bytes never move. Besides later inserts, the only state that changes
// is the Full flag and the Uploaded flag, which the GPU-upload side sets
// back to true after a flush.
type AtlasGroup struct {
	GlyphData []byte // glyphDataTexelCount texels, 4 bytes each
	GridAtlas []byte // gridTexelCount texels, 4 bytes each

	glyphDataOffset int // next free texel index into GlyphData
	nextGridX       int
	nextGridY       int

	Full     bool
	Uploaded bool
}

func newAtlasGroup() *AtlasGroup {
	return &AtlasGroup{
		GlyphData: make([]byte, glyphDataTexelCount*4),
		GridAtlas: make([]byte, gridTexelCount*4),
		Uploaded:  true,
	}
}

// packedGlyph bundles what the packer needs to lay out one glyph.
type packedGlyph struct {
	Curves []curve.Bezier2
	Grid   *VGrid
	Box    GlyphBox
}

// insert attempts to pack g into this group. It returns the glyph-data
// offset in texels and whether the glyph fit. A failed insert leaves
// the group's buffers and cursors exactly as they were: insert either
// writes nothing, or writes everything and commits both cursors.
func (a *AtlasGroup) insert(g packedGlyph) (offset int, ok bool) {
	if a.Full {
		return 0, false
	}

	texelsNeeded := 2 + 3*len(g.Curves)
	if a.glyphDataOffset+texelsNeeded > glyphDataTexelCount {
		return 0, false
	}

	gridX, gridY := a.nextGridX, a.nextGridY
	if gridY+GridMaxSize > GridAtlasSize {
		return 0, false
	}

	a.writeGrid(gridX, gridY, g.Grid)
	off := a.glyphDataOffset
	a.writeGlyphData(off, gridX, gridY, g.Box, g.Curves)

	a.glyphDataOffset += texelsNeeded
	a.advanceGridCursor()

	a.Uploaded = false
	return off, true
}

// advanceGridCursor steps (nextGridX, nextGridY) by one glyph-sized
// stride, wrapping to the next row when a row is exhausted, and marking
// the group full once no row has room left.
func (a *AtlasGroup) advanceGridCursor() {
	x := a.nextGridX + GridMaxSize
	y := a.nextGridY
	if x+GridMaxSize > GridAtlasSize {
		x = 0
		y += GridMaxSize
	}
	if y+GridMaxSize > GridAtlasSize {
		a.Full = true
		return
	}
	a.nextGridX, a.nextGridY = x, y
}

// writeGrid writes one texel per cell of grid into the gridAtlas region
// starting at (originX, originY), in RGBA = slot order.
func (a *AtlasGroup) writeGrid(originX, originY int, grid *VGrid) {
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			cell := grid.At(x, y)
			texelIdx := (originY+y)*GridAtlasSize + (originX + x)
			off := texelIdx * 4
			copy(a.GridAtlas[off:off+4], cell.Slots[:])
		}
	}
}

// writeGlyphData writes a glyph's two header texels followed by three
// texels per curve, starting at texel offset off.
func (a *AtlasGroup) writeGlyphData(off, gridX, gridY int, box GlyphBox, curves []curve.Bezier2) {
	t0, t1 := encodeHeader(gridX, gridY, GridSize, GridSize)
	a.putTexel(off, t0)
	a.putTexel(off+1, t1)

	for i, c := range curves {
		base := off + 2 + i*3
		a.putTexel(base, encodePoint(c.E0, box))
		a.putTexel(base+1, encodePoint(c.C, box))
		a.putTexel(base+2, encodePoint(c.E1, box))
	}
}

func (a *AtlasGroup) putTexel(texelIdx int, b [4]byte) {
	off := texelIdx * 4
	copy(a.GlyphData[off:off+4], b[:])
}

// Header decodes a glyph's grid origin and size from its glyph-data
// offset, the public counterpart of readHeader for tools that report on
// a cache's contents (such as a font-inspection CLI) rather than build
// one.
func (a *AtlasGroup) Header(offset int) (gridX, gridY, w, h int) {
	return a.readHeader(offset)
}

// OccupiedCells reports how many of a glyph's GridSize*GridSize cells
// carry at least one real curve index, by reading back the gridAtlas
// region written for the glyph whose header starts at offset.
func (a *AtlasGroup) OccupiedCells(offset int) int {
	gridX, gridY, w, h := a.readHeader(offset)
	count := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			texelIdx := (gridY+y)*GridAtlasSize + (gridX + x)
			off := texelIdx * 4
			if a.GridAtlas[off] >= 2 {
				count++
			}
		}
	}
	return count
}

// readHeader decodes a glyph's two header texels from an arbitrary
// offset, the inverse of writeGlyphData's header write. Exposed for
// testing the round-trip property against the shader contract.
func (a *AtlasGroup) readHeader(off int) (gridX, gridY, w, h int) {
	var t0, t1 [4]byte
	copy(t0[:], a.GlyphData[off*4:off*4+4])
	copy(t1[:], a.GlyphData[(off+1)*4:(off+1)*4+4])
	return decodeHeader(t0, t1)
}

// readCurve decodes the i-th curve (0-based) of a glyph whose data
// starts at headerOff, against the given box (needed to undo the
// UINT16_MAX-relative quantization).
func (a *AtlasGroup) readCurve(headerOff, i int, box GlyphBox) curve.Bezier2 {
	base := headerOff + 2 + i*3
	var t0, t1, t2 [4]byte
	copy(t0[:], a.GlyphData[base*4:base*4+4])
	copy(t1[:], a.GlyphData[(base+1)*4:(base+1)*4+4])
	copy(t2[:], a.GlyphData[(base+2)*4:(base+2)*4+4])
	return curve.Bezier2{
		E0: decodePoint(t0, box),
		C:  decodePoint(t1, box),
		E1: decodePoint(t2, box),
	}
}
