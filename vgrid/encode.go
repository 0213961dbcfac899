package vgrid

import (
	"math"

	"github.com/gogpu/vgtext/curve"
)

// packTexel16 packs two 16-bit unsigned values into RGBA byte order: the
// low byte of x in R, high byte of x in G, low byte of y in B, high
// byte of y in A. This is the shared layout for both header texels
// (raw grid coordinates) and curve-point texels (quantized coordinates).
func packTexel16(x, y uint16) [4]byte {
	return [4]byte{byte(x), byte(x >> 8), byte(y), byte(y >> 8)}
}

// unpackTexel16 is the inverse of packTexel16.
func unpackTexel16(t [4]byte) (x, y uint16) {
	x = uint16(t[0]) | uint16(t[1])<<8
	y = uint16(t[2]) | uint16(t[3])<<8
	return
}

// encodeHeader packs a glyph's grid position and dimensions into its two
// header texels, per §4.5: (gridX, gridY) then (W, H), each a raw
// 16-bit value (not quantized against the glyph's box).
func encodeHeader(gridX, gridY, w, h int) (t0, t1 [4]byte) {
	t0 = packTexel16(uint16(gridX), uint16(gridY))
	t1 = packTexel16(uint16(w), uint16(h))
	return
}

// decodeHeader is the inverse of encodeHeader.
func decodeHeader(t0, t1 [4]byte) (gridX, gridY, w, h int) {
	x0, y0 := unpackTexel16(t0)
	x1, y1 := unpackTexel16(t1)
	return int(x0), int(y0), int(x1), int(y1)
}

// encodeCoord quantizes a glyph-unit coordinate to a 16-bit unsigned
// value relative to the glyph's box size along that axis:
// round(coord * UINT16_MAX / size).
func encodeCoord(v, size float64) uint16 {
	if size <= 0 {
		return 0
	}
	scaled := math.Round(v * 65535 / size)
	if scaled < 0 {
		scaled = 0
	}
	if scaled > 65535 {
		scaled = 65535
	}
	return uint16(scaled)
}

// decodeCoord is the inverse of encodeCoord, up to quantization error.
func decodeCoord(v uint16, size float64) float64 {
	return float64(v) * size / 65535
}

// encodePoint quantizes a 2D point against box and packs it into one
// texel.
func encodePoint(p curve.Point, box GlyphBox) [4]byte {
	return packTexel16(encodeCoord(p.X, box.Width), encodeCoord(p.Y, box.Height))
}

// decodePoint is the inverse of encodePoint, up to quantization error.
func decodePoint(t [4]byte, box GlyphBox) curve.Point {
	x, y := unpackTexel16(t)
	return curve.Point{X: decodeCoord(x, box.Width), Y: decodeCoord(y, box.Height)}
}
