// Package vgrid builds the spatial index and atlas packing a glyph needs
// for analytic GPU rendering: given a flat list of quadratic curves and a
// glyph's em-box, it partitions the box into a fixed grid, records which
// curves touch each cell, and packs the result into two CPU-backed atlas
// buffers with a cache keyed by (font, codepoint).
package vgrid
