// Package font loads font files and extracts glyph outlines as sequences
// of quadratic Bezier contours, ready for the vgrid package to spatially
// index.
//
// A FontSource owns the parsed font data and picks a Backend (an sfnt-based
// backend using golang.org/x/image/font/sfnt, or a truetype backend using
// github.com/goki/freetype/truetype that walks raw glyf on/off-curve
// points directly). Backend is a small capability set, not a class
// hierarchy: anything that can report a glyph's contours, bounds, and
// advance can be plugged in without touching Face or FontSource.
package font
