// Package curve provides the 2D geometry primitives used throughout the
// analytic glyph pipeline: points, quadratic Bezier curves, axis-aligned
// rectangles, and cubic-to-quadratic curve approximation.
//
// Everything downstream (outline extraction, VGrid construction, atlas
// texel encoding) is built on quadratic curves; TrueType glyf outlines are
// already quadratic, but CFF/PostScript-flavored outlines use cubics, so
// ApproximateCubic exists to bring both onto the same representation.
package curve
