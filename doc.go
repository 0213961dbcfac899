// Package vgtext prepares glyph outlines for analytic GPU rendering.
//
// # Overview
//
// vgtext converts a font's TrueType/CFF glyph outlines into quadratic
// Bezier curves, indexes each glyph's curves into a fixed 20x20 spatial
// grid (a VGrid), and packs the result into CPU-backed atlas buffers
// that an external fragment shader samples to rasterize text without
// ever touching a bitmap. This module prepares data; it never
// rasterizes, shapes text, or lays out runs.
//
// # Quick start
//
//	source, err := font.NewFontSourceFromFile("NotoSans-Regular.ttf")
//	mgr := vgtext.NewManager(device)
//	rec, err := mgr.Glyph(source, 'A')
//	mgr.SyncAtlases(queue)
//
// # Architecture
//
//   - font: loads TrueType/OpenType fonts and extracts quadratic-curve
//     glyph outlines behind a backend-agnostic interface.
//   - curve: the Bezier2/Point/Rect geometry and cubic-to-quadratic
//     approximation shared by font and vgrid.
//   - vgrid: builds each glyph's VGrid, packs it and its curves into
//     atlas groups, and caches the result by (font, codepoint).
//   - gpuupload: uploads dirty atlas groups to the GPU.
//   - vgtext (this package): the Manager type tying the above together.
package vgtext
