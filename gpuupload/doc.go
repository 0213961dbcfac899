// Package gpuupload pushes a glyph cache's CPU-backed atlas groups onto
// the GPU: each group's curve data becomes a storage buffer, each
// group's grid becomes an RGBA8 texture. Groups that have not changed
// since their last upload are skipped.
package gpuupload
