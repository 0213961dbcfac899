package vgtext

import (
	"github.com/gogpu/vgtext/font"
	"github.com/gogpu/vgtext/gpuupload"
	"github.com/gogpu/vgtext/vgrid"
)

// Manager is the explicit, non-singleton owner of a glyph cache and its
// GPU-side resources. Create one per GPU device; it is not safe for
// concurrent use, matching the single-threaded, cooperative access
// model its underlying cache requires.
type Manager struct {
	cache *vgrid.Cache
	res   *gpuupload.Resources
}

// NewManager creates a Manager bound to device. device is used lazily:
// no GPU objects are created until SyncAtlases first sees a dirty atlas
// group.
func NewManager(device gpuupload.Device) *Manager {
	return &Manager{
		cache: vgrid.NewCache(),
		res:   gpuupload.NewResources(device),
	}
}

// Glyph returns source's VGrid/atlas record for r, building and caching
// it on a first lookup.
func (m *Manager) Glyph(source *font.FontSource, r rune) (*vgrid.GlyphRecord, error) {
	return m.cache.Get(source, r)
}

// Preload calls Glyph for every rune in runes, stopping at the first
// error. It is a convenience for warming the cache before a frame, not
// a layout operation.
func (m *Manager) Preload(source *font.FontSource, runes []rune) error {
	for _, r := range runes {
		if _, err := m.cache.Get(source, r); err != nil {
			return err
		}
	}
	return nil
}

// Dirty returns the indices of atlas groups that have changed since
// their last SyncAtlases and still need uploading.
func (m *Manager) Dirty() []int {
	var idx []int
	for i, group := range m.cache.Groups() {
		if !group.Uploaded {
			idx = append(idx, i)
		}
	}
	return idx
}

// MarkClean marks the atlas group at idx as uploaded without touching
// the GPU, for callers that manage their own upload path.
func (m *Manager) MarkClean(idx int) {
	groups := m.cache.Groups()
	if idx < 0 || idx >= len(groups) {
		return
	}
	groups[idx].Uploaded = true
}

// SyncAtlases uploads every dirty atlas group to the GPU via queue,
// creating or reusing this Manager's GPU buffers and textures as
// needed.
func (m *Manager) SyncAtlases(queue gpuupload.Queue) error {
	return gpuupload.Sync(queue, m.cache, m.res)
}

// Close destroys every GPU buffer and texture this Manager has created.
func (m *Manager) Close() {
	m.res.Close()
}
