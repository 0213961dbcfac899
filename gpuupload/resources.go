package gpuupload

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Device is the subset of hal.Device that Sync needs to create and
// tear down the GPU objects backing an atlas group.
type Device interface {
	CreateBuffer(*hal.BufferDescriptor) (hal.Buffer, error)
	DestroyBuffer(hal.Buffer)
	CreateTexture(*hal.TextureDescriptor) (hal.Texture, error)
	CreateTextureView(hal.Texture, *hal.TextureViewDescriptor) (hal.TextureView, error)
	DestroyTexture(hal.Texture)
	DestroyTextureView(hal.TextureView)
}

// Resources tracks the GPU buffer and texture backing each atlas group
// across repeated Sync calls, so a group's objects are created once and
// merely rewritten as its CPU bytes change.
type Resources struct {
	device Device

	buffers  []hal.Buffer
	textures []hal.Texture
	views    []hal.TextureView
}

// NewResources creates an upload target bound to device. Sync never
// creates GPU objects on a device other than this one.
func NewResources(device Device) *Resources {
	return &Resources{device: device}
}

// Close destroys every GPU buffer and texture this Resources has
// created, in the teacher's defer-and-nil style.
func (r *Resources) Close() {
	for _, v := range r.views {
		if v != nil {
			r.device.DestroyTextureView(v)
		}
	}
	r.views = nil

	for _, t := range r.textures {
		if t != nil {
			r.device.DestroyTexture(t)
		}
	}
	r.textures = nil

	for _, b := range r.buffers {
		if b != nil {
			r.device.DestroyBuffer(b)
		}
	}
	r.buffers = nil
}

// TextureView returns the grid atlas view for group idx, or nil if idx
// has never been synced.
func (r *Resources) TextureView(idx int) hal.TextureView {
	if idx < 0 || idx >= len(r.views) {
		return nil
	}
	return r.views[idx]
}

// Buffer returns the curve-data buffer for group idx, or nil if idx has
// never been synced.
func (r *Resources) Buffer(idx int) hal.Buffer {
	if idx < 0 || idx >= len(r.buffers) {
		return nil
	}
	return r.buffers[idx]
}

func (r *Resources) ensure(idx int, glyphDataSize int) error {
	for len(r.buffers) <= idx {
		r.buffers = append(r.buffers, nil)
		r.textures = append(r.textures, nil)
		r.views = append(r.views, nil)
	}

	if r.buffers[idx] == nil {
		buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
			Label: fmt.Sprintf("vgtext_glyph_data_%d", idx),
			Size:  uint64(glyphDataSize),
			Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("create glyph data buffer %d: %w", idx, err)
		}
		r.buffers[idx] = buf
	}

	if r.textures[idx] == nil {
		tex, err := r.device.CreateTexture(&hal.TextureDescriptor{
			Label:         fmt.Sprintf("vgtext_grid_atlas_%d", idx),
			Size:          hal.Extent3D{Width: atlasSize, Height: atlasSize, DepthOrArrayLayers: 1},
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        gputypes.TextureFormatRGBA8Unorm,
			Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("create grid atlas texture %d: %w", idx, err)
		}
		r.textures[idx] = tex

		view, err := r.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
			Label:         fmt.Sprintf("vgtext_grid_atlas_%d_view", idx),
			Format:        gputypes.TextureFormatRGBA8Unorm,
			Dimension:     gputypes.TextureViewDimension2D,
			Aspect:        gputypes.TextureAspectAll,
			MipLevelCount: 1,
		})
		if err != nil {
			return fmt.Errorf("create grid atlas texture view %d: %w", idx, err)
		}
		r.views[idx] = view
	}

	return nil
}
