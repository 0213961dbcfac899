package gpuupload

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/vgtext/vgrid"
)

const atlasSize = uint32(vgrid.GridAtlasSize)

// Queue is the subset of hal.Queue that Sync needs to upload bytes.
type Queue interface {
	WriteBuffer(hal.Buffer, uint64, []byte)
	WriteTexture(*hal.ImageCopyTexture, []byte, *hal.ImageDataLayout, *hal.Extent3D)
}

// Sync uploads every atlas group in cache whose Uploaded flag is false.
// A group's buffer and texture are created the first time it is seen
// and reused on every later sync; only the WriteBuffer/WriteTexture
// calls repeat. Groups that are already clean are skipped entirely.
//
// On success, every group Sync touched has Uploaded set back to true.
func Sync(queue Queue, cache *vgrid.Cache, res *Resources) error {
	for idx, group := range cache.Groups() {
		if group.Uploaded {
			continue
		}

		if err := res.ensure(idx, len(group.GlyphData)); err != nil {
			return fmt.Errorf("gpuupload: group %d: %w", idx, err)
		}

		queue.WriteBuffer(res.buffers[idx], 0, group.GlyphData)

		queue.WriteTexture(
			&hal.ImageCopyTexture{
				Texture:  res.textures[idx],
				MipLevel: 0,
			},
			group.GridAtlas,
			&hal.ImageDataLayout{
				Offset:       0,
				BytesPerRow:  atlasSize * 4,
				RowsPerImage: atlasSize,
			},
			&hal.Extent3D{Width: atlasSize, Height: atlasSize, DepthOrArrayLayers: 1},
		)

		group.Uploaded = true
	}

	return nil
}
