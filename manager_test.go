package vgtext

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

type fakeBuffer struct{}
type fakeTexture struct{}
type fakeTextureView struct{}

func (*fakeBuffer) Destroy()              {}
func (*fakeBuffer) NativeHandle() uintptr { return 0 }

func (*fakeTexture) Destroy()                            {}
func (*fakeTexture) NativeHandle() uintptr               { return 0 }
func (*fakeTexture) CurrentUsage() gputypes.TextureUsage { return 0 }
func (*fakeTexture) AddPendingRef()                      {}
func (*fakeTexture) DecPendingRef()                      {}

func (*fakeTextureView) Destroy()              {}
func (*fakeTextureView) NativeHandle() uintptr { return 0 }

type fakeDevice struct {
	buffersCreated, texturesCreated     int
	buffersDestroyed, texturesDestroyed int
	viewsDestroyed                      int
}

func (d *fakeDevice) CreateBuffer(*hal.BufferDescriptor) (hal.Buffer, error) {
	d.buffersCreated++
	return &fakeBuffer{}, nil
}
func (d *fakeDevice) DestroyBuffer(hal.Buffer) { d.buffersDestroyed++ }

func (d *fakeDevice) CreateTexture(*hal.TextureDescriptor) (hal.Texture, error) {
	d.texturesCreated++
	return &fakeTexture{}, nil
}
func (d *fakeDevice) CreateTextureView(hal.Texture, *hal.TextureViewDescriptor) (hal.TextureView, error) {
	return &fakeTextureView{}, nil
}
func (d *fakeDevice) DestroyTexture(hal.Texture)         { d.texturesDestroyed++ }
func (d *fakeDevice) DestroyTextureView(hal.TextureView) { d.viewsDestroyed++ }

type fakeQueue struct {
	bufferWrites, textureWrites int
}

func (q *fakeQueue) WriteBuffer(hal.Buffer, uint64, []byte) { q.bufferWrites++ }
func (q *fakeQueue) WriteTexture(*hal.ImageCopyTexture, []byte, *hal.ImageDataLayout, *hal.Extent3D) {
	q.textureWrites++
}

func TestManagerDirtyReflectsFreshGroup(t *testing.T) {
	device := &fakeDevice{}
	mgr := NewManager(device)

	dirty := mgr.Dirty()
	if len(dirty) != 0 {
		t.Errorf("a freshly created cache's single group starts uploaded; Dirty() = %v, want empty", dirty)
	}

	mgr.cache.Groups()[0].Uploaded = false
	dirty = mgr.Dirty()
	if len(dirty) != 1 || dirty[0] != 0 {
		t.Errorf("Dirty() = %v, want [0]", dirty)
	}
}

func TestManagerMarkCleanWithoutGPU(t *testing.T) {
	device := &fakeDevice{}
	mgr := NewManager(device)
	mgr.cache.Groups()[0].Uploaded = false

	mgr.MarkClean(0)

	if len(mgr.Dirty()) != 0 {
		t.Error("MarkClean(0) should clear group 0 from Dirty()")
	}
	if device.buffersCreated != 0 || device.texturesCreated != 0 {
		t.Error("MarkClean must not touch the GPU")
	}
}

func TestManagerMarkCleanOutOfRangeIsNoop(t *testing.T) {
	device := &fakeDevice{}
	mgr := NewManager(device)
	mgr.MarkClean(99)
}

func TestManagerSyncAtlasesUploadsAndClosesCleanly(t *testing.T) {
	device := &fakeDevice{}
	queue := &fakeQueue{}
	mgr := NewManager(device)
	mgr.cache.Groups()[0].Uploaded = false

	if err := mgr.SyncAtlases(queue); err != nil {
		t.Fatalf("SyncAtlases: %v", err)
	}
	if len(mgr.Dirty()) != 0 {
		t.Error("SyncAtlases should leave no dirty groups on success")
	}
	if queue.bufferWrites != 1 || queue.textureWrites != 1 {
		t.Errorf("writes = (%d,%d), want (1,1)", queue.bufferWrites, queue.textureWrites)
	}

	mgr.Close()
	if device.buffersDestroyed != 1 || device.texturesDestroyed != 1 {
		t.Errorf("Close should destroy the one buffer and texture created: destroyed=(%d,%d)", device.buffersDestroyed, device.texturesDestroyed)
	}
}
