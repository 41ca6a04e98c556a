//go:build !nogpu

package wgpu

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/clearpass/backend"
	"github.com/gogpu/clearpass/render"
)

// mockProvider implements gpucontext.DeviceProvider without HAL access.
type mockProvider struct {
	format gputypes.TextureFormat
}

func (m *mockProvider) Device() gpucontext.Device             { return nil }
func (m *mockProvider) Queue() gpucontext.Queue               { return nil }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return nil }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return m.format }

// badHALProvider exposes HAL accessors returning the wrong types.
type badHALProvider struct {
	mockProvider
}

func (badHALProvider) HalDevice() any { return "not a device" }
func (badHALProvider) HalQueue() any  { return nil }

func TestBackendInitErrors(t *testing.T) {
	tests := []struct {
		name     string
		provider gpucontext.DeviceProvider
		wantErr  error
	}{
		{"nil provider", nil, ErrNilProvider},
		{"no HAL access", &mockProvider{}, ErrNoHALDevice},
		{"wrong HAL types", &badHALProvider{}, ErrNoHALDevice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.provider)
			if err := b.Init(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Init() error = %v, want %v", err, tt.wantErr)
			}
			if _, err := b.NewFrameEncoder("frame"); !errors.Is(err, backend.ErrNotInitialized) {
				t.Errorf("NewFrameEncoder() error = %v, want ErrNotInitialized", err)
			}
		})
	}
}

func TestBackendNameAndFormat(t *testing.T) {
	b := New(&mockProvider{format: gputypes.TextureFormatBGRA8Unorm})
	if b.Name() != backend.BackendWGPU {
		t.Errorf("Name() = %q, want %q", b.Name(), backend.BackendWGPU)
	}
	if got := b.SurfaceFormat(); got != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("SurfaceFormat() = %v, want BGRA8Unorm", got)
	}
	if got := New(nil).SurfaceFormat(); got != gputypes.TextureFormatUndefined {
		t.Errorf("SurfaceFormat() without provider = %v, want Undefined", got)
	}
}

func TestRegister(t *testing.T) {
	Register(&mockProvider{})
	defer backend.Unregister(backend.BackendWGPU)

	b := backend.Get(backend.BackendWGPU)
	if b == nil || b.Name() != backend.BackendWGPU {
		t.Fatalf("Get(wgpu) = %v", b)
	}
	if b := backend.Default(); b.Name() != backend.BackendWGPU {
		t.Errorf("Default() = %q, want wgpu to take priority", b.Name())
	}
}

func TestToHALDescriptor(t *testing.T) {
	colorView := NewTextureView(nil, 64, 32, gputypes.TextureFormatBGRA8Unorm)
	depthView := NewTextureView(nil, 64, 32, gputypes.TextureFormatDepth24PlusStencil8)
	clear := gputypes.Color{R: 1, G: 0, B: 0, A: 1}

	desc := &render.RenderPassDescriptor{
		Label:                  "clear_pass",
		ColorAttachments:       []render.RenderPassColorAttachment{render.ClearColorAttachment(colorView, clear)},
		DepthStencilAttachment: render.ClearDepthAttachment(depthView, 0),
	}

	got, err := toHALDescriptor(desc)
	if err != nil {
		t.Fatalf("toHALDescriptor() error = %v", err)
	}
	if got.Label != "clear_pass" {
		t.Errorf("Label = %q", got.Label)
	}
	if len(got.ColorAttachments) != 1 {
		t.Fatalf("len(ColorAttachments) = %d, want 1", len(got.ColorAttachments))
	}
	ca := got.ColorAttachments[0]
	if ca.LoadOp != gputypes.LoadOpClear || ca.StoreOp != gputypes.StoreOpStore || ca.ClearValue != clear {
		t.Errorf("color attachment = %+v", ca)
	}

	ds := got.DepthStencilAttachment
	if ds == nil {
		t.Fatal("DepthStencilAttachment is nil")
	}
	if ds.DepthLoadOp != gputypes.LoadOpClear || ds.DepthClearValue != 0 {
		t.Errorf("depth ops = %v/%v, want Clear/0", ds.DepthLoadOp, ds.DepthClearValue)
	}
	if ds.StencilLoadOp != gputypes.LoadOpLoad || ds.StencilStoreOp != gputypes.StoreOpStore {
		t.Errorf("read-only stencil = %v/%v, want Load/Store", ds.StencilLoadOp, ds.StencilStoreOp)
	}
}

func TestToHALDescriptorRejectsCPUViews(t *testing.T) {
	desc := &render.RenderPassDescriptor{
		ColorAttachments: []render.RenderPassColorAttachment{
			render.ClearColorAttachment(render.NewPixmapView(1, 1), gputypes.Color{}),
		},
	}
	if _, err := toHALDescriptor(desc); !errors.Is(err, ErrNotHALView) {
		t.Errorf("toHALDescriptor() error = %v, want ErrNotHALView", err)
	}
	if _, err := toHALDescriptor(nil); !errors.Is(err, render.ErrNilDescriptor) {
		t.Errorf("toHALDescriptor(nil) error = %v, want ErrNilDescriptor", err)
	}
}
