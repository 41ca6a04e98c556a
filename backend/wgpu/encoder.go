//go:build !nogpu

package wgpu

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/clearpass/backend"
	"github.com/gogpu/clearpass/render"
)

// ErrNotHALView is returned when an attachment view does not wrap a HAL view.
var ErrNotHALView = errors.New("wgpu: attachment view does not wrap a hal.TextureView")

// RawView is implemented by texture views backed by a HAL texture view.
type RawView interface {
	render.TextureView
	Raw() hal.TextureView
}

// TextureView wraps a hal.TextureView as a render.TextureView.
type TextureView struct {
	raw    hal.TextureView
	width  uint32
	height uint32
	format gputypes.TextureFormat
}

// NewTextureView wraps raw. The size and format describe the underlying
// texture; HAL views do not report them.
func NewTextureView(raw hal.TextureView, width, height uint32, format gputypes.TextureFormat) *TextureView {
	return &TextureView{raw: raw, width: width, height: height, format: format}
}

// Width returns the view width in pixels.
func (v *TextureView) Width() uint32 { return v.width }

// Height returns the view height in pixels.
func (v *TextureView) Height() uint32 { return v.height }

// Format returns the view format.
func (v *TextureView) Format() gputypes.TextureFormat { return v.format }

// Raw returns the wrapped HAL view.
func (v *TextureView) Raw() hal.TextureView { return v.raw }

// Ensure TextureView implements RawView.
var _ RawView = (*TextureView)(nil)

// frameEncoder records into a hal.CommandEncoder.
type frameEncoder struct {
	raw      hal.CommandEncoder
	device   hal.Device
	queue    hal.Queue
	label    string
	timeout  time.Duration
	active   bool
	finished bool
}

func (e *frameEncoder) BeginRenderPass(desc *render.RenderPassDescriptor) (render.RenderPass, error) {
	if e.finished {
		return nil, backend.ErrEncoderFinished
	}
	if e.active {
		return nil, backend.ErrPassInProgress
	}
	halDesc, err := toHALDescriptor(desc)
	if err != nil {
		return nil, err
	}

	rp := e.raw.BeginRenderPass(halDesc)
	e.active = true
	return &renderPass{raw: rp, encoder: e}, nil
}

func (e *frameEncoder) Submit() error {
	if e.finished {
		return backend.ErrEncoderFinished
	}
	if e.active {
		return backend.ErrPassInProgress
	}
	e.finished = true

	cmdBuf, err := e.raw.EndEncoding()
	if err != nil {
		return fmt.Errorf("wgpu: end encoding: %w", err)
	}
	defer e.device.FreeCommandBuffer(cmdBuf)

	fence, err := e.device.CreateFence()
	if err != nil {
		return fmt.Errorf("wgpu: create fence: %w", err)
	}
	defer e.device.DestroyFence(fence)

	if err := e.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("wgpu: submit: %w", err)
	}
	ok, err := e.device.Wait(fence, 1, e.timeout)
	if err != nil || !ok {
		return fmt.Errorf("wgpu: wait for GPU: ok=%v err=%w", ok, err)
	}

	backend.Logger().Debug("wgpu encoder submitted", "encoder", e.label)
	return nil
}

func (e *frameEncoder) Discard() {
	if e.finished {
		return
	}
	e.finished = true
	e.raw.DiscardEncoding()
	backend.Logger().Debug("wgpu encoder discarded", "encoder", e.label)
}

type renderPass struct {
	raw     hal.RenderPassEncoder
	encoder *frameEncoder
	ended   bool
}

func (p *renderPass) End() {
	if p.ended {
		return
	}
	p.ended = true
	p.raw.End()
	p.encoder.active = false
}

// toHALDescriptor converts a render pass descriptor to its HAL form.
// Read-only aspects are expressed as load/store so their contents survive.
func toHALDescriptor(desc *render.RenderPassDescriptor) (*hal.RenderPassDescriptor, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	out := &hal.RenderPassDescriptor{Label: desc.Label}
	for i, ca := range desc.ColorAttachments {
		view, err := rawView(ca.View)
		if err != nil {
			return nil, fmt.Errorf("%q: color attachment %d: %w", desc.Label, i, err)
		}
		halCA := hal.RenderPassColorAttachment{
			View:       view,
			LoadOp:     ca.LoadOp,
			StoreOp:    ca.StoreOp,
			ClearValue: ca.ClearValue,
		}
		if ca.ResolveTarget != nil {
			resolve, err := rawView(ca.ResolveTarget)
			if err != nil {
				return nil, fmt.Errorf("%q: resolve target %d: %w", desc.Label, i, err)
			}
			halCA.ResolveTarget = resolve
		}
		out.ColorAttachments = append(out.ColorAttachments, halCA)
	}

	if ds := desc.DepthStencilAttachment; ds != nil {
		view, err := rawView(ds.View)
		if err != nil {
			return nil, fmt.Errorf("%q: depth/stencil attachment: %w", desc.Label, err)
		}
		halDS := &hal.RenderPassDepthStencilAttachment{
			View:              view,
			DepthLoadOp:       ds.DepthLoadOp,
			DepthStoreOp:      ds.DepthStoreOp,
			DepthClearValue:   ds.DepthClearValue,
			StencilLoadOp:     ds.StencilLoadOp,
			StencilStoreOp:    ds.StencilStoreOp,
			StencilClearValue: ds.StencilClearValue,
		}
		if ds.DepthReadOnly {
			halDS.DepthLoadOp = gputypes.LoadOpLoad
			halDS.DepthStoreOp = gputypes.StoreOpStore
		}
		if ds.StencilReadOnly {
			halDS.StencilLoadOp = gputypes.LoadOpLoad
			halDS.StencilStoreOp = gputypes.StoreOpStore
		}
		out.DepthStencilAttachment = halDS
	}
	return out, nil
}

func rawView(v render.TextureView) (hal.TextureView, error) {
	rv, ok := v.(RawView)
	if !ok {
		return nil, fmt.Errorf("%T: %w", v, ErrNotHALView)
	}
	return rv.Raw(), nil
}
