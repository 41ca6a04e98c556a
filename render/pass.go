// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// Render pass errors.
var (
	// ErrNilDescriptor is returned when BeginRenderPass is called with nil.
	ErrNilDescriptor = errors.New("render: render pass descriptor is nil")

	// ErrNoAttachments is returned when a descriptor has neither color
	// attachments nor a depth/stencil attachment.
	ErrNoAttachments = errors.New("render: render pass has no attachments")

	// ErrNilView is returned when an attachment has no texture view.
	ErrNilView = errors.New("render: attachment view is nil")
)

// RenderPassDescriptor describes a render pass.
// This mirrors the WebGPU GPURenderPassDescriptor.
type RenderPassDescriptor struct {
	// Label is an optional debug name.
	Label string

	// ColorAttachments are the color render targets.
	ColorAttachments []RenderPassColorAttachment

	// DepthStencilAttachment is the depth/stencil target (optional).
	DepthStencilAttachment *RenderPassDepthStencilAttachment
}

// RenderPassColorAttachment describes a color attachment.
type RenderPassColorAttachment struct {
	// View is the texture view to render to.
	View TextureView

	// ResolveTarget is the MSAA resolve target (optional).
	ResolveTarget TextureView

	// LoadOp specifies what to do at pass start.
	LoadOp gputypes.LoadOp

	// StoreOp specifies what to do at pass end.
	StoreOp gputypes.StoreOp

	// ClearValue is the clear color (used if LoadOp is Clear).
	ClearValue gputypes.Color
}

// RenderPassDepthStencilAttachment describes a depth/stencil attachment.
type RenderPassDepthStencilAttachment struct {
	// View is the texture view to use.
	View TextureView

	// DepthLoadOp specifies what to do with depth at pass start.
	DepthLoadOp gputypes.LoadOp

	// DepthStoreOp specifies what to do with depth at pass end.
	DepthStoreOp gputypes.StoreOp

	// DepthClearValue is the depth clear value.
	DepthClearValue float32

	// DepthReadOnly makes the depth aspect read-only.
	DepthReadOnly bool

	// StencilLoadOp specifies what to do with stencil at pass start.
	StencilLoadOp gputypes.LoadOp

	// StencilStoreOp specifies what to do with stencil at pass end.
	StencilStoreOp gputypes.StoreOp

	// StencilClearValue is the stencil clear value.
	StencilClearValue uint32

	// StencilReadOnly makes the stencil aspect read-only.
	StencilReadOnly bool
}

// Validate checks the descriptor for missing views.
func (d *RenderPassDescriptor) Validate() error {
	if d == nil {
		return ErrNilDescriptor
	}
	if len(d.ColorAttachments) == 0 && d.DepthStencilAttachment == nil {
		return fmt.Errorf("%q: %w", d.Label, ErrNoAttachments)
	}
	for i, ca := range d.ColorAttachments {
		if ca.View == nil {
			return fmt.Errorf("%q: color attachment %d: %w", d.Label, i, ErrNilView)
		}
	}
	if d.DepthStencilAttachment != nil && d.DepthStencilAttachment.View == nil {
		return fmt.Errorf("%q: depth/stencil attachment: %w", d.Label, ErrNilView)
	}
	return nil
}

// CommandEncoder records GPU commands for one frame.
//
// CommandEncoder is NOT safe for concurrent use. The render graph owns the
// encoder exclusively while a node records into it.
type CommandEncoder interface {
	// BeginRenderPass starts a render pass described by desc.
	// The attachments' load operations run when the pass begins, so a pass
	// that is begun and ended without draws is a pure clear.
	BeginRenderPass(desc *RenderPassDescriptor) (RenderPass, error)
}

// RenderPass records commands within a render pass.
type RenderPass interface {
	// End completes the pass. The parent encoder may record again afterwards.
	End()
}

// ClearColorAttachment returns a color attachment that clears view to c and
// stores the result.
func ClearColorAttachment(view TextureView, c gputypes.Color) RenderPassColorAttachment {
	return RenderPassColorAttachment{
		View:       view,
		LoadOp:     gputypes.LoadOpClear,
		StoreOp:    gputypes.StoreOpStore,
		ClearValue: c,
	}
}

// ClearDepthAttachment returns a depth/stencil attachment that clears the
// depth aspect of view to depth and leaves the stencil aspect untouched.
func ClearDepthAttachment(view TextureView, depth float32) *RenderPassDepthStencilAttachment {
	return &RenderPassDepthStencilAttachment{
		View:            view,
		DepthLoadOp:     gputypes.LoadOpClear,
		DepthStoreOp:    gputypes.StoreOpStore,
		DepthClearValue: depth,
		StencilReadOnly: true,
	}
}
