// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

// View is a draw viewpoint extracted for the current frame, typically one
// per active camera.
type View struct {
	// Label is a debug name used in logs and pass labels.
	Label string

	// Order is the camera order. Views with a lower order are drawn first.
	Order int

	// Color is the view's color attachment. It is always present.
	Color TextureView

	// Depth is the view's depth/stencil attachment, or nil.
	Depth TextureView

	// Destination is the physical output the view renders to, or nil when
	// the output is unknown to the render pipeline.
	Destination *Destination
}

// HasDestination reports whether v is associated with a Destination.
func (v *View) HasDestination() bool {
	return v.Destination != nil
}
