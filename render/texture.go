// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"sync"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// TextureView is a view into a texture that can be used as a render pass
// attachment.
//
// Backends accept the view types they know how to bind: the software
// backend accepts *PixmapView and *DepthView, the wgpu backend accepts
// views wrapping a HAL texture view.
type TextureView interface {
	// Width returns the view width in pixels.
	Width() uint32

	// Height returns the view height in pixels.
	Height() uint32

	// Format returns the pixel format of the view.
	Format() gputypes.TextureFormat
}

// PixmapView is a CPU-backed color texture view using *image.RGBA.
//
// It is the color attachment type understood by the software backend,
// and is also handy in tests because its final contents can be inspected.
//
// Example:
//
//	view := render.NewPixmapView(800, 600)
//	// ... record and submit a clear pass ...
//	img := view.Image()
type PixmapView struct {
	mu  sync.RWMutex
	img *image.RGBA
}

// NewPixmapView creates a new CPU-backed color view.
func NewPixmapView(width, height int) *PixmapView {
	return &PixmapView{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewPixmapViewFromImage wraps an existing *image.RGBA as a view.
// The image is used directly without copying.
func NewPixmapViewFromImage(img *image.RGBA) *PixmapView {
	return &PixmapView{img: img}
}

// Width returns the view width in pixels.
func (v *PixmapView) Width() uint32 {
	//nolint:gosec // G115: image bounds are never negative
	return uint32(v.img.Bounds().Dx())
}

// Height returns the view height in pixels.
func (v *PixmapView) Height() uint32 {
	//nolint:gosec // G115: image bounds are never negative
	return uint32(v.img.Bounds().Dy())
}

// Format returns the pixel format (RGBA8).
func (v *PixmapView) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the view.
func (v *PixmapView) Image() *image.RGBA {
	return v.img
}

// Clear fills the entire view with c.
func (v *PixmapView) Clear(c color.Color) {
	v.mu.Lock()
	defer v.mu.Unlock()
	draw.Draw(v.img, v.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// At returns the color of the pixel at (x, y).
func (v *PixmapView) At(x, y int) color.RGBA {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.img.RGBAAt(x, y)
}

// Ensure PixmapView implements TextureView.
var _ TextureView = (*PixmapView)(nil)

// DepthView is a CPU-backed depth/stencil view.
type DepthView struct {
	mu      sync.RWMutex
	width   int
	height  int
	depth   []float32
	stencil []uint8
}

// NewDepthView creates a depth/stencil view with every depth value at 1.0.
func NewDepthView(width, height int) *DepthView {
	v := &DepthView{
		width:   width,
		height:  height,
		depth:   make([]float32, width*height),
		stencil: make([]uint8, width*height),
	}
	for i := range v.depth {
		v.depth[i] = 1
	}
	return v
}

// Width returns the view width in pixels.
func (v *DepthView) Width() uint32 {
	//nolint:gosec // G115: dimensions are never negative
	return uint32(v.width)
}

// Height returns the view height in pixels.
func (v *DepthView) Height() uint32 {
	//nolint:gosec // G115: dimensions are never negative
	return uint32(v.height)
}

// Format returns the depth/stencil format.
func (v *DepthView) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatDepth24PlusStencil8
}

// ClearDepth sets every depth value to d. The stencil aspect is untouched.
func (v *DepthView) ClearDepth(d float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.depth {
		v.depth[i] = d
	}
}

// ClearStencil sets every stencil value to s.
func (v *DepthView) ClearStencil(s uint8) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.stencil {
		v.stencil[i] = s
	}
}

// DepthAt returns the depth value at (x, y).
func (v *DepthView) DepthAt(x, y int) float32 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.depth[y*v.width+x]
}

// StencilAt returns the stencil value at (x, y).
func (v *DepthView) StencilAt(x, y int) uint8 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.stencil[y*v.width+x]
}

// Ensure DepthView implements TextureView.
var _ TextureView = (*DepthView)(nil)
