// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render defines the frame-level rendering primitives shared by the
// clear pass, the render graph and the backends.
//
// # Destinations
//
// A Destination identifies a physical output: a window surface, an
// offscreen image or a manually registered texture view. Destinations are
// small comparable values and serve as deduplication keys within a frame.
//
// A Resolver maps a Destination to the TextureView it is rendered through
// this frame. Sources resolves against the Windows, Images and
// ManualTextureViews stores:
//
//	windows := render.NewWindows()
//	windows.Insert(render.Window{ID: 1, SwapChainView: view})
//
//	res := render.Sources{Windows: windows}
//	v, err := res.Resolve(render.WindowDestination(1))
//
// # Render Passes
//
// RenderPassDescriptor mirrors the WebGPU render pass descriptor and uses
// gputypes for load/store operations and clear values. A CommandEncoder
// begins passes; a pass begun and ended without draws is a pure clear.
//
// # CPU Views
//
// PixmapView and DepthView are CPU-backed views understood by the software
// backend. Their contents can be read back directly, which makes them the
// views of choice in tests.
//
// # Thread Safety
//
// The Windows, Images and ManualTextureViews stores are safe for concurrent
// use. Command encoders and render passes are NOT; they are owned by a
// single goroutine while a frame is recorded.
package render
