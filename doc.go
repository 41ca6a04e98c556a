// Package clearpass provides the clear pass of a render graph.
//
// # Overview
//
// Before anything is drawn in a frame, every render destination that will
// be presented or sampled must be cleared exactly once. ClearPassNode does
// this in two steps:
//
//   - every view clears its color attachment, and its depth attachment if
//     it has one, with the override color of its destination or the
//     default color; the destinations of the views are marked touched;
//   - every destination with an override color, and every live window, that
//     no view touched is resolved to a texture view and cleared with its
//     color. Presenting a surface that received no render pass is a fault
//     on several backends, so idle windows are always cleared.
//
// # Quick Start
//
//	cc := clearpass.NewClearColor()
//	cc.Default = clearpass.Black
//	cc.Set(render.WindowDestination(1), clearpass.Red)
//
//	g := graph.New()
//	_ = g.AddNode(clearpass.DefaultLabel, clearpass.NewClearPassNode())
//
//	w := graph.NewWorld()
//	graph.InsertResource(w, cc)
//	w.Views = views
//	w.Windows = windows
//	w.Resolver = render.Sources{Windows: windows, Images: images}
//
//	b, _ := backend.InitDefault()
//	err := graph.RunFrame(ctx, g, b, w)
//
// # Shared destinations
//
// Views are processed by ascending Order, ties in input order. When several
// views render to the same destination, only the first one clears the
// destination's color; the others clear their own depth attachments only.
// The clear color depends on the destination alone, so views sharing a
// destination always agree on it.
//
// Views without a destination are cleared with the default color and do
// not take part in this de-duplication.
//
// # Errors
//
// A world without a *ClearColor resource fails with ErrConfigMissing; use
// graph.Graph.Validate to detect this at setup. A destination that must be
// cleared but cannot be resolved fails the frame with a
// *DestinationUnresolvedError. Resolution happens before any pass is
// recorded, and graph.RunFrame discards the frame instead of submitting it.
//
// # Sub-packages
//
//   - render: destinations, texture views, render-pass descriptors, resolvers
//   - graph: render graph executor and per-frame world
//   - backend: software and wgpu command backends
//   - config: file and environment configuration
package clearpass
