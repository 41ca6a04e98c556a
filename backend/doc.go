// Package backend provides a pluggable command recording backend abstraction.
//
// A backend creates one FrameEncoder per frame. The render graph records
// render passes into it and then submits it, or discards it when a node
// fails so that a partially recorded frame never reaches the GPU.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The software backend is automatically registered on import:
//
//	import _ "github.com/gogpu/clearpass/backend"
//
// The wgpu backend needs a GPU device from the host application and is
// registered explicitly:
//
//	wgpu.Register(provider) // provider implements gpucontext.DeviceProvider
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	// Get the default (best available) backend
//	b := backend.Default()
//
//	// Or request a specific backend
//	b := backend.Get(backend.BackendSoftware)
//
// # Usage
//
//	b := backend.Default()
//	if err := b.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	enc, err := b.NewFrameEncoder("frame")
//	// record passes ...
//	err = enc.Submit()
package backend
