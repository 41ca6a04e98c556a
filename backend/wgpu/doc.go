// Package wgpu provides a GPU command recording backend using gogpu/wgpu.
//
// The backend translates render.RenderPassDescriptor values into
// hal.RenderPassDescriptor values and records them into a HAL command
// encoder. It supports Vulkan, Metal and DX12 through the gogpu/wgpu Pure Go
// WebGPU implementation.
//
// # Device Sharing
//
// The backend receives its device from the host application (for example
// gogpu.App) through gpucontext.DeviceProvider; the provider must also
// expose HalDevice() and HalQueue():
//
//	wgpu.Register(app.DeviceProvider())
//	b, err := backend.InitDefault() // selects wgpu
//
// # Attachments
//
// Attachment views must implement RawView. Wrap surface and texture views
// obtained from HAL with NewTextureView before handing them to the render
// pipeline.
//
// # Build Tags
//
// Build with -tags nogpu to exclude this package from GPU-less builds.
package wgpu
