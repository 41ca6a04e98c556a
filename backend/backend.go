package backend

import (
	"errors"

	"github.com/gogpu/clearpass/render"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrEncoderFinished is returned when an encoder is used after Submit or Discard.
	ErrEncoderFinished = errors.New("backend: encoder already finished")

	// ErrPassInProgress is returned when a pass is begun, or the encoder is
	// submitted, while another pass has not been ended.
	ErrPassInProgress = errors.New("backend: render pass in progress")
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU-based software backend.
	BackendSoftware = "software"

	// BackendWGPU is the name of the GPU backend on gogpu/wgpu HAL.
	BackendWGPU = "wgpu"
)

// Backend is the interface for command recording backends.
// It abstracts the GPU API, allowing the render graph to run on real
// hardware through wgpu or on the CPU for tests and headless tools.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type Backend interface {
	// Name returns the backend identifier (e.g., "software", "wgpu").
	Name() string

	// Init initializes the backend.
	// This should be called before any encoder is created.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// NewFrameEncoder creates an encoder for one frame's commands.
	NewFrameEncoder(label string) (FrameEncoder, error)
}

// FrameEncoder records one frame of commands and then either submits or
// discards them.
//
// State machine:
//
//	Recording -> Submit()  -> Finished
//	Recording -> Discard() -> Finished
type FrameEncoder interface {
	render.CommandEncoder

	// Submit finishes recording and submits the commands for execution.
	Submit() error

	// Discard drops everything recorded so far. Nothing reaches the GPU.
	// Discard is a no-op on a finished encoder.
	Discard()
}
