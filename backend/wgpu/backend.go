//go:build !nogpu

package wgpu

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/clearpass/backend"
)

// Backend errors.
var (
	// ErrNilProvider is returned when the backend is created without a provider.
	ErrNilProvider = errors.New("wgpu: device provider is nil")

	// ErrNoHALDevice is returned when the provider does not expose HAL types.
	ErrNoHALDevice = errors.New("wgpu: provider does not expose hal.Device and hal.Queue")
)

// DefaultSubmitTimeout bounds how long Submit waits for the GPU.
const DefaultSubmitTimeout = 5 * time.Second

// halProvider is implemented by device providers that give direct HAL access.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// Backend records render passes with gogpu/wgpu HAL command encoders.
//
// The backend RECEIVES its GPU device from the host application through a
// gpucontext.DeviceProvider; it never creates one. The provider must also
// implement HalDevice() any and HalQueue() any returning hal.Device and
// hal.Queue.
type Backend struct {
	mu          sync.RWMutex
	provider    gpucontext.DeviceProvider
	device      hal.Device
	queue       hal.Queue
	timeout     time.Duration
	initialized bool
}

// New creates a wgpu backend on a shared device. Call Init before use.
func New(provider gpucontext.DeviceProvider) *Backend {
	return &Backend{provider: provider, timeout: DefaultSubmitTimeout}
}

// Register registers a wgpu backend for provider under backend.BackendWGPU,
// making it the preferred backend of backend.Default.
func Register(provider gpucontext.DeviceProvider) {
	backend.Register(backend.BackendWGPU, func() backend.Backend {
		return New(provider)
	})
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendWGPU
}

// SetSubmitTimeout changes how long Submit waits for the GPU fence.
func (b *Backend) SetSubmitTimeout(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.timeout = d
}

// SurfaceFormat returns the provider's preferred surface format.
func (b *Backend) SurfaceFormat() gputypes.TextureFormat {
	if b.provider == nil {
		return gputypes.TextureFormatUndefined
	}
	return b.provider.SurfaceFormat()
}

// Init resolves the HAL device and queue from the provider.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if b.provider == nil {
		return ErrNilProvider
	}
	hp, ok := b.provider.(halProvider)
	if !ok {
		return ErrNoHALDevice
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return fmt.Errorf("%w: HalDevice is %T", ErrNoHALDevice, hp.HalDevice())
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("%w: HalQueue is %T", ErrNoHALDevice, hp.HalQueue())
	}

	b.device = device
	b.queue = queue
	b.initialized = true
	backend.Logger().Info("wgpu backend initialized", "surfaceFormat", b.provider.SurfaceFormat())
	return nil
}

// Close releases the backend's reference to the shared device.
// The device itself is owned by the provider and is not destroyed.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.device = nil
	b.queue = nil
	b.initialized = false
}

// NewFrameEncoder creates a HAL command encoder and begins encoding.
func (b *Backend) NewFrameEncoder(label string) (backend.FrameEncoder, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}

	raw, err := b.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: label,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create command encoder: %w", err)
	}
	if err := raw.BeginEncoding(label); err != nil {
		return nil, fmt.Errorf("wgpu: begin encoding: %w", err)
	}

	return &frameEncoder{
		raw:     raw,
		device:  b.device,
		queue:   b.queue,
		label:   label,
		timeout: b.timeout,
	}, nil
}

// Ensure Backend implements backend.Backend.
var _ backend.Backend = (*Backend)(nil)
