package backend

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/clearpass/render"
)

// ErrUnsupportedView is returned when an attachment view is not a CPU view.
var ErrUnsupportedView = errors.New("backend: software backend requires *render.PixmapView or *render.DepthView")

// SoftwareBackend is a CPU-based command recording backend.
//
// Passes are recorded as descriptors and executed in order on Submit:
// color attachments must be *render.PixmapView, depth/stencil attachments
// must be *render.DepthView. Like a GPU queue, nothing recorded is visible
// in the views until Submit.
type SoftwareBackend struct {
	mu          sync.Mutex
	initialized bool
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() Backend {
		return &SoftwareBackend{}
	})
}

// NewSoftwareBackend creates a new software backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initialized = true
	return nil
}

// Close releases backend resources.
func (b *SoftwareBackend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initialized = false
}

// NewFrameEncoder creates a software encoder for one frame.
func (b *SoftwareBackend) NewFrameEncoder(label string) (FrameEncoder, error) {
	return b.NewSoftwareEncoder(label)
}

// NewSoftwareEncoder is NewFrameEncoder returning the concrete type, which
// exposes the recorded passes for inspection.
func (b *SoftwareBackend) NewSoftwareEncoder(label string) (*SoftwareEncoder, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	return &SoftwareEncoder{label: label}, nil
}

// Ensure SoftwareBackend implements Backend.
var _ Backend = (*SoftwareBackend)(nil)

// SoftwareEncoder records render passes and executes them on the CPU.
//
// SoftwareEncoder is NOT safe for concurrent use.
type SoftwareEncoder struct {
	label    string
	passes   []render.RenderPassDescriptor
	active   bool
	finished bool
}

// Label returns the debug label of the encoder.
func (e *SoftwareEncoder) Label() string {
	return e.label
}

// BeginRenderPass records a pass. The pass's load operations take effect
// when the encoder is submitted.
func (e *SoftwareEncoder) BeginRenderPass(desc *render.RenderPassDescriptor) (render.RenderPass, error) {
	if e.finished {
		return nil, ErrEncoderFinished
	}
	if e.active {
		return nil, ErrPassInProgress
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	if err := checkCPUViews(desc); err != nil {
		return nil, err
	}

	recorded := *desc
	recorded.ColorAttachments = slices.Clone(desc.ColorAttachments)
	if desc.DepthStencilAttachment != nil {
		ds := *desc.DepthStencilAttachment
		recorded.DepthStencilAttachment = &ds
	}
	e.passes = append(e.passes, recorded)
	e.active = true
	return &softwarePass{encoder: e}, nil
}

// Passes returns a copy of the passes recorded so far, in recording order.
func (e *SoftwareEncoder) Passes() []render.RenderPassDescriptor {
	return slices.Clone(e.passes)
}

// Submit executes every recorded pass in order.
func (e *SoftwareEncoder) Submit() error {
	if e.finished {
		return ErrEncoderFinished
	}
	if e.active {
		return ErrPassInProgress
	}
	e.finished = true

	for i := range e.passes {
		executePass(&e.passes[i])
	}
	logger().Debug("software encoder submitted", "encoder", e.label, "passes", len(e.passes))
	return nil
}

// Discard drops every recorded pass.
func (e *SoftwareEncoder) Discard() {
	if e.finished {
		return
	}
	logger().Debug("software encoder discarded", "encoder", e.label, "passes", len(e.passes))
	e.finished = true
	e.active = false
	e.passes = nil
}

// Ensure SoftwareEncoder implements FrameEncoder.
var _ FrameEncoder = (*SoftwareEncoder)(nil)

type softwarePass struct {
	encoder *SoftwareEncoder
	ended   bool
}

func (p *softwarePass) End() {
	if p.ended {
		return
	}
	p.ended = true
	p.encoder.active = false
}

func checkCPUViews(desc *render.RenderPassDescriptor) error {
	for i, ca := range desc.ColorAttachments {
		if _, ok := ca.View.(*render.PixmapView); !ok {
			return fmt.Errorf("%q: color attachment %d is %T: %w", desc.Label, i, ca.View, ErrUnsupportedView)
		}
		if ca.ResolveTarget == nil {
			continue
		}
		if _, ok := ca.ResolveTarget.(*render.PixmapView); !ok {
			return fmt.Errorf("%q: resolve target %d is %T: %w", desc.Label, i, ca.ResolveTarget, ErrUnsupportedView)
		}
	}
	if ds := desc.DepthStencilAttachment; ds != nil {
		if _, ok := ds.View.(*render.DepthView); !ok {
			return fmt.Errorf("%q: depth/stencil attachment is %T: %w", desc.Label, ds.View, ErrUnsupportedView)
		}
	}
	return nil
}

func executePass(desc *render.RenderPassDescriptor) {
	for _, ca := range desc.ColorAttachments {
		if ca.LoadOp != gputypes.LoadOpClear {
			continue
		}
		c := toRGBA(ca.ClearValue)
		ca.View.(*render.PixmapView).Clear(c)
		if ca.ResolveTarget != nil {
			ca.ResolveTarget.(*render.PixmapView).Clear(c)
		}
	}

	ds := desc.DepthStencilAttachment
	if ds == nil {
		return
	}
	view := ds.View.(*render.DepthView)
	if !ds.DepthReadOnly && ds.DepthLoadOp == gputypes.LoadOpClear {
		view.ClearDepth(ds.DepthClearValue)
	}
	if !ds.StencilReadOnly && ds.StencilLoadOp == gputypes.LoadOpClear {
		//nolint:gosec // G115: stencil is 8 bits wide
		view.ClearStencil(uint8(ds.StencilClearValue & 0xFF))
	}
}

// toRGBA converts a floating point clear value to 8-bit RGBA.
func toRGBA(c gputypes.Color) color.RGBA {
	return color.RGBA{
		R: unorm8(float64(c.R)),
		G: unorm8(float64(c.G)),
		B: unorm8(float64(c.B)),
		A: unorm8(float64(c.A)),
	}
}

func unorm8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
