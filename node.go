package clearpass

import (
	"context"
	"fmt"

	slogcontext "github.com/veqryn/slog-context"

	"github.com/gogpu/clearpass/graph"
	"github.com/gogpu/clearpass/render"
)

// ClearPassNode is the render graph node that clears every destination of a
// frame exactly once before drawing starts.
//
// Each frame it clears the attachments of every view, with the override
// color of the view's destination or the default color, and then clears
// every override destination and live window no view targets. Orphan
// destinations are resolved through the world's Resolver; a destination
// that cannot be resolved fails the frame with a *DestinationUnresolvedError
// before any pass is recorded.
//
// The node reads its configuration from the *ClearColor resource of the
// world. It holds no state across frames and is safe to share between
// graphs.
type ClearPassNode struct {
	opts nodeOptions
}

// NewClearPassNode creates a clear pass node.
func NewClearPassNode(opts ...Option) *ClearPassNode {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &ClearPassNode{opts: o}
}

// Label returns the label prefix of the node's passes.
func (n *ClearPassNode) Label() string {
	return n.opts.label
}

// Validate checks that w carries the clear color configuration.
// It implements graph.Validator.
func (n *ClearPassNode) Validate(w *graph.World) error {
	_, err := clearColor(w)
	return err
}

// Plan resolves the clears of the current frame of w without recording
// anything.
func (n *ClearPassNode) Plan(w *graph.World) (*ClearPlan, error) {
	cc, err := clearColor(w)
	if err != nil {
		return nil, err
	}

	p := &ClearPlan{touched: make(map[render.Destination]struct{})}
	if err := planViews(p, w.Views, cc, n.opts.depth); err != nil {
		return nil, err
	}
	if err := planOrphans(p, frameUniverse(cc, w.Windows), resolver(w), cc); err != nil {
		return nil, err
	}
	return p, nil
}

// Run records the clears of the current frame into rc.Encoder.
// It implements graph.Node.
func (n *ClearPassNode) Run(ctx context.Context, rc *graph.RenderContext, w *graph.World) error {
	if rc == nil || rc.Encoder == nil {
		return ErrNoEncoder
	}

	p, err := n.Plan(w)
	if err != nil {
		return err
	}

	log := slogcontext.FromCtx(ctx)
	for i := range p.ops {
		op := &p.ops[i]
		if op.Source == SourceView && op.Destination == nil {
			log.Debug("view has no destination, clearing with default color", "view", op.Label)
		}

		desc := op.Descriptor(n.opts.label)
		pass, err := rc.Encoder.BeginRenderPass(desc)
		if err != nil {
			return fmt.Errorf("clearpass: %s: %w", desc.Label, err)
		}
		pass.End()

		log.Debug("clear pass recorded",
			"label", desc.Label,
			"source", op.Source.String(),
			"color", op.ColorView != nil,
			"depth", op.DepthView != nil,
			"value", op.Color.Hex(),
		)
	}

	log.Debug("clear pass done", "passes", p.Len(), "touched", len(p.touched))
	return nil
}

// clearColor returns the clear color resource of w.
func clearColor(w *graph.World) (*ClearColor, error) {
	if w == nil {
		return nil, ErrConfigMissing
	}
	cc, ok := graph.Resource[*ClearColor](w)
	if !ok || cc == nil {
		return nil, ErrConfigMissing
	}
	return cc, nil
}

// resolver returns the destination resolver of w. Worlds without one
// resolve window destinations against their live windows only.
func resolver(w *graph.World) render.Resolver {
	if w.Resolver != nil {
		return w.Resolver
	}
	return render.Sources{Windows: w.Windows}
}

var (
	_ graph.Node      = (*ClearPassNode)(nil)
	_ graph.Validator = (*ClearPassNode)(nil)
)
