package clearpass

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/gogpu/clearpass/render"
)

// OpSource tells which resolver produced a ClearOp.
type OpSource int

const (
	// SourceView marks clears of a view's own attachments.
	SourceView OpSource = iota
	// SourceOrphan marks clears of destinations no view targets.
	SourceOrphan
)

func (s OpSource) String() string {
	switch s {
	case SourceView:
		return "view"
	case SourceOrphan:
		return "orphan"
	default:
		return fmt.Sprintf("OpSource(%d)", int(s))
	}
}

// ClearOp is one clear-only render pass of a frame.
type ClearOp struct {
	// Label names the view, or the destination for orphan clears.
	Label string

	Source OpSource

	// Destination is the destination being cleared, nil for views without
	// one.
	Destination *render.Destination

	// ColorView is cleared to Color. It is nil for depth-only clears.
	ColorView render.TextureView
	Color     Color

	// DepthView is cleared to Depth. It is nil for color-only clears.
	DepthView render.TextureView
	Depth     float32
}

// Descriptor returns the render pass that performs op.
func (op *ClearOp) Descriptor(prefix string) *render.RenderPassDescriptor {
	desc := &render.RenderPassDescriptor{Label: prefix + " " + op.Label}
	if op.ColorView != nil {
		desc.ColorAttachments = []render.RenderPassColorAttachment{
			render.ClearColorAttachment(op.ColorView, op.Color.GPU()),
		}
	}
	if op.DepthView != nil {
		desc.DepthStencilAttachment = render.ClearDepthAttachment(op.DepthView, op.Depth)
	}
	return desc
}

// ClearPlan is the resolved set of clears of one frame.
type ClearPlan struct {
	ops     []ClearOp
	touched map[render.Destination]struct{}
}

// Ops returns the clears in recording order: view clears first, in view
// order, then orphan clears in destination order.
func (p *ClearPlan) Ops() []ClearOp {
	return p.ops
}

// Len returns the number of clears.
func (p *ClearPlan) Len() int {
	return len(p.ops)
}

// IsTouched reports whether a view of this frame targets dst.
func (p *ClearPlan) IsTouched(dst render.Destination) bool {
	_, ok := p.touched[dst]
	return ok
}

// Touched returns the destinations targeted by views, sorted.
func (p *ClearPlan) Touched() []render.Destination {
	return slices.SortedFunc(maps.Keys(p.touched), render.Destination.Compare)
}

// planViews appends the clears of every view's attachments to p and marks
// the destinations of the views as touched.
//
// Views are visited by ascending Order, ties kept in input order. The first
// view of each destination clears its color attachment; later views of the
// same destination only clear their own depth attachment, so a destination
// gets a single color clear whichever views share it. Views without a
// destination always get a color clear with the default color.
func planViews(p *ClearPlan, views []render.View, cc *ClearColor, depth float32) error {
	order := make([]int, len(views))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(views[a].Order, views[b].Order)
	})

	for _, i := range order {
		v := &views[i]
		if v.Color == nil {
			return fmt.Errorf("clearpass: view %q: %w", v.Label, render.ErrNilView)
		}

		op := ClearOp{
			Label:       v.Label,
			Source:      SourceView,
			Destination: v.Destination,
			ColorView:   v.Color,
			Color:       cc.For(v.Destination),
		}
		if v.Depth != nil {
			op.DepthView = v.Depth
			op.Depth = depth
		}

		if dst := v.Destination; dst != nil {
			if _, seen := p.touched[*dst]; seen {
				if v.Depth == nil {
					continue
				}
				op.ColorView = nil
			}
			p.touched[*dst] = struct{}{}
		}
		p.ops = append(p.ops, op)
	}
	return nil
}

// frameUniverse returns every destination that must be cleared this frame:
// each override destination and each live window, sorted and without
// duplicates.
func frameUniverse(cc *ClearColor, windows *render.Windows) []render.Destination {
	universe := append(cc.Destinations(), windows.Destinations()...)
	slices.SortFunc(universe, render.Destination.Compare)
	return slices.Compact(universe)
}

// planOrphans appends a color clear for every destination of universe that
// no view touched. All orphans are resolved before the first one is
// appended, so an error leaves p without orphan clears.
func planOrphans(p *ClearPlan, universe []render.Destination, r render.Resolver, cc *ClearColor) error {
	var orphans []ClearOp
	for _, dst := range universe {
		if p.IsTouched(dst) {
			continue
		}

		view, err := r.Resolve(dst)
		if err == nil && view == nil {
			err = render.ErrViewUnavailable
		}
		if err != nil {
			return &DestinationUnresolvedError{Destination: dst, Err: err}
		}

		orphans = append(orphans, ClearOp{
			Label:       dst.String(),
			Source:      SourceOrphan,
			Destination: &dst,
			ColorView:   view,
			Color:       cc.Get(dst),
		})
	}
	p.ops = append(p.ops, orphans...)
	return nil
}
