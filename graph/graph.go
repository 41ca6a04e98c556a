package graph

import (
	"context"
	"errors"
	"fmt"

	slogcontext "github.com/veqryn/slog-context"
	"ocm.software/open-component-model/bindings/go/dag"

	"github.com/gogpu/clearpass/backend"
)

// Graph errors.
var (
	// ErrNilNode is returned when AddNode is called with a nil node.
	ErrNilNode = errors.New("graph: node is nil")

	// ErrNodeExists is returned when a node name is added twice.
	ErrNodeExists = errors.New("graph: node already exists")

	// ErrUnknownNode is returned when an edge references a missing node.
	ErrUnknownNode = errors.New("graph: unknown node")
)

// Graph is a render graph: named nodes with ordering dependencies.
//
// Nodes run sequentially in dependency order on the calling goroutine.
// Ties between independent nodes are broken by name, so the order is
// stable from frame to frame.
//
// Graph is NOT safe for concurrent modification; build it once at setup.
type Graph struct {
	dag   *dag.DirectedAcyclicGraph[string]
	nodes map[string]Node
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		dag:   dag.NewDirectedAcyclicGraph[string](),
		nodes: make(map[string]Node),
	}
}

// AddNode adds n under name.
func (g *Graph) AddNode(name string, n Node) error {
	if n == nil {
		return fmt.Errorf("%q: %w", name, ErrNilNode)
	}
	if _, ok := g.nodes[name]; ok {
		return fmt.Errorf("%q: %w", name, ErrNodeExists)
	}
	if err := g.dag.AddVertex(name); err != nil {
		return fmt.Errorf("graph: add node %q: %w", name, err)
	}
	g.nodes[name] = n
	return nil
}

// AddEdge declares that before must finish before after starts.
// Adding an edge that would create a cycle fails and leaves the graph
// unchanged.
func (g *Graph) AddEdge(before, after string) error {
	for _, name := range []string{before, after} {
		if _, ok := g.nodes[name]; !ok {
			return fmt.Errorf("%q: %w", name, ErrUnknownNode)
		}
	}
	// The DAG's topological order lists edge targets first, so the edge
	// points from the dependent node to its dependency.
	if err := g.dag.AddEdge(after, before); err != nil {
		return fmt.Errorf("graph: edge %q -> %q: %w", before, after, err)
	}
	return nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Order returns the node names in execution order.
func (g *Graph) Order() ([]string, error) {
	order, err := g.dag.TopologicalSort()
	if err != nil {
		return nil, fmt.Errorf("graph: order: %w", err)
	}
	return order, nil
}

// Validate runs Validate on every node that implements Validator, in
// execution order, and returns the first failure.
func (g *Graph) Validate(w *World) error {
	order, err := g.Order()
	if err != nil {
		return err
	}
	for _, name := range order {
		v, ok := g.nodes[name].(Validator)
		if !ok {
			continue
		}
		if err := v.Validate(w); err != nil {
			return &NodeRunError{Node: name, Err: err}
		}
	}
	return nil
}

// Run executes every node once in dependency order. The first failing node
// stops the run; its error is returned as a *NodeRunError.
func (g *Graph) Run(ctx context.Context, rc *RenderContext, w *World) error {
	order, err := g.Order()
	if err != nil {
		return err
	}

	log := logger()
	for _, name := range order {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("graph: run: %w", err)
		}

		nodeLog := log.With("node", name)
		nodeLog.Debug("running node")
		if err := g.nodes[name].Run(slogcontext.NewCtx(ctx, nodeLog), rc, w); err != nil {
			nodeLog.Warn("node failed", "err", err)
			return &NodeRunError{Node: name, Err: err}
		}
	}
	return nil
}

// RunFrame records one frame with b: it creates a frame encoder, runs the
// graph into it and submits it. If any node fails the encoder is discarded,
// so a partially recorded frame is never submitted.
func RunFrame(ctx context.Context, g *Graph, b backend.Backend, w *World) error {
	enc, err := b.NewFrameEncoder("frame")
	if err != nil {
		return fmt.Errorf("graph: frame encoder: %w", err)
	}

	if err := g.Run(ctx, &RenderContext{Encoder: enc}, w); err != nil {
		enc.Discard()
		return err
	}
	if err := enc.Submit(); err != nil {
		return fmt.Errorf("graph: submit frame: %w", err)
	}
	return nil
}
