package graph

import (
	"context"
	"fmt"

	"github.com/gogpu/clearpass/render"
)

// RenderContext is the command recording state handed to nodes.
type RenderContext struct {
	// Encoder receives the node's commands. It is exclusively owned by the
	// running node.
	Encoder render.CommandEncoder
}

// Node is a scheduled unit of GPU command recording.
//
// Run is called once per frame, after every node it depends on has
// returned. A node's logger is available through slogcontext.FromCtx.
type Node interface {
	Run(ctx context.Context, rc *RenderContext, w *World) error
}

// Validator is implemented by nodes that can check their inputs before the
// first frame, turning pipeline wiring bugs into setup errors.
type Validator interface {
	Validate(w *World) error
}

// NodeFunc adapts an ordinary function to the Node interface.
type NodeFunc func(ctx context.Context, rc *RenderContext, w *World) error

// Run calls f(ctx, rc, w).
func (f NodeFunc) Run(ctx context.Context, rc *RenderContext, w *World) error {
	return f(ctx, rc, w)
}

// NodeRunError reports the failure of a single node.
type NodeRunError struct {
	Node string
	Err  error
}

func (e *NodeRunError) Error() string {
	return fmt.Sprintf("graph: node %q: %v", e.Node, e.Err)
}

func (e *NodeRunError) Unwrap() error {
	return e.Err
}
