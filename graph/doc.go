// Package graph provides a minimal render graph executor.
//
// A Graph holds named nodes and ordering edges between them. Each frame,
// RunFrame creates an encoder from a backend, runs every node in
// dependency order against the frame's World and submits the result:
//
//	g := graph.New()
//	_ = g.AddNode("clear_pass", clearpass.NewClearPassNode())
//	_ = g.AddNode("main_pass", mainPass)
//	_ = g.AddEdge("clear_pass", "main_pass")
//
//	w := graph.NewWorld()
//	graph.InsertResource(w, clearColor)
//	w.Views, w.Windows, w.Resolver = views, windows, resolver
//
//	if err := graph.RunFrame(ctx, g, b, w); err != nil {
//	    // the frame was discarded, not submitted
//	}
//
// Ordering and cycle detection are delegated to the OCM dag package.
// Nodes receive a logger tagged with their name through the context
// (slogcontext.FromCtx).
package graph
