package graph

import (
	"reflect"

	"github.com/gogpu/clearpass/render"
)

// World holds the per-frame inputs extracted for the render graph.
//
// Views, Windows and Resolver are refreshed by extraction every frame.
// Process-wide configuration, such as the clear color, is stored as typed
// resources with InsertResource and read with Resource.
//
// Nodes treat the World as read-only while the graph runs.
type World struct {
	// Views are the active views of this frame.
	Views []render.View

	// Windows are the live window surfaces of this frame.
	Windows *render.Windows

	// Resolver maps destinations to texture views.
	Resolver render.Resolver

	resources map[reflect.Type]any
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{resources: make(map[reflect.Type]any)}
}

// InsertResource stores v as the resource of type T, replacing any previous
// value of that type.
func InsertResource[T any](w *World, v T) {
	if w.resources == nil {
		w.resources = make(map[reflect.Type]any)
	}
	w.resources[reflect.TypeFor[T]()] = v
}

// Resource returns the resource of type T.
func Resource[T any](w *World) (T, bool) {
	v, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// RemoveResource deletes the resource of type T.
func RemoveResource[T any](w *World) {
	delete(w.resources, reflect.TypeFor[T]())
}
