package clearpass

import (
	"maps"
	"slices"

	"github.com/gogpu/clearpass/render"
)

// ClearColor is the clear color configuration of a render pipeline: a
// default color plus per-destination overrides.
//
// A ClearColor is process-wide configuration. Mutate it between frames
// only; the clear pass reads it without locking.
type ClearColor struct {
	// Default is used for every destination without an override and for
	// views that have no destination.
	Default Color

	overrides map[render.Destination]Color
}

// NewClearColor creates a configuration with DefaultClearColor and no
// overrides.
func NewClearColor() *ClearColor {
	return &ClearColor{
		Default:   DefaultClearColor,
		overrides: make(map[render.Destination]Color),
	}
}

// Set configures the override color for dst. A later Set for the same
// destination replaces the earlier one.
func (c *ClearColor) Set(dst render.Destination, col Color) {
	if c.overrides == nil {
		c.overrides = make(map[render.Destination]Color)
	}
	c.overrides[dst] = col
}

// Remove deletes the override for dst, if any.
func (c *ClearColor) Remove(dst render.Destination) {
	delete(c.overrides, dst)
}

// Override returns the override color for dst.
func (c *ClearColor) Override(dst render.Destination) (Color, bool) {
	col, ok := c.overrides[dst]
	return col, ok
}

// Get returns the effective clear color for dst: its override if one is
// configured, the default otherwise.
func (c *ClearColor) Get(dst render.Destination) Color {
	if col, ok := c.overrides[dst]; ok {
		return col
	}
	return c.Default
}

// For returns the clear color of a view with the given destination, which
// may be nil.
func (c *ClearColor) For(dst *render.Destination) Color {
	if dst == nil {
		return c.Default
	}
	return c.Get(*dst)
}

// Destinations returns every destination with an override, sorted.
func (c *ClearColor) Destinations() []render.Destination {
	return slices.SortedFunc(maps.Keys(c.overrides), render.Destination.Compare)
}

// Len returns the number of overrides.
func (c *ClearColor) Len() int {
	return len(c.overrides)
}

// Clone returns a deep copy of c.
func (c *ClearColor) Clone() *ClearColor {
	out := &ClearColor{Default: c.Default, overrides: maps.Clone(c.overrides)}
	if out.overrides == nil {
		out.overrides = make(map[render.Destination]Color)
	}
	return out
}
