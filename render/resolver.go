// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
)

// Resolution errors.
var (
	// ErrDestinationNotFound is returned when a destination is not known to
	// any source (closed window, unloaded image, unregistered view).
	ErrDestinationNotFound = errors.New("render: destination not found")

	// ErrViewUnavailable is returned when a destination is known but has no
	// texture view this frame, e.g. a window whose surface was not acquired.
	ErrViewUnavailable = errors.New("render: destination has no texture view this frame")
)

// Resolver maps a Destination to the concrete texture view it is rendered
// through this frame.
type Resolver interface {
	Resolve(d Destination) (TextureView, error)
}

// ResolverFunc adapts an ordinary function to the Resolver interface.
type ResolverFunc func(d Destination) (TextureView, error)

// Resolve calls f(d).
func (f ResolverFunc) Resolve(d Destination) (TextureView, error) {
	return f(d)
}

// Sources resolves destinations against the window, image and manual view
// stores of a frame. Nil stores resolve nothing.
type Sources struct {
	Windows     *Windows
	Images      *Images
	ManualViews *ManualTextureViews
}

// Resolve implements Resolver.
func (s Sources) Resolve(d Destination) (TextureView, error) {
	var (
		view  TextureView
		found bool
	)
	switch d.Kind {
	case DestinationWindow:
		var w Window
		w, found = s.Windows.Get(WindowID(d.ID))
		view = w.SwapChainView
	case DestinationImage:
		view, found = s.Images.Get(ImageHandle(d.ID))
	case DestinationTextureView:
		view, found = s.ManualViews.Get(ManualTextureViewHandle(d.ID))
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", d, ErrDestinationNotFound)
	}
	if view == nil {
		return nil, fmt.Errorf("%s: %w", d, ErrViewUnavailable)
	}
	return view, nil
}

// Ensure Sources implements Resolver.
var _ Resolver = Sources{}
