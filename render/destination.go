// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DestinationKind identifies the physical kind of a Destination.
type DestinationKind uint8

const (
	// DestinationWindow is a window surface acquired for the current frame.
	DestinationWindow DestinationKind = iota + 1

	// DestinationImage is an offscreen image stored as a texture asset.
	DestinationImage

	// DestinationTextureView is a texture view registered manually by the
	// host application.
	DestinationTextureView
)

// String returns the text prefix used for the kind ("window", "image", "view").
func (k DestinationKind) String() string {
	switch k {
	case DestinationWindow:
		return "window"
	case DestinationImage:
		return "image"
	case DestinationTextureView:
		return "view"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// WindowID identifies a window known to the host application.
type WindowID uint64

// ImageHandle identifies an image asset that can be rendered to.
type ImageHandle uint64

// ManualTextureViewHandle identifies a manually registered texture view.
type ManualTextureViewHandle uint64

// Destination identifies a physical place pixels are written to.
//
// Destination is a comparable value and is used directly as a map key.
// Two destinations are the same physical output if and only if they are
// equal.
type Destination struct {
	Kind DestinationKind
	ID   uint64
}

// WindowDestination returns the destination for a window surface.
func WindowDestination(id WindowID) Destination {
	return Destination{Kind: DestinationWindow, ID: uint64(id)}
}

// ImageDestination returns the destination for an offscreen image.
func ImageDestination(h ImageHandle) Destination {
	return Destination{Kind: DestinationImage, ID: uint64(h)}
}

// TextureViewDestination returns the destination for a manually registered view.
func TextureViewDestination(h ManualTextureViewHandle) Destination {
	return Destination{Kind: DestinationTextureView, ID: uint64(h)}
}

// IsWindow reports whether d is a window surface.
func (d Destination) IsWindow() bool {
	return d.Kind == DestinationWindow
}

// String returns the text form of d, e.g. "window:1".
func (d Destination) String() string {
	return d.Kind.String() + ":" + strconv.FormatUint(d.ID, 10)
}

// Compare orders destinations by kind, then by id.
// It returns -1, 0 or +1 like cmp.Compare.
func (d Destination) Compare(o Destination) int {
	if c := cmp.Compare(d.Kind, o.Kind); c != 0 {
		return c
	}
	return cmp.Compare(d.ID, o.ID)
}

// ErrInvalidDestination is returned by ParseDestination for malformed input.
var ErrInvalidDestination = errors.New("render: invalid destination")

// ParseDestination parses the text form produced by Destination.String.
// Accepted kinds are "window", "image" and "view".
func ParseDestination(s string) (Destination, error) {
	kind, id, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Destination{}, fmt.Errorf("%w: %q: missing ':'", ErrInvalidDestination, s)
	}

	var d Destination
	switch strings.ToLower(kind) {
	case "window":
		d.Kind = DestinationWindow
	case "image":
		d.Kind = DestinationImage
	case "view":
		d.Kind = DestinationTextureView
	default:
		return Destination{}, fmt.Errorf("%w: %q: unknown kind %q", ErrInvalidDestination, s, kind)
	}

	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return Destination{}, fmt.Errorf("%w: %q: %w", ErrInvalidDestination, s, err)
	}
	d.ID = n
	return d, nil
}
