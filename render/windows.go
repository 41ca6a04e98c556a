// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"slices"
	"sync"

	"github.com/gogpu/gputypes"
)

// Window is a live window surface extracted for the current frame.
type Window struct {
	// ID identifies the window.
	ID WindowID

	// Width and Height are the surface size in physical pixels.
	Width, Height uint32

	// Format is the surface texture format.
	Format gputypes.TextureFormat

	// SwapChainView is the texture view acquired from the surface for this
	// frame. It is nil if no texture could be acquired.
	SwapChainView TextureView
}

// Windows is the set of live window surfaces.
//
// Windows is safe for concurrent use so that extraction can refresh it
// while the previous frame is still being encoded elsewhere.
type Windows struct {
	mu      sync.RWMutex
	windows map[WindowID]Window
}

// NewWindows creates an empty window set.
func NewWindows() *Windows {
	return &Windows{windows: make(map[WindowID]Window)}
}

// Insert adds w, replacing any window with the same ID.
func (s *Windows) Insert(w Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows[w.ID] = w
}

// Remove deletes the window with the given ID. It is a no-op if absent.
func (s *Windows) Remove(id WindowID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.windows, id)
}

// Get returns the window with the given ID.
func (s *Windows) Get(id WindowID) (Window, bool) {
	if s == nil {
		return Window{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.windows[id]
	return w, ok
}

// Len returns the number of live windows.
func (s *Windows) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.windows)
}

// IDs returns the IDs of all live windows in ascending order.
func (s *Windows) IDs() []WindowID {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	ids := make([]WindowID, 0, len(s.windows))
	for id := range s.windows {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// Destinations returns a window Destination for every live window, in
// ascending window ID order.
func (s *Windows) Destinations() []Destination {
	ids := s.IDs()
	out := make([]Destination, len(ids))
	for i, id := range ids {
		out[i] = WindowDestination(id)
	}
	return out
}
