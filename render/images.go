// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"cmp"
	"slices"
	"sync"
)

// viewStore maps handles to texture views under a read/write lock.
type viewStore[K cmp.Ordered] struct {
	mu    sync.RWMutex
	views map[K]TextureView
}

func (s *viewStore[K]) insert(k K, v TextureView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.views == nil {
		s.views = make(map[K]TextureView)
	}
	s.views[k] = v
}

func (s *viewStore[K]) remove(k K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, k)
}

func (s *viewStore[K]) get(k K) (TextureView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.views[k]
	return v, ok
}

func (s *viewStore[K]) keys() []K {
	s.mu.RLock()
	keys := make([]K, 0, len(s.views))
	for k := range s.views {
		keys = append(keys, k)
	}
	s.mu.RUnlock()
	slices.Sort(keys)
	return keys
}

// Images holds the GPU views of image assets that can be rendered to.
type Images struct {
	store viewStore[ImageHandle]
}

// NewImages creates an empty image store.
func NewImages() *Images {
	return &Images{}
}

// Insert registers the view for handle h, replacing any previous view.
func (s *Images) Insert(h ImageHandle, v TextureView) { s.store.insert(h, v) }

// Remove unregisters handle h.
func (s *Images) Remove(h ImageHandle) { s.store.remove(h) }

// Get returns the view registered for h.
func (s *Images) Get(h ImageHandle) (TextureView, bool) {
	if s == nil {
		return nil, false
	}
	return s.store.get(h)
}

// Handles returns all registered handles in ascending order.
func (s *Images) Handles() []ImageHandle { return s.store.keys() }

// ManualTextureViews holds texture views registered directly by the host
// application, e.g. views owned by an external XR runtime.
type ManualTextureViews struct {
	store viewStore[ManualTextureViewHandle]
}

// NewManualTextureViews creates an empty manual view store.
func NewManualTextureViews() *ManualTextureViews {
	return &ManualTextureViews{}
}

// Insert registers v under h, replacing any previous view.
func (s *ManualTextureViews) Insert(h ManualTextureViewHandle, v TextureView) { s.store.insert(h, v) }

// Remove unregisters h.
func (s *ManualTextureViews) Remove(h ManualTextureViewHandle) { s.store.remove(h) }

// Get returns the view registered under h.
func (s *ManualTextureViews) Get(h ManualTextureViewHandle) (TextureView, bool) {
	if s == nil {
		return nil, false
	}
	return s.store.get(h)
}

// Handles returns all registered handles in ascending order.
func (s *ManualTextureViews) Handles() []ManualTextureViewHandle { return s.store.keys() }
