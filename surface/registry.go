// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"slices"
	"strings"
	"sync"
)

// Factory creates a Surface for the given options.
type Factory func(opts Options) (Surface, error)

// ErrNoBackendAvailable is returned by New when no registered backend can
// create a surface right now.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend is registered but cannot
// create surfaces right now.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

// backend is one registered surface factory.
type backend struct {
	name      string
	priority  int
	factory   Factory
	available func() bool
}

// registry maps backend names to factories. The zero value is ready to use.
type registry struct {
	mu       sync.RWMutex
	backends map[string]backend
}

var backends registry

func init() {
	Register("image", 10, NewImage, nil)
}

// Register adds a backend under name, replacing any backend with the same
// name. Higher priorities are tried first by New; the image backend has
// priority 10. A nil available means the backend is always usable.
//
//	surface.Register("gpu", 100, factory, nil)
func Register(name string, priority int, factory Factory, available func() bool) {
	backends.register(backend{name: name, priority: priority, factory: factory, available: available})
}

// Unregister removes the backend registered under name.
func Unregister(name string) {
	backends.mu.Lock()
	delete(backends.backends, name)
	backends.mu.Unlock()
}

// Available returns the names of the usable backends, most preferred first.
func Available() []string {
	list := backends.usable()
	names := make([]string, len(list))
	for i, b := range list {
		names[i] = b.name
	}
	return names
}

// New creates a surface with the most preferred usable backend. When a
// factory fails the next backend is tried; the last error is returned if
// none succeeds.
func New(opts Options) (Surface, error) {
	return backends.create(opts)
}

// NewByName creates a surface with the named backend.
func NewByName(name string, opts Options) (Surface, error) {
	return backends.createByName(name, opts)
}

func (r *registry) register(b backend) {
	if b.available == nil {
		b.available = func() bool { return true }
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.backends == nil {
		r.backends = make(map[string]backend)
	}
	r.backends[b.name] = b
}

// usable returns the available backends by descending priority, then name.
func (r *registry) usable() []backend {
	r.mu.RLock()
	list := make([]backend, 0, len(r.backends))
	for _, b := range r.backends {
		list = append(list, b)
	}
	r.mu.RUnlock()

	list = slices.DeleteFunc(list, func(b backend) bool { return !b.available() })
	slices.SortFunc(list, func(a, b backend) int {
		if a.priority != b.priority {
			return b.priority - a.priority
		}
		return strings.Compare(a.name, b.name)
	})
	return list
}

func (r *registry) create(opts Options) (Surface, error) {
	list := r.usable()
	if len(list) == 0 {
		return nil, ErrNoBackendAvailable
	}
	var err error
	for _, b := range list {
		var s Surface
		if s, err = b.factory(opts); err == nil {
			return s, nil
		}
	}
	return nil, err
}

func (r *registry) createByName(name string, opts Options) (Surface, error) {
	r.mu.RLock()
	b, ok := r.backends[name]
	r.mu.RUnlock()

	switch {
	case !ok:
		return nil, &BackendNotFoundError{Name: name}
	case !b.available():
		return nil, &BackendUnavailableError{Name: name}
	}
	return b.factory(opts)
}
