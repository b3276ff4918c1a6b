// Package capture realizes rendered visual documents as bitmap images.
//
// A rendered HTML page is first attached to the Registry, which hands out a
// surface id. The rasterized exporter later resolves that id and screenshots
// the page in a headless browser. Because the registry hands out immutable
// snapshots, detaching a surface mid-capture cannot corrupt an in-flight
// export.
package capture

import (
	"sync"

	"github.com/google/uuid"
)

// Registry tracks attached visual surfaces by id. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	surfaces map[string]string
}

// NewRegistry creates an empty surface registry.
func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[string]string)}
}

// Attach stores a rendered HTML page and returns its surface id.
func (r *Registry) Attach(html string) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.surfaces[id] = html
	r.mu.Unlock()
	return id
}

// Get returns the snapshot attached under id. The boolean reports whether the
// surface exists; a detached or never-attached id yields false.
func (r *Registry) Get(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	html, ok := r.surfaces[id]
	return html, ok
}

// Detach removes a surface. Captures already holding the snapshot are
// unaffected.
func (r *Registry) Detach(id string) {
	r.mu.Lock()
	delete(r.surfaces, id)
	r.mu.Unlock()
}

// Len reports the number of attached surfaces.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.surfaces)
}
