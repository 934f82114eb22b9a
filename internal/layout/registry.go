package layout

import (
	"maps"
	"slices"
)

// Registry holds named layouts that manifests refer to.
type Registry struct {
	layouts map[string]Layout
}

// NewRegistry creates a new layout registry.
func NewRegistry() *Registry {
	return &Registry{
		layouts: make(map[string]Layout),
	}
}

// Register adds a layout under name, replacing any previous one.
func (r *Registry) Register(name string, l Layout) {
	r.layouts[name] = l
}

// Get retrieves a layout by name.
func (r *Registry) Get(name string) (Layout, bool) {
	l, ok := r.layouts[name]
	return l, ok
}

// List returns all registered layout names, sorted.
func (r *Registry) List() []string {
	return slices.Sorted(maps.Keys(r.layouts))
}
