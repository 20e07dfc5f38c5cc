package poster

import (
	"sort"

	"github.com/youruser/posterapp/internal/config"
)

// DefaultTemplate is used whenever a requested template name is unknown.
const DefaultTemplate = "classic"

// RenderFunc paints one poster layout. meta may be nil; scale normalizes
// fixed offsets declared against the A0 baseline to the actual page size.
type RenderFunc func(d Doc, cfg config.Map, meta *Metadata, pageW, pageH, scale float64)

// Registry maps template names to render functions.
type Registry struct {
	templates map[string]RenderFunc
}

// NewRegistry returns a registry pre-populated with the built-in
// templates.
func NewRegistry() *Registry {
	r := &Registry{templates: make(map[string]RenderFunc)}
	r.Register("classic", renderClassic)
	r.Register("minimal", renderMinimal)
	r.Register("modern", renderModern)
	return r
}

// Register stores a render function under name.
func (r *Registry) Register(name string, fn RenderFunc) {
	r.templates[name] = fn
}

// Lookup returns the render function for name, falling back to the classic
// template for unknown names.
func (r *Registry) Lookup(name string) RenderFunc {
	if fn, ok := r.templates[name]; ok {
		return fn
	}
	return r.templates[DefaultTemplate]
}

// Names lists registered template names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
