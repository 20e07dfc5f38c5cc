package export

import (
	"errors"
	"sync"

	"github.com/youruser/posterapp/internal/config"
	"github.com/youruser/posterapp/internal/form"
	"github.com/youruser/posterapp/internal/poster"
	"github.com/youruser/posterapp/internal/schema"
)

// ErrNotReady is returned when a render is requested before the session's
// required external data has resolved. Export is refused, never attempted,
// in that state.
var ErrNotReady = errors.New("export: session data not ready")

// Session is one poster-editing session: a schema, its config map, the
// catalog metadata and the chosen template. All mutation happens under the
// session's own lock; nothing is shared across sessions.
//
// Renders are serialized per session with a generation counter: a preview
// that finishes after a newer one has been requested is dropped, so a slow
// render can never overwrite a newer preview with stale pixels.
type Session struct {
	ID         string
	PosterType string
	Schema     *schema.Schema

	mu       sync.Mutex
	cfg      config.Map
	meta     *poster.Metadata
	template string
	ready    bool
	gen      uint64
	preview  string
}

func newSession(id, posterType string, s *schema.Schema) *Session {
	return &Session{
		ID:         id,
		PosterType: posterType,
		Schema:     s,
		cfg:        config.Init(s),
		template:   poster.DefaultTemplate,
	}
}

// MarkReady applies automatic config enrichment (values resolved from the
// catalog record) and moves the session out of the idle state. Enrichment
// values that fail validation are skipped; they never block the session.
func (s *Session) MarkReady(meta *poster.Metadata, enrichment map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range enrichment {
		if next, err := config.Update(s.cfg, s.Schema, key, value); err == nil {
			s.cfg = next
		}
	}
	s.meta = meta
	s.ready = true
}

// Ready reports whether rendering inputs have resolved.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// UpdateConfig applies one user edit.
func (s *Session) UpdateConfig(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := config.Update(s.cfg, s.Schema, key, value)
	if err != nil {
		return err
	}
	s.cfg = next
	return nil
}

// ResetConfig restores one field to its schema default.
func (s *Session) ResetConfig(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := config.Reset(s.cfg, s.Schema, key)
	if err != nil {
		return err
	}
	s.cfg = next
	return nil
}

// SetTemplate selects the template used by subsequent renders. Unknown
// names are kept as-is; the registry falls back to classic at render time.
func (s *Session) SetTemplate(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.template = name
}

// Template returns the currently selected template name.
func (s *Session) Template() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template
}

// Config returns a copy of the current config map.
func (s *Session) Config() config.Map {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Clone()
}

// Value returns the current value for one config key.
func (s *Session) Value(key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg[key]
}

// Metadata returns the session's catalog record, nil for poster types
// without one.
func (s *Session) Metadata() *poster.Metadata {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta
}

// Controls builds the form model for the current state.
func (s *Session) Controls() []form.Control {
	s.mu.Lock()
	defer s.mu.Unlock()
	return form.Build(s.Schema, s.cfg)
}

// RenderPreview renders a fresh preview unless a newer render has been
// requested meanwhile, in which case the newer preview is returned.
func (s *Session) RenderPreview(p *Pipeline) (string, error) {
	s.mu.Lock()
	if !s.ready {
		s.mu.Unlock()
		return "", ErrNotReady
	}
	s.gen++
	gen := s.gen
	cfg := s.cfg.Clone()
	meta := s.meta
	template := s.template
	s.mu.Unlock()

	uri, err := p.RenderPreview(cfg, meta, template)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.gen {
		s.preview = uri
	}
	return s.preview, nil
}

// Export produces a downloadable artifact from the current state. A
// session that has not resolved its data refuses the export.
func (s *Session) Export(p *Pipeline, opts Options) (*Artifact, error) {
	s.mu.Lock()
	if !s.ready {
		s.mu.Unlock()
		return nil, ErrNotReady
	}
	cfg := s.cfg.Clone()
	meta := s.meta
	template := s.template
	s.mu.Unlock()

	return p.ExportArtifact(s.PosterType, cfg, meta, template, opts)
}
