// Package form maps a schema plus its current config values to a flat list
// of renderable controls. Renderers (the editor HTML template and the JSON
// API) consume the Control structs directly; the package itself never
// mutates config state. Edits flow back through the session's update
// callback.
package form

import (
	"github.com/youruser/posterapp/internal/config"
	"github.com/youruser/posterapp/internal/schema"
)

// Control describes one editable form control. Struct fields are annotated
// so handlers can serialize the model as-is.
type Control struct {
	Key      string          `json:"key"`
	Label    string          `json:"label"`
	Kind     schema.Kind     `json:"kind"`
	Value    any             `json:"value"`
	Default  any             `json:"default"`
	CanReset bool            `json:"canReset"`
	Min      float64         `json:"min,omitempty"`
	Max      float64         `json:"max,omitempty"`
	Options  []schema.Option `json:"options,omitempty"`
	Accept   string          `json:"accept,omitempty"`
}

// Build produces one Control per schema field, in schema order. CanReset is
// set when the live value differs from the declared default, which drives
// the per-field "reset to default" affordance.
//
// File controls carry the accepted MIME types; the picker reads the chosen
// file fully and submits it as a base64 data URI, so downstream drawing
// code always receives embeddable image data. A failed client-side read
// leaves the value unchanged.
func Build(s *schema.Schema, cfg config.Map) []Control {
	defaults := s.Defaults()
	controls := make([]Control, 0, len(s.Fields()))
	for _, f := range s.Fields() {
		value, ok := cfg[f.Key]
		if !ok {
			value = defaults[f.Key]
		}
		controls = append(controls, Control{
			Key:      f.Key,
			Label:    f.Label,
			Kind:     f.Kind,
			Value:    value,
			Default:  defaults[f.Key],
			CanReset: value != defaults[f.Key],
			Min:      f.Min,
			Max:      f.Max,
			Options:  f.Options,
			Accept:   f.Accept,
		})
	}
	return controls
}
