// Package schema declares the configurable parameters of a poster type.
//
// A Schema is an ordered, immutable list of field descriptors. It is defined
// once at startup; malformed declarations (duplicate keys, a default whose
// type does not match the field kind) are construction errors, so every
// schema that exists at runtime is valid.
package schema

import (
	"fmt"
	"regexp"
)

// Kind identifies the value type and control rendered for a field.
type Kind string

const (
	KindText   Kind = "text"
	KindColor  Kind = "color"
	KindRange  Kind = "range"
	KindChoice Kind = "choice"
	KindFile   Kind = "file"
	KindToggle Kind = "toggle"
)

// Option is one selectable entry of a choice field.
type Option struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Field describes a single configurable parameter.
//
// Default must hold a string for text, color, choice and file fields,
// a float64 for range fields and a bool for toggle fields. Min/Max apply
// to range fields, Options to choice fields and Accept to file fields.
type Field struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Kind    Kind     `json:"kind"`
	Default any      `json:"default"`
	Min     float64  `json:"min,omitempty"`
	Max     float64  `json:"max,omitempty"`
	Options []Option `json:"options,omitempty"`
	Accept  string   `json:"accept,omitempty"`
}

// Schema is an ordered set of fields for one poster type.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// New validates the field list and builds a Schema. Field order is
// preserved; it determines form rendering order.
func New(name string, fields ...Field) (*Schema, error) {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Key == "" {
			return nil, fmt.Errorf("schema %s: field %d has empty key", name, i)
		}
		if _, dup := index[f.Key]; dup {
			return nil, fmt.Errorf("schema %s: duplicate key %q", name, f.Key)
		}
		if err := validateField(f); err != nil {
			return nil, fmt.Errorf("schema %s: field %q: %w", name, f.Key, err)
		}
		index[f.Key] = i
	}
	return &Schema{name: name, fields: fields, index: index}, nil
}

// MustNew is New for package-level schema declarations; it panics on a
// malformed schema.
func MustNew(name string, fields ...Field) *Schema {
	s, err := New(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func validateField(f Field) error {
	switch f.Kind {
	case KindText:
		if _, ok := f.Default.(string); !ok {
			return fmt.Errorf("text default must be a string, got %T", f.Default)
		}
	case KindColor:
		s, ok := f.Default.(string)
		if !ok || !hexColor.MatchString(s) {
			return fmt.Errorf("color default must look like #rrggbb, got %v", f.Default)
		}
	case KindRange:
		v, ok := toFloat(f.Default)
		if !ok {
			return fmt.Errorf("range default must be numeric, got %T", f.Default)
		}
		if f.Min > f.Max {
			return fmt.Errorf("range min %v > max %v", f.Min, f.Max)
		}
		if v < f.Min || v > f.Max {
			return fmt.Errorf("range default %v outside [%v, %v]", v, f.Min, f.Max)
		}
	case KindChoice:
		if len(f.Options) == 0 {
			return fmt.Errorf("choice field has no options")
		}
		id, ok := f.Default.(string)
		if !ok {
			return fmt.Errorf("choice default must be an option id, got %T", f.Default)
		}
		if !hasOption(f.Options, id) {
			return fmt.Errorf("choice default %q is not an option", id)
		}
	case KindFile:
		if _, ok := f.Default.(string); !ok {
			return fmt.Errorf("file default must be a string (possibly empty), got %T", f.Default)
		}
	case KindToggle:
		if _, ok := f.Default.(bool); !ok {
			return fmt.Errorf("toggle default must be a bool, got %T", f.Default)
		}
	default:
		return fmt.Errorf("unknown kind %q", f.Kind)
	}
	return nil
}

func hasOption(opts []Option, id string) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

// Name reports the poster type this schema belongs to.
func (s *Schema) Name() string { return s.name }

// Fields returns the descriptors in declaration order. The slice must not
// be mutated.
func (s *Schema) Fields() []Field { return s.fields }

// Field looks up a descriptor by key.
func (s *Schema) Field(key string) (Field, bool) {
	i, ok := s.index[key]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Defaults maps every field key to its declared default value. Range
// defaults are normalized to float64.
func (s *Schema) Defaults() map[string]any {
	m := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		if f.Kind == KindRange {
			v, _ := toFloat(f.Default)
			m[f.Key] = v
			continue
		}
		m[f.Key] = f.Default
	}
	return m
}
