// Package config holds the current values of one poster-editing session.
//
// A Map is a plain key/value assignment derived from a schema's defaults.
// Update and Reset return fresh maps; the caller (the editing session) owns
// all state. Updates for keys that are not part of the originating schema
// are rejected with ErrUnknownKey rather than written through.
package config

import (
	"errors"
	"fmt"

	"github.com/youruser/posterapp/internal/schema"
)

// ErrUnknownKey is returned by Update and Reset for keys absent from the
// originating schema.
var ErrUnknownKey = errors.New("config: unknown key")

// Map assigns a current value to every field key of a schema.
type Map map[string]any

// Init returns a fresh Map populated with the schema's defaults.
func Init(s *schema.Schema) Map {
	return Map(s.Defaults())
}

// Clone returns a shallow copy. Values are strings, numbers and bools, so
// a shallow copy is a full copy.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Update returns a copy of m with key set to value. The value is coerced
// and checked against the field kind: range values are clamped to
// [min, max], toggle values must be booleans, everything else must be a
// string. The input map is never mutated.
func Update(m Map, s *schema.Schema, key string, value any) (Map, error) {
	f, ok := s.Field(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	v, err := coerce(f, value)
	if err != nil {
		return nil, err
	}
	out := m.Clone()
	out[key] = v
	return out, nil
}

// Reset returns a copy of m with key set back to the schema default.
func Reset(m Map, s *schema.Schema, key string) (Map, error) {
	f, ok := s.Field(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	out := m.Clone()
	out[key] = s.Defaults()[f.Key]
	return out, nil
}

func coerce(f schema.Field, value any) (any, error) {
	switch f.Kind {
	case schema.KindRange:
		n, ok := asFloat(value)
		if !ok {
			return nil, fmt.Errorf("config: %q expects a number, got %T", f.Key, value)
		}
		if n < f.Min {
			n = f.Min
		}
		if n > f.Max {
			n = f.Max
		}
		return n, nil
	case schema.KindToggle:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("config: %q expects a bool, got %T", f.Key, value)
		}
		return b, nil
	case schema.KindChoice:
		id, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("config: %q expects an option id, got %T", f.Key, value)
		}
		if _, found := optionByID(f.Options, id); !found {
			return nil, fmt.Errorf("config: %q has no option %q", f.Key, id)
		}
		return id, nil
	default: // text, color, file: pass strings through unchanged
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("config: %q expects a string, got %T", f.Key, value)
		}
		return s, nil
	}
}

func optionByID(opts []schema.Option, id string) (schema.Option, bool) {
	for _, o := range opts {
		if o.ID == id {
			return o, true
		}
	}
	return schema.Option{}, false
}

func asFloat(v any) (float64, bool) {
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

// String returns the value for key as a string, or "" when absent or of
// another type.
func (m Map) String(key string) string {
	s, _ := m[key].(string)
	return s
}

// Float returns the value for key as a float64, or 0.
func (m Map) Float(key string) float64 {
	n, _ := asFloat(m[key])
	return n
}

// Bool returns the value for key as a bool, or false.
func (m Map) Bool(key string) bool {
	b, _ := m[key].(bool)
	return b
}
