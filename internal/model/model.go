// Package model holds the variable model shared by the generation pipeline
// and the action engine for the duration of one command.
package model

import (
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Model is an insertion-ordered map of variables. Re-setting a key keeps its
// original position.
type Model struct {
	keys   []string
	values map[string]any
}

// New returns an empty model.
func New() *Model {
	return &Model{values: make(map[string]any)}
}

// FromMap seeds a model with m. Keys are added in sorted order since Go maps
// carry no order of their own.
func FromMap(m map[string]any) *Model {
	out := New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out.Set(k, m[k])
	}
	return out
}

// Set stores value under key.
func (m *Model) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key.
func (m *Model) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// String returns the value for key formatted as text, or "" when absent.
func (m *Model) String(key string) string {
	v, ok := m.values[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// Keys returns the keys in insertion order.
func (m *Model) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of variables.
func (m *Model) Len() int { return len(m.keys) }

// Map returns a copy of the model for template rendering.
func (m *Model) Map() map[string]any {
	out := make(map[string]any, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}
