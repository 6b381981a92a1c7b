// Package template renders Handlebars templates against a variable model.
// Action files and the embedded generation prompts use the same syntax, so
// a single engine serves both. Parsed templates are cached by source text.
package template

import (
	"fmt"

	"github.com/aymerick/raymond"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of parsed templates kept in memory.
const DefaultCacheSize = 128

// Renderer renders a template against a model.
type Renderer interface {
	Render(tmpl string, model map[string]any) (string, error)
}

// Handlebars is a Renderer backed by raymond. Double-stash expressions are
// HTML-escaped as in any Handlebars implementation; use triple-stash
// ({{{name}}}) for raw values.
type Handlebars struct {
	cache *lru.Cache[string, *raymond.Template]
}

// NewHandlebars returns a Handlebars renderer caching up to size templates.
func NewHandlebars(size int) (*Handlebars, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, *raymond.Template](size)
	if err != nil {
		return nil, fmt.Errorf("creating template cache: %w", err)
	}
	return &Handlebars{cache: cache}, nil
}

// MustHandlebars is NewHandlebars for callers with a constant size.
func MustHandlebars() *Handlebars {
	h, err := NewHandlebars(DefaultCacheSize)
	if err != nil {
		panic(err)
	}
	return h
}

// Render parses tmpl (or reuses a cached parse) and executes it.
func (h *Handlebars) Render(tmpl string, model map[string]any) (string, error) {
	if tmpl == "" {
		return "", nil
	}
	parsed, ok := h.cache.Get(tmpl)
	if !ok {
		var err error
		parsed, err = raymond.Parse(tmpl)
		if err != nil {
			return "", fmt.Errorf("parsing template: %w", err)
		}
		h.cache.Add(tmpl, parsed)
	}
	out, err := parsed.Exec(model)
	if err != nil {
		return "", fmt.Errorf("rendering template: %w", err)
	}
	return out, nil
}

// Unescaped returns a copy of model whose strings render verbatim even in
// double-stash expressions. Shell commands are rendered this way.
func Unescaped(model map[string]any) map[string]any {
	out := make(map[string]any, len(model))
	for k, v := range model {
		out[k] = unescaped(v)
	}
	return out
}

func unescaped(v any) any {
	switch val := v.(type) {
	case string:
		return raymond.SafeString(val)
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = unescaped(item)
		}
		return items
	case []string:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = raymond.SafeString(item)
		}
		return items
	default:
		return v
	}
}

// Cached reports how many parsed templates are held.
func (h *Handlebars) Cached() int {
	return h.cache.Len()
}
