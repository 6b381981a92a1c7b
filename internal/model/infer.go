package model

import (
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Infer converts a collected answer into an int, float or bool when the text
// is a plain YAML scalar of that type and formatting the value back yields
// the same text. "42" becomes an int and "true" a bool, while "1.10",
// "0123", "2024-01-01" and "a: b" stay strings. Maps, lists and timestamps
// are never produced.
func Infer(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed != raw {
		return raw
	}
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil || len(doc.Content) != 1 {
		return raw
	}
	node := doc.Content[0]
	if node.Kind != yaml.ScalarNode || node.Style != 0 {
		return raw
	}

	switch node.ShortTag() {
	case "!!int":
		if n, err := strconv.ParseInt(raw, 10, 0); err == nil && strconv.FormatInt(n, 10) == raw {
			return int(n)
		}
	case "!!float":
		if f, err := strconv.ParseFloat(raw, 64); err == nil && strconv.FormatFloat(f, 'f', -1, 64) == raw {
			return f
		}
	case "!!bool":
		if b, err := strconv.ParseBool(raw); err == nil && strconv.FormatBool(b) == raw {
			return b
		}
	}
	return raw
}

// InferAll applies Infer to every element.
func InferAll(raw []string) []any {
	out := make([]any, len(raw))
	for i, r := range raw {
		out[i] = Infer(r)
	}
	return out
}
