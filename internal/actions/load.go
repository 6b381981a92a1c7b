package actions

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.yaml.in/yaml/v3"
)

// ErrInvalidActionSpec marks an action file or action that cannot be run.
var ErrInvalidActionSpec = errors.New("invalid action spec")

// Format is the serialization of an action file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: unsupported action file extension %q", ErrInvalidActionSpec, filepath.Ext(path))
	}
}

// LoadFile reads, validates and decodes an action file.
func LoadFile(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading action file %s: %w", path, err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse validates and decodes an action document.
func Parse(data []byte, format Format) (*File, error) {
	var raw any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: parsing YAML: %v", ErrInvalidActionSpec, err)
		}
	case FormatTOML:
		var m map[string]any
		if _, err := toml.Decode(string(data), &m); err != nil {
			return nil, fmt.Errorf("%w: parsing TOML: %v", ErrInvalidActionSpec, err)
		}
		raw = m
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidActionSpec, format)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: empty action file", ErrInvalidActionSpec)
	}

	jsonData, err := toJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	issues, err := validateJSON(jsonData)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		msgs := make([]string, len(issues))
		for i, issue := range issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidActionSpec, strings.Join(msgs, "; "))
	}

	var f File
	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: decoding actions: %v", ErrInvalidActionSpec, err)
	}
	for i, a := range f.Actions {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
	}
	return &f, nil
}
