package userdata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// readYAMLMap loads a YAML mapping file. A missing or empty file yields an
// empty map.
func readYAMLMap(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	m := map[string]any{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

// writeYAMLMap writes m in block style, creating parent directories.
func writeYAMLMap(path string, m map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPermNormal); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, FilePermNormal); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
