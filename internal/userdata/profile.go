package userdata

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/bootforge/bootforge/internal/model"
	"github.com/bootforge/bootforge/internal/platform"
)

var profileFile = regexp.MustCompile(`^cli-(.+?)\.(yml|yaml)$`)

// Profiles manages named key/value profiles stored as
// <root>/profiles/cli-<name>.yml. The unnamed profile is cli.yml.
type Profiles struct {
	Dir string
}

// NewProfiles returns the profile service for the userdata directory.
func NewProfiles() (*Profiles, error) {
	dir, err := GetProfilesDir()
	if err != nil {
		return nil, err
	}
	return &Profiles{Dir: dir}, nil
}

// Path returns the file backing the named profile.
func (p *Profiles) Path(name string) string {
	if name == "" {
		return filepath.Join(p.Dir, DefaultProfileFile)
	}
	return filepath.Join(p.Dir, "cli-"+name+".yml")
}

// Add creates an empty profile. It reports false when the profile already
// exists.
func (p *Profiles) Add(name string) (bool, error) {
	err := platform.CreateExclusive(p.Path(name), nil, FilePermNormal)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("creating profile %q: %w", name, err)
	}
	return true, nil
}

// Remove deletes a profile. It reports false when there was nothing to
// delete.
func (p *Profiles) Remove(name string) (bool, error) {
	err := os.Remove(p.Path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("removing profile %q: %w", name, err)
	}
	return true, nil
}

// Load returns the contents of a profile; a missing profile is empty.
func (p *Profiles) Load(name string) (map[string]any, error) {
	return readYAMLMap(p.Path(name))
}

// Exists reports whether the profile file is present.
func (p *Profiles) Exists(name string) bool {
	_, err := os.Stat(p.Path(name))
	return err == nil
}

// Set stores a value under key. The raw value is type-inferred, so "8080"
// is stored as an integer and "true" as a boolean.
func (p *Profiles) Set(name, key, raw string) error {
	m, err := p.Load(name)
	if err != nil {
		return err
	}
	m[key] = model.Infer(raw)
	return writeYAMLMap(p.Path(name), m)
}

// Get returns the value stored under key.
func (p *Profiles) Get(name, key string) (any, bool, error) {
	m, err := p.Load(name)
	if err != nil {
		return nil, false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

// List returns the names of the named profiles, sorted.
func (p *Profiles) List() ([]string, error) {
	entries, err := os.ReadDir(p.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading profiles directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if m := profileFile.FindStringSubmatch(e.Name()); m != nil {
			names = append(names, m[1])
		}
	}
	sort.Strings(names)
	return names, nil
}
