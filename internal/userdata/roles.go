package userdata

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultRole is the role used when none is named.
const DefaultRole = ""

// RoleStore persists variables per role under <root>/roles/.
// The default role lives in roles/vars.yml, a named role in
// roles/<role>/vars.yml.
type RoleStore struct {
	Root string
}

// NewRoleStore returns a store rooted at the userdata directory.
func NewRoleStore() (*RoleStore, error) {
	root, err := GetUserdataRoot()
	if err != nil {
		return nil, err
	}
	return &RoleStore{Root: root}, nil
}

// VarsPath returns the vars file of role.
func (s *RoleStore) VarsPath(role string) string {
	if role == DefaultRole {
		return filepath.Join(s.Root, RolesDir, VarsFile)
	}
	return filepath.Join(s.Root, RolesDir, role, VarsFile)
}

// Load returns every variable stored for role.
func (s *RoleStore) Load(role string) (map[string]any, error) {
	if err := validRole(role); err != nil {
		return nil, err
	}
	return readYAMLMap(s.VarsPath(role))
}

// Get returns one variable of role.
func (s *RoleStore) Get(role, key string) (any, bool, error) {
	m, err := s.Load(role)
	if err != nil {
		return nil, false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

// Update stores value under key for role, keeping the other variables.
func (s *RoleStore) Update(role, key string, value any) error {
	m, err := s.Load(role)
	if err != nil {
		return err
	}
	m[key] = value
	return writeYAMLMap(s.VarsPath(role), m)
}

// List returns the named roles that have a vars file, sorted.
func (s *RoleStore) List() ([]string, error) {
	dir := filepath.Join(s.Root, RolesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading roles directory: %w", err)
	}
	var roles []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, e.Name(), VarsFile)); err == nil {
			roles = append(roles, e.Name())
		}
	}
	sort.Strings(roles)
	return roles, nil
}

func validRole(role string) error {
	if strings.ContainsAny(role, `/\`) || role == "." || role == ".." {
		return fmt.Errorf("invalid role name %q", role)
	}
	return nil
}
