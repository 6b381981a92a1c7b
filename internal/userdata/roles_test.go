package userdata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRoleStore_UpdateAndLoad(t *testing.T) {
	s := &RoleStore{Root: t.TempDir()}

	if err := s.Update(DefaultRole, "port", 8080); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if err := s.Update(DefaultRole, "name", "orders"); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	m, err := s.Load(DefaultRole)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if m["port"] != 8080 || m["name"] != "orders" {
		t.Errorf("Load() = %v", m)
	}
	if _, err := os.Stat(filepath.Join(s.Root, "roles", "vars.yml")); err != nil {
		t.Errorf("default role file missing: %v", err)
	}
}

func TestRoleStore_NamedRole(t *testing.T) {
	s := &RoleStore{Root: t.TempDir()}

	if err := s.Update("qa", "debug", true); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	v, ok, err := s.Get("qa", "debug")
	if err != nil || !ok || v != true {
		t.Errorf("Get() = %v, %v, %v", v, ok, err)
	}
	if _, ok, _ := s.Get(DefaultRole, "debug"); ok {
		t.Error("named role leaked into default role")
	}
	if s.VarsPath("qa") != filepath.Join(s.Root, "roles", "qa", "vars.yml") {
		t.Errorf("VarsPath(qa) = %s", s.VarsPath("qa"))
	}
}

func TestRoleStore_List(t *testing.T) {
	s := &RoleStore{Root: t.TempDir()}
	_ = s.Update("zeta", "a", 1)
	_ = s.Update("alpha", "a", 1)
	_ = s.Update(DefaultRole, "a", 1)

	roles, err := s.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(roles) != 2 || roles[0] != "alpha" || roles[1] != "zeta" {
		t.Errorf("List() = %v", roles)
	}
}

func TestRoleStore_ListEmpty(t *testing.T) {
	s := &RoleStore{Root: t.TempDir()}
	roles, err := s.List()
	if err != nil || len(roles) != 0 {
		t.Errorf("List() = %v, %v", roles, err)
	}
}

func TestRoleStore_RejectsPathRoles(t *testing.T) {
	s := &RoleStore{Root: t.TempDir()}
	if err := s.Update("../escape", "a", 1); err == nil {
		t.Error("expected error for role with path separator")
	}
}
