package userdata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetUserdataRoot_EnvOverride(t *testing.T) {
	t.Setenv("BOOTFORGE_USERDATA", "/tmp/test-userdata")
	root, err := GetUserdataRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "/tmp/test-userdata" {
		t.Errorf("expected /tmp/test-userdata, got %s", root)
	}
}

func TestGetUserdataRoot_HomeOverride(t *testing.T) {
	t.Setenv("BOOTFORGE_USERDATA", "")
	t.Setenv("BOOTFORGE_HOME", "/tmp/bf")
	root, err := GetUserdataRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != filepath.Join("/tmp/bf", "userdata") {
		t.Errorf("got %s", root)
	}
}

func TestGetUserdataRoot_Default(t *testing.T) {
	t.Setenv("BOOTFORGE_USERDATA", "")
	t.Setenv("BOOTFORGE_HOME", "")
	root, err := GetUserdataRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".bootforge", "userdata")
	if root != expected {
		t.Errorf("expected %s, got %s", expected, root)
	}
}

func TestSubdirectories(t *testing.T) {
	t.Setenv("BOOTFORGE_USERDATA", "/tmp/ud")

	tests := []struct {
		name string
		fn   func() (string, error)
		want string
	}{
		{"env", GetEnvDir, "/tmp/ud/env"},
		{"roles", GetRolesDir, "/tmp/ud/roles"},
		{"profiles", GetProfilesDir, "/tmp/ud/profiles"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestGetVendorEnvPath(t *testing.T) {
	t.Setenv("BOOTFORGE_USERDATA", "/tmp/ud")
	p, err := GetVendorEnvPath("ai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != filepath.FromSlash("/tmp/ud/env/ai.env") {
		t.Errorf("got %s", p)
	}
}
