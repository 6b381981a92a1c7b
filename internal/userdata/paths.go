package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bootforge/bootforge/internal/branding"
)

// Directory and file name constants for the userdata convention.
const (
	UserdataDir        = "userdata"
	EnvDir             = "env"
	RolesDir           = "roles"
	ProfilesDir        = "profiles"
	VarsFile           = "vars.yml"
	DefaultProfileFile = "cli.yml"
	AIEnvVendor        = "ai"
)

// Permission constants.
const (
	DirPermSecure  os.FileMode = 0700
	FilePermSecure os.FileMode = 0600
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// GetUserdataRoot returns the path to the userdata directory.
// It checks BOOTFORGE_USERDATA first, then BOOTFORGE_HOME/userdata, then
// falls back to ~/.bootforge/userdata.
func GetUserdataRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("USERDATA")); v != "" {
		return v, nil
	}
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return filepath.Join(v, UserdataDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir(), UserdataDir), nil
}

func subdir(name string) (string, error) {
	root, err := GetUserdataRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, name), nil
}

// GetEnvDir returns the path to the env/ directory within userdata.
func GetEnvDir() (string, error) { return subdir(EnvDir) }

// GetRolesDir returns the path to the roles/ directory within userdata.
func GetRolesDir() (string, error) { return subdir(RolesDir) }

// GetProfilesDir returns the path to the profiles/ directory within userdata.
func GetProfilesDir() (string, error) { return subdir(ProfilesDir) }

// GetVendorEnvPath returns the path to a vendor-specific .env file.
// For example, GetVendorEnvPath("ai") returns "<userdata>/env/ai.env".
func GetVendorEnvPath(vendor string) (string, error) {
	dir, err := GetEnvDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, vendor+".env"), nil
}
