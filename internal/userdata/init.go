package userdata

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bootforge/bootforge/internal/platform"
)

// Default content for env/ai.env.
const defaultAIEnvContent = `# Credentials for the code generation backend.
# BOOTFORGE_AI_API_KEY=
`

// InitGlobal creates the userdata directory structure with proper permissions.
// It prints progress messages to w. Existing items are skipped with a message.
func InitGlobal(w io.Writer) error {
	root, err := GetUserdataRoot()
	if err != nil {
		return err
	}

	if err := ensureDir(w, root, DirPermNormal); err != nil {
		return err
	}

	// env/ holds credentials.
	envDir := filepath.Join(root, EnvDir)
	if err := ensureDir(w, envDir, DirPermSecure); err != nil {
		return err
	}
	if err := ensureFile(w, filepath.Join(envDir, AIEnvVendor+".env"), defaultAIEnvContent, FilePermSecure); err != nil {
		return err
	}

	if err := ensureDir(w, filepath.Join(root, RolesDir), DirPermNormal); err != nil {
		return err
	}
	profilesDir := filepath.Join(root, ProfilesDir)
	if err := ensureDir(w, profilesDir, DirPermNormal); err != nil {
		return err
	}
	return ensureFile(w, filepath.Join(profilesDir, DefaultProfileFile), "", FilePermNormal)
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	// MkdirAll is subject to umask.
	if err := platform.Chmod(path, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// ensureFile creates a file with content if it doesn't exist.
func ensureFile(w io.Writer, path, content string, perm os.FileMode) error {
	err := platform.CreateExclusive(path, []byte(content), perm)
	if errors.Is(err, fs.ErrExist) {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}
