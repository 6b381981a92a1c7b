package javasrc

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MainSourceDir is the Maven main source root relative to the project.
var MainSourceDir = filepath.Join("src", "main", "java")

// TestSourceDir is the Maven test source root relative to the project.
var TestSourceDir = filepath.Join("src", "test", "java")

// FindRootPackage discovers the root package of the project at projectDir.
// The package of the class annotated with @SpringBootApplication wins. When
// there is none, the single shallowest declared package is used. Zero or
// several candidates are a resolution failure.
func FindRootPackage(projectDir string) (string, error) {
	srcDir := filepath.Join(projectDir, MainSourceDir)
	if info, err := os.Stat(srcDir); err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: no %s directory under %s", ErrPackageResolution, MainSourceDir, projectDir)
	}

	mains := map[string]bool{}
	all := map[string]bool{}
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".java") {
			return nil
		}
		pkg, isMain, err := scanJavaFile(path)
		if err != nil {
			return err
		}
		if pkg == "" {
			return nil
		}
		all[pkg] = true
		if isMain {
			mains[pkg] = true
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scanning %s: %w", srcDir, err)
	}

	if len(mains) > 0 {
		return unique(mains, projectDir)
	}
	return unique(shallowest(all), projectDir)
}

func unique(set map[string]bool, projectDir string) (string, error) {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	switch len(keys) {
	case 0:
		return "", fmt.Errorf("%w: no packages found under %s", ErrPackageResolution, projectDir)
	case 1:
		return keys[0], nil
	default:
		return "", fmt.Errorf("%w: several root package candidates under %s: %s", ErrPackageResolution, projectDir, strings.Join(keys, ", "))
	}
}

func shallowest(set map[string]bool) map[string]bool {
	min := -1
	for pkg := range set {
		if d := strings.Count(pkg, "."); min < 0 || d < min {
			min = d
		}
	}
	out := map[string]bool{}
	for pkg := range set {
		if strings.Count(pkg, ".") == min {
			out[pkg] = true
		}
	}
	return out
}

// scanJavaFile returns the declared package and whether the file carries an
// application entry point marker.
func scanJavaFile(path string) (pkg string, isMain bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if pkg == "" {
			if m := packageDecl.FindStringSubmatch(line); m != nil {
				pkg = m[1]
			}
		}
		if strings.Contains(line, "@SpringBootApplication") {
			isMain = true
		}
	}
	return pkg, isMain, scanner.Err()
}
