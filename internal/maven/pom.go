package maven

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/beevik/etree"
)

// PomUpdate carries the project metadata to write. Empty fields are left
// untouched.
type PomUpdate struct {
	Name        string
	Version     string
	Description string
}

// UpdatePom sets the project-level name, version and description of
// <projectDir>/pom.xml. The version must parse as a semantic version (Maven
// qualifiers such as -SNAPSHOT are accepted as pre-release tags).
func UpdatePom(projectDir string, u PomUpdate) error {
	if u.Version != "" {
		if _, err := semver.NewVersion(strings.TrimPrefix(u.Version, "v")); err != nil {
			return fmt.Errorf("invalid project version %q: %w", u.Version, err)
		}
	}

	pomPath := filepath.Join(projectDir, PomFile)
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(pomPath); err != nil {
		return fmt.Errorf("reading %s: %w", pomPath, err)
	}
	project := doc.SelectElement("project")
	if project == nil {
		return fmt.Errorf("%s has no <project> element", pomPath)
	}

	setChild(project, "name", u.Name)
	setChild(project, "version", u.Version)
	setChild(project, "description", u.Description)

	if err := doc.WriteToFile(pomPath); err != nil {
		return fmt.Errorf("writing %s: %w", pomPath, err)
	}
	return nil
}

func setChild(parent *etree.Element, tag, value string) {
	if value == "" {
		return
	}
	el := parent.SelectElement(tag)
	if el == nil {
		el = parent.CreateElement(tag)
	}
	el.SetText(value)
}

// UpdatePom applies u to the pom.xml of projectDir.
func (Editor) UpdatePom(projectDir string, u PomUpdate) error {
	return UpdatePom(projectDir, u)
}
