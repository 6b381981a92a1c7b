package ai

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoProjectName is returned when a description names no known Spring
// project.
var ErrNoProjectName = errors.New("cannot derive a Spring project name")

// ProjectName identifies the Spring project generated code is built on.
type ProjectName struct {
	ShortName   string // package segment and report suffix, e.g. "jpa"
	DisplayName string // e.g. "Spring Data JPA"
}

var projectNames = []struct {
	keyword string
	name    ProjectName
}{
	{"jpa", ProjectName{ShortName: "jpa", DisplayName: "Spring Data JPA"}},
	{"mongo", ProjectName{ShortName: "mongodb", DisplayName: "Spring Data MongoDB"}},
}

// DeriveProjectName picks the project from keywords in description,
// case-insensitively. The first matching keyword wins.
func DeriveProjectName(description string) (ProjectName, error) {
	lower := strings.ToLower(description)
	for _, p := range projectNames {
		if strings.Contains(lower, p.keyword) {
			return p.name, nil
		}
	}
	return ProjectName{}, fmt.Errorf("%w from %q", ErrNoProjectName, description)
}
