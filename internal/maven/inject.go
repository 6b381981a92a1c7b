package maven

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/bootforge/bootforge/internal/terminal"
)

// PomFile is the build descriptor name.
const PomFile = "pom.xml"

// ErrDependencyInjection marks failures merging dependencies into a pom.
var ErrDependencyInjection = errors.New("dependency injection failed")

// Dependency identifies a Maven dependency.
type Dependency struct {
	GroupID    string
	ArtifactID string
}

func (d Dependency) String() string {
	return d.GroupID + ":" + d.ArtifactID
}

// Editor edits <project>/pom.xml.
type Editor struct{}

// InjectDependencies parses fragment (one or more <dependency> elements,
// optionally wrapped in <dependencies>) and appends each dependency that the
// pom does not already declare. Existing dependencies are reported and left
// alone.
func (Editor) InjectDependencies(projectDir, fragment string, out terminal.Messenger) error {
	pomPath := filepath.Join(projectDir, PomFile)
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(pomPath); err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrDependencyInjection, pomPath, err)
	}
	project := doc.SelectElement("project")
	if project == nil {
		return fmt.Errorf("%w: %s has no <project> element", ErrDependencyInjection, pomPath)
	}

	incoming, err := parseFragment(fragment)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDependencyInjection, err)
	}
	if len(incoming) == 0 {
		return fmt.Errorf("%w: fragment contains no <dependency> elements", ErrDependencyInjection)
	}

	deps := project.SelectElement("dependencies")
	if deps == nil {
		deps = project.CreateElement("dependencies")
	}
	existing := map[string]bool{}
	for _, el := range deps.SelectElements("dependency") {
		existing[dependencyOf(el).String()] = true
	}

	added := 0
	for _, el := range incoming {
		dep := dependencyOf(el)
		if existing[dep.String()] {
			out.Printf("Dependency %s is already declared in %s, skipping.", dep, PomFile)
			continue
		}
		deps.AddChild(el.Copy())
		existing[dep.String()] = true
		added++
		out.Printf("Added dependency %s to %s.", dep, PomFile)
	}
	if added == 0 {
		return nil
	}

	doc.Indent(4)
	if err := doc.WriteToFile(pomPath); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrDependencyInjection, pomPath, err)
	}
	return nil
}

// ParseDependencies returns the dependencies declared in fragment.
func ParseDependencies(fragment string) ([]Dependency, error) {
	els, err := parseFragment(fragment)
	if err != nil {
		return nil, err
	}
	out := make([]Dependency, len(els))
	for i, el := range els {
		out[i] = dependencyOf(el)
	}
	return out, nil
}

func parseFragment(fragment string) ([]*etree.Element, error) {
	frag := etree.NewDocument()
	if err := frag.ReadFromString("<fragment>" + stripDeclaration(fragment) + "</fragment>"); err != nil {
		return nil, fmt.Errorf("parsing dependency fragment: %w", err)
	}
	return frag.FindElements("//dependency"), nil
}

func stripDeclaration(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "<?xml") {
		if i := strings.Index(s, "?>"); i >= 0 {
			s = s[i+2:]
		}
	}
	return s
}

func dependencyOf(el *etree.Element) Dependency {
	return Dependency{
		GroupID:    childText(el, "groupId"),
		ArtifactID: childText(el, "artifactId"),
	}
}

func childText(el *etree.Element, tag string) string {
	if c := el.SelectElement(tag); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}

// ReadPom returns the raw pom.xml of projectDir.
func ReadPom(projectDir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(projectDir, PomFile))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", PomFile, err)
	}
	return string(data), nil
}
