package engine

import (
	"errors"
	"fmt"

	"github.com/bootforge/bootforge/internal/actions"
	"github.com/bootforge/bootforge/internal/maven"
)

var errNoPomEditor = errors.New("no pom editor configured")

// PomUpdate writes project name, version and description to pom.xml.
func (e *Engine) PomUpdate(p actions.PomUpdate) error {
	e.init()
	if e.Pom == nil {
		return errNoPomEditor
	}
	var u maven.PomUpdate
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&u.Name, p.ProjectName},
		{&u.Version, p.ProjectVersion},
		{&u.Description, p.ProjectDescription},
	} {
		v, err := e.render(f.src)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	if err := e.Pom.UpdatePom(e.ProjectDir, u); err != nil {
		return fmt.Errorf("updating %s: %w", maven.PomFile, err)
	}
	e.Out.Successf("Updated %s", maven.PomFile)
	return nil
}

// InjectMavenDependency merges the rendered fragment into pom.xml.
func (e *Engine) InjectMavenDependency(d actions.InjectMavenDependency) error {
	e.init()
	if e.Pom == nil {
		return errNoPomEditor
	}
	text, err := e.render(d.Text)
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("%w: inject-maven-dependency text is empty", actions.ErrInvalidActionSpec)
	}
	return e.Pom.InjectDependencies(e.ProjectDir, text, e.Out)
}
