// Package merge materializes classified artifacts inside a Maven project.
package merge

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bootforge/bootforge/internal/artifact"
	"github.com/bootforge/bootforge/internal/javasrc"
	"github.com/bootforge/bootforge/internal/platform"
	"github.com/bootforge/bootforge/internal/terminal"
	"github.com/rs/zerolog"
)

// Policy decides what a batch does after one artifact fails.
type Policy int

const (
	// ContinueOnError writes every artifact it can and returns the failures
	// joined at the end.
	ContinueOnError Policy = iota
	// AbortOnError stops at the first failure.
	AbortOnError
)

func (p Policy) String() string {
	if p == AbortOnError {
		return "abort-on-error"
	}
	return "continue-on-error"
}

// DependencyInjector merges a dependency fragment into the project build.
type DependencyInjector interface {
	InjectDependencies(projectDir, fragment string, out terminal.Messenger) error
}

// WriteError reports the failure of a single artifact.
type WriteError struct {
	Kind artifact.Kind
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("writing %s artifact to %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("writing %s artifact: %v", e.Kind, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Result lists what a batch produced.
type Result struct {
	Written []string
	Skipped []artifact.Kind
	Failed  int
}

// Writer dispatches artifacts to files under ProjectDir or to the dependency
// injector.
type Writer struct {
	ProjectDir      string
	FallbackPackage string
	Policy          Policy
	Deps            DependencyInjector
	Out             terminal.Messenger
	Log             zerolog.Logger
}

// Write processes artifacts in order. Source and test files are created
// exclusively; an existing file fails that artifact and is left untouched.
func (w *Writer) Write(artifacts []artifact.ProjectArtifact) (Result, error) {
	var res Result
	if !javasrc.IsDottedIdentifier(w.FallbackPackage) {
		return res, fmt.Errorf("%w: fallback package %q is not a valid identifier",
			javasrc.ErrPackageResolution, w.FallbackPackage)
	}
	out := w.Out
	if out == nil {
		out = terminal.Noop()
	}

	var errs []error
	for i, a := range artifacts {
		path, skipped, err := w.writeOne(a, out)
		switch {
		case err != nil:
			res.Failed++
			errs = append(errs, err)
			w.Log.Debug().Int("index", i).Str("kind", string(a.Kind)).Err(err).Msg("artifact failed")
			out.Warnf("%v", err)
			if w.Policy == AbortOnError {
				return res, err
			}
		case skipped:
			res.Skipped = append(res.Skipped, a.Kind)
		case path != "":
			res.Written = append(res.Written, path)
		}
	}
	return res, errors.Join(errs...)
}

func (w *Writer) writeOne(a artifact.ProjectArtifact, out terminal.Messenger) (string, bool, error) {
	switch a.Kind {
	case artifact.KindSourceCode:
		return w.writeJava(a, javasrc.MainSourceDir, out)
	case artifact.KindTestCode:
		return w.writeJava(a, javasrc.TestSourceDir, out)
	case artifact.KindMavenDependencies:
		if w.Deps == nil {
			return "", false, &WriteError{Kind: a.Kind, Err: errors.New("no dependency injector configured")}
		}
		if err := w.Deps.InjectDependencies(w.ProjectDir, a.Text, out); err != nil {
			return "", false, &WriteError{Kind: a.Kind, Err: err}
		}
		return "", false, nil
	case artifact.KindApplicationProperties, artifact.KindMainClass:
		w.Log.Debug().Str("kind", string(a.Kind)).Msg("artifact skipped")
		out.Printf("Skipping %s artifact.", a.Kind)
		return "", true, nil
	default:
		return "", false, &WriteError{Kind: a.Kind, Err: fmt.Errorf("unknown artifact kind %q", a.Kind)}
	}
}

func (w *Writer) writeJava(a artifact.ProjectArtifact, sourceDir string, out terminal.Messenger) (string, bool, error) {
	pkg, err := javasrc.ResolvePackage(a.Text, w.FallbackPackage)
	if err != nil {
		return "", false, &WriteError{Kind: a.Kind, Err: err}
	}
	name, ok := javasrc.ExtractTypeName(a.Text)
	if !ok {
		return "", false, &WriteError{Kind: a.Kind, Err: javasrc.ErrNoTypeName}
	}

	path := filepath.Join(w.ProjectDir, sourceDir, javasrc.PackageDir(pkg), name+".java")
	if err := platform.CreateExclusive(path, []byte(a.Text), 0644); err != nil {
		return "", false, &WriteError{Kind: a.Kind, Path: path, Err: err}
	}

	rel, _ := filepath.Rel(w.ProjectDir, path)
	out.Successf("Created %s", rel)
	return path, false, nil
}
