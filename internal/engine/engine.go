package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bootforge/bootforge/internal/actions"
	"github.com/bootforge/bootforge/internal/maven"
	"github.com/bootforge/bootforge/internal/model"
	"github.com/bootforge/bootforge/internal/prompt"
	"github.com/bootforge/bootforge/internal/template"
	"github.com/bootforge/bootforge/internal/terminal"
	"github.com/rs/zerolog"
)

// VariableStore persists collected answers.
type VariableStore interface {
	Update(role, key string, value any) error
}

// CommandRunner runs an option command and returns its stdout.
type CommandRunner interface {
	Capture(ctx context.Context, command string) (string, error)
}

// PomEditor edits the project build file.
type PomEditor interface {
	InjectDependencies(projectDir, fragment string, out terminal.Messenger) error
	UpdatePom(projectDir string, u maven.PomUpdate) error
}

// Engine runs actions against a project directory.
type Engine struct {
	ProjectDir   string
	TemplateRoot string
	Role         string

	Model    *model.Model
	Renderer template.Renderer
	Asker    prompt.Asker
	Store    VariableStore
	Exec     CommandRunner
	Pom      PomEditor
	Out      terminal.Messenger
	Log      zerolog.Logger
}

// Result collects the recoverable problems of a run.
type Result struct {
	Executed int
	Warnings []error
}

// Run executes the actions in order. Fatal errors stop the run and are
// returned; template read failures and replace I/O failures are reported and
// collected in the result.
func (e *Engine) Run(ctx context.Context, acts []actions.Action) (*Result, error) {
	e.init()
	res := &Result{}
	for i, a := range acts {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := a.Validate(); err != nil {
			return res, fmt.Errorf("action %d: %w", i, err)
		}
		e.Log.Debug().Int("index", i).Str("action", a.Kind()).Msg("running action")

		err := e.dispatch(ctx, a)
		var warn *Warning
		switch {
		case errors.As(err, &warn):
			e.Out.Warnf("%v", warn)
			res.Warnings = append(res.Warnings, warn)
		case err != nil:
			return res, fmt.Errorf("action %d (%s): %w", i, a.Kind(), err)
		}
		res.Executed++
	}
	return res, nil
}

func (e *Engine) dispatch(ctx context.Context, a actions.Action) error {
	switch {
	case a.Define != nil:
		return e.Define(*a.Define)
	case a.Vars != nil:
		return e.Vars(ctx, *a.Vars)
	case a.Generate != nil:
		return e.Generate(*a.Generate)
	case a.Replace != nil:
		return e.Replace(*a.Replace)
	case a.PomUpdate != nil:
		return e.PomUpdate(*a.PomUpdate)
	default:
		return e.InjectMavenDependency(*a.InjectMavenDependency)
	}
}

// Warning is a recoverable failure of one action.
type Warning struct {
	Action string
	Path   string
	Err    error
}

func (w *Warning) Error() string {
	return fmt.Sprintf("%s %s: %v", w.Action, w.Path, w.Err)
}

func (w *Warning) Unwrap() error { return w.Err }

// init fills in the defaults every exported action method relies on.
func (e *Engine) init() {
	if e.Model == nil {
		e.Model = model.New()
	}
	if e.Out == nil {
		e.Out = terminal.Noop()
	}
}

func (e *Engine) render(tmpl string) (string, error) {
	return e.renderModel(tmpl, e.Model.Map())
}

// renderCommand renders a shell command without HTML escaping.
func (e *Engine) renderCommand(tmpl string) (string, error) {
	return e.renderModel(tmpl, template.Unescaped(e.Model.Map()))
}

func (e *Engine) renderModel(tmpl string, vars map[string]any) (string, error) {
	if e.Renderer == nil {
		return tmpl, nil
	}
	out, err := e.Renderer.Render(tmpl, vars)
	if err != nil {
		return "", fmt.Errorf("rendering %q: %w", tmpl, err)
	}
	return out, nil
}

// projectPath resolves p against the project directory.
func (e *Engine) projectPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(e.ProjectDir, p)
}

func (e *Engine) relative(p string) string {
	if rel, err := filepath.Rel(e.ProjectDir, p); err == nil {
		return rel
	}
	return p
}
