package ai

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bootforge/bootforge/internal/artifact"
	"github.com/bootforge/bootforge/internal/merge"
	"github.com/bootforge/bootforge/internal/template"
	"github.com/bootforge/bootforge/internal/terminal"
	"github.com/rs/zerolog"
)

// Handler runs the add pipeline.
type Handler struct {
	Generator Generator
	Renderer  template.Renderer
	Deps      merge.DependencyInjector
	Policy    merge.Policy
	Timeout   time.Duration
	Out       terminal.Messenger
	Log       zerolog.Logger
}

// AddResult describes what one add produced.
type AddResult struct {
	Project    ProjectName
	ReportPath string
	Artifacts  []artifact.ProjectArtifact
	Gaps       []artifact.Gap
	Merge      merge.Result
}

// ReportName returns the README file name for a project.
func ReportName(name ProjectName) string {
	return "README-ai-" + name.ShortName + ".md"
}

// Add generates code for description and merges it into projectDir. Failing
// to derive the project name or the root package stops the pipeline before
// anything is written. Artifact failures follow the handler's policy.
func (h *Handler) Add(ctx context.Context, description, projectDir string) (*AddResult, error) {
	out := h.Out
	if out == nil {
		out = terminal.Noop()
	}

	out.Printf("Deriving main Spring project required...")
	name, err := DeriveProjectName(description)
	if err != nil {
		return nil, err
	}
	out.Printf("Done. The code will primarily use %s", name.DisplayName)

	pctx, fallback, err := BuildContext(description, name, projectDir)
	if err != nil {
		return nil, err
	}
	h.Log.Debug().Str("package", fallback).Str("project", name.ShortName).Msg("prompt context ready")

	req, err := RenderPrompts(h.Renderer, pctx)
	if err != nil {
		return nil, err
	}

	out.Printf("Generating code ...")
	response, err := h.generate(ctx, req)
	if err != nil {
		return nil, err
	}
	out.Printf("Done.")

	text := artifact.Normalize(response)
	res := &AddResult{Project: name}
	res.ReportPath = filepath.Join(projectDir, ReportName(name))
	if err := os.WriteFile(res.ReportPath, []byte(text), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", res.ReportPath, err)
	}
	out.Printf("Read the file %s for a description of the code that was added.", ReportName(name))

	res.Artifacts, res.Gaps = artifact.NewClassifier(h.Log).Classify(text)
	w := &merge.Writer{
		ProjectDir:      projectDir,
		FallbackPackage: fallback,
		Policy:          h.Policy,
		Deps:            h.Deps,
		Out:             out,
		Log:             h.Log,
	}
	res.Merge, err = w.Write(res.Artifacts)
	return res, err
}

func (h *Handler) generate(ctx context.Context, req PromptRequest) (string, error) {
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}
	start := time.Now()
	text, err := h.Generator.Generate(ctx, req)
	h.Log.Debug().Dur("elapsed", time.Since(start)).Int("chars", len(text)).Err(err).Msg("generation finished")
	if err != nil {
		return "", fmt.Errorf("generating code: %w", err)
	}
	return text, nil
}
