package ai

import (
	"embed"
	"fmt"

	"github.com/bootforge/bootforge/internal/javasrc"
	"github.com/bootforge/bootforge/internal/template"
)

//go:embed prompts/*.hbs
var promptFS embed.FS

// Prompt-context keys.
const (
	KeyBuildTool         = "build-tool"
	KeyPackageName       = "package-name"
	KeySpringProjectName = "spring-project-name"
	KeyDescription       = "description"
)

// PromptRequest is the rendered system and user prompt pair.
type PromptRequest struct {
	System string
	User   string
}

// BuildContext resolves the project's root package and returns the prompt
// context together with the fallback package for generated code.
func BuildContext(description string, name ProjectName, projectDir string) (map[string]any, string, error) {
	root, err := javasrc.FindRootPackage(projectDir)
	if err != nil {
		return nil, "", err
	}
	pkg := javasrc.FallbackPackage(root, name.ShortName)
	return map[string]any{
		KeyBuildTool:         "maven",
		KeyPackageName:       pkg,
		KeySpringProjectName: name.DisplayName,
		KeyDescription:       description,
	}, pkg, nil
}

// RenderPrompts renders the embedded system and user templates.
func RenderPrompts(r template.Renderer, ctx map[string]any) (PromptRequest, error) {
	var req PromptRequest
	for _, p := range []struct {
		file string
		dst  *string
	}{
		{"prompts/system.hbs", &req.System},
		{"prompts/user.hbs", &req.User},
	} {
		raw, err := promptFS.ReadFile(p.file)
		if err != nil {
			return PromptRequest{}, fmt.Errorf("reading %s: %w", p.file, err)
		}
		out, err := r.Render(string(raw), ctx)
		if err != nil {
			return PromptRequest{}, fmt.Errorf("rendering %s: %w", p.file, err)
		}
		*p.dst = out
	}
	return req, nil
}
