package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bootforge/bootforge/internal/actions"
)

// ErrTemplateUnreadable marks a generate action whose template file cannot
// be read or rendered. It only fails that action.
var ErrTemplateUnreadable = errors.New("template unreadable")

// Generate renders a file into the project. An empty destination is a no-op;
// an existing file is left alone unless Overwrite is set.
func (e *Engine) Generate(g actions.Generate) error {
	e.init()
	to, err := e.render(g.To)
	if err != nil {
		return err
	}
	to = strings.TrimSpace(to)
	if to == "" {
		e.Log.Debug().Str("to", g.To).Msg("generate skipped: empty destination")
		return nil
	}
	dest := e.projectPath(to)

	if _, err := os.Stat(dest); err == nil && !g.Overwrite {
		e.Out.Printf("Skipping %s: file exists and overwrite is not set.", e.relative(dest))
		return nil
	}

	content, err := e.generateContent(g)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dest, err)
	}
	if err := os.WriteFile(dest, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	e.Out.Successf("Generated %s", e.relative(dest))
	return nil
}

func (e *Engine) generateContent(g actions.Generate) (string, error) {
	switch {
	case g.Text != "":
		return e.render(g.Text)
	case g.From != "":
		from, err := e.render(g.From)
		if err != nil {
			return "", err
		}
		src := from
		if !filepath.IsAbs(src) {
			src = filepath.Join(e.TemplateRoot, src)
		}
		data, err := os.ReadFile(src)
		if err != nil {
			return "", &Warning{Action: "generate", Path: src, Err: fmt.Errorf("%w: %v", ErrTemplateUnreadable, err)}
		}
		out, err := e.render(string(data))
		if err != nil {
			return "", &Warning{Action: "generate", Path: src, Err: fmt.Errorf("%w: %v", ErrTemplateUnreadable, err)}
		}
		return out, nil
	default:
		return "", fmt.Errorf("%w: generate %q has neither text nor from", actions.ErrInvalidActionSpec, g.To)
	}
}
