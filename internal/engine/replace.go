package engine

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/bootforge/bootforge/internal/actions"
	"github.com/bootforge/bootforge/internal/platform"
)

// ErrReplaceFailed marks an I/O failure while rewriting a file. The target
// keeps its previous contents.
var ErrReplaceFailed = errors.New("replace failed")

// swapFile installs new file contents; tests replace it to force failures.
var swapFile = platform.ReplaceFile

// Replace substitutes Regex in one existing regular file. With
// FirstOccurrence only the first match changes, otherwise every match does.
// The rendered value may reference capture groups as $1 or ${1}; any other
// $name is a group reference too, so a literal dollar sign is written $$.
func (e *Engine) Replace(r actions.Replace) error {
	e.init()
	path, err := e.render(r.Path)
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%w: replace path is empty", actions.ErrInvalidActionSpec)
	}
	target := e.projectPath(path)

	info, err := os.Stat(target)
	switch {
	case err != nil:
		return fmt.Errorf("%w: replace target %s does not exist", actions.ErrInvalidActionSpec, target)
	case !info.Mode().IsRegular():
		return fmt.Errorf("%w: replace target %s is not a regular file", actions.ErrInvalidActionSpec, target)
	}

	re, err := regexp.Compile(r.Regex)
	if err != nil {
		return fmt.Errorf("%w: bad regex %q: %v", actions.ErrInvalidActionSpec, r.Regex, err)
	}
	value, err := e.render(r.Value)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(target)
	if err != nil {
		return &Warning{Action: "replace", Path: target, Err: fmt.Errorf("%w: %v", ErrReplaceFailed, err)}
	}

	updated, n := substitute(re, content, []byte(value), r.FirstOccurrence)
	if n == 0 {
		e.Out.Printf("No match for %q in %s.", r.Regex, e.relative(target))
		return nil
	}

	if err := swapFile(target, updated); err != nil {
		return &Warning{Action: "replace", Path: target, Err: fmt.Errorf("%w: %v", ErrReplaceFailed, err)}
	}
	e.Log.Debug().Str("path", target).Int("matches", n).Msg("replaced")
	e.Out.Successf("Updated %s", e.relative(target))
	return nil
}

// substitute returns the new content and the number of replaced matches.
func substitute(re *regexp.Regexp, content, value []byte, first bool) ([]byte, int) {
	if first {
		loc := re.FindSubmatchIndex(content)
		if loc == nil {
			return content, 0
		}
		out := make([]byte, 0, len(content)+len(value))
		out = append(out, content[:loc[0]]...)
		out = re.Expand(out, value, content, loc)
		out = append(out, content[loc[1]:]...)
		return out, 1
	}
	n := len(re.FindAllIndex(content, -1))
	if n == 0 {
		return content, 0
	}
	return re.ReplaceAll(content, value), n
}
