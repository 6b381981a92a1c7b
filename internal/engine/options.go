package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bootforge/bootforge/internal/actions"
	"github.com/bootforge/bootforge/internal/prompt"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// ErrInvalidOptionShape is returned when computed dropdown options are not a
// scalar, a sequence of scalars or a mapping of scalars.
var ErrInvalidOptionShape = errors.New("invalid option shape")

// OptionOutput is the coerced result of an option command. It is one of
// Scalar, Sequence or Mapping.
type OptionOutput interface {
	Options() []prompt.Option
}

// Scalar is a single choice.
type Scalar string

// Sequence is a list of choices whose labels equal their values.
type Sequence []string

// Mapping maps labels to values.
type Mapping map[string]string

func (s Scalar) Options() []prompt.Option {
	return []prompt.Option{{Label: string(s), Value: string(s)}}
}

func (s Sequence) Options() []prompt.Option {
	opts := make([]prompt.Option, len(s))
	for i, v := range s {
		opts[i] = prompt.Option{Label: v, Value: v}
	}
	return sortOptions(opts)
}

func (m Mapping) Options() []prompt.Option {
	opts := make([]prompt.Option, 0, len(m))
	for k, v := range m {
		opts = append(opts, prompt.Option{Label: k, Value: v})
	}
	return sortOptions(opts)
}

func sortOptions(opts []prompt.Option) []prompt.Option {
	sort.SliceStable(opts, func(i, j int) bool { return opts[i].Label < opts[j].Label })
	return opts
}

// Coerce classifies a decoded value as Scalar, Sequence or Mapping.
func Coerce(v any) (OptionOutput, error) {
	switch val := v.(type) {
	case string:
		return Scalar(val), nil
	case []any:
		seq := make(Sequence, 0, len(val))
		for _, item := range val {
			s, ok := scalarString(item)
			if !ok {
				return nil, fmt.Errorf("%w: sequence element %v (%T) is not a scalar", ErrInvalidOptionShape, item, item)
			}
			seq = append(seq, s)
		}
		return seq, nil
	case []string:
		return Sequence(val), nil
	case map[string]any:
		m := make(Mapping, len(val))
		for k, item := range val {
			s, ok := scalarString(item)
			if !ok {
				return nil, fmt.Errorf("%w: value of %q is not a scalar", ErrInvalidOptionShape, k)
			}
			m[k] = s
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %v (%T)", ErrInvalidOptionShape, v, v)
	}
}

func scalarString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case int64, float64, bool, int:
		return fmt.Sprint(val), true
	default:
		return "", false
	}
}

// decodeOutput turns command stdout into a value for Coerce. With a JSON
// path the output is parsed as JSON and queried; a single match is used as
// is, several form a sequence. Without one, each non-blank line is a choice.
func decodeOutput(stdout, path string) (any, error) {
	if path == "" {
		var lines []any
		for _, l := range strings.Split(stdout, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, l)
			}
		}
		if len(lines) == 1 {
			return lines[0], nil
		}
		return lines, nil
	}

	data, err := oj.ParseString(stdout)
	if err != nil {
		return nil, fmt.Errorf("parsing command output as JSON: %w", err)
	}
	x, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("%w: bad jsonpath %q: %v", actions.ErrInvalidActionSpec, path, err)
	}
	results := x.Get(data)
	if len(results) == 1 {
		return results[0], nil
	}
	return results, nil
}

// resolveOptions builds the choices of a dropdown question.
func (e *Engine) resolveOptions(ctx context.Context, q actions.Question) ([]prompt.Option, error) {
	o := q.Options
	if len(o.Items) > 0 {
		opts := make([]prompt.Option, len(o.Items))
		for i, item := range o.Items {
			value := item.Label
			if item.Value != nil {
				value = fmt.Sprint(item.Value)
			}
			opts[i] = prompt.Option{Label: item.Label, Value: value}
		}
		return sortOptions(opts), nil
	}

	command, err := e.renderCommand(o.Exec)
	if err != nil {
		return nil, err
	}
	if e.Exec == nil {
		return nil, errors.New("no command runner configured")
	}
	stdout, err := e.Exec.Capture(ctx, command)
	if err != nil {
		return nil, fmt.Errorf("computing options for %s: %w", q.Name, err)
	}
	e.Log.Debug().Str("question", q.Name).Str("command", command).Int("bytes", len(stdout)).Msg("option command finished")

	value, err := decodeOutput(stdout, o.JSONPath)
	if err != nil {
		return nil, err
	}
	out, err := Coerce(value)
	if err != nil {
		return nil, fmt.Errorf("options for %s: %w", q.Name, err)
	}
	return out.Options(), nil
}
