package engine

import (
	"context"
	"fmt"

	"github.com/bootforge/bootforge/internal/actions"
	"github.com/bootforge/bootforge/internal/model"
	"github.com/bootforge/bootforge/internal/prompt"
)

// Define asks one free-text question and stores the answer.
func (e *Engine) Define(d actions.Define) error {
	e.init()
	name := d.VariableName()
	if name == "" {
		return fmt.Errorf("%w: define without a variable name", actions.ErrInvalidActionSpec)
	}
	label := d.Var.From.Question.Text
	if label == "" {
		label = name
	}
	ans, err := e.ask(prompt.Prompt{Name: name, Label: label, Kind: prompt.Input})
	if err != nil {
		return err
	}
	return e.collect(name, model.Infer(ans.Value))
}

// Vars validates every question, then asks them in order.
func (e *Engine) Vars(ctx context.Context, v actions.Vars) error {
	e.init()
	if err := validateQuestions(v.Questions); err != nil {
		return err
	}
	for _, q := range v.Questions {
		if err := e.question(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func validateQuestions(qs []actions.Question) error {
	for _, q := range qs {
		switch q.Type {
		case actions.TypeInput, actions.TypePath:
		case actions.TypeDropdown:
			if q.Options == nil || (len(q.Options.Items) == 0 && q.Options.Exec == "") {
				return fmt.Errorf("%w: dropdown question %q has no options", actions.ErrInvalidActionSpec, labelOf(q))
			}
		default:
			return fmt.Errorf("%w: invalid type %q for question with label %q",
				actions.ErrInvalidActionSpec, q.Type, labelOf(q))
		}
	}
	return nil
}

func labelOf(q actions.Question) string {
	if q.Label != "" {
		return q.Label
	}
	return q.Name
}

func (e *Engine) question(ctx context.Context, q actions.Question) error {
	switch q.Type {
	case actions.TypeInput:
		ans, err := e.ask(prompt.Prompt{Name: q.Name, Label: labelOf(q), Kind: prompt.Input})
		if err != nil {
			return err
		}
		return e.collect(q.Name, model.Infer(ans.Value))

	case actions.TypeDropdown:
		opts, err := e.resolveOptions(ctx, q)
		if err != nil {
			return err
		}
		kind := prompt.Select
		if q.Multiple() {
			kind = prompt.MultiSelect
		}
		ans, err := e.ask(prompt.Prompt{Name: q.Name, Label: labelOf(q), Kind: kind, Options: opts})
		if err != nil {
			return err
		}
		if kind == prompt.MultiSelect {
			return e.collect(q.Name, model.InferAll(ans.Values))
		}
		return e.collect(q.Name, model.Infer(ans.Value))

	default:
		e.Log.Debug().Str("question", q.Name).Msg("path question skipped")
		return nil
	}
}

func (e *Engine) ask(p prompt.Prompt) (prompt.Answer, error) {
	if e.Asker == nil {
		return prompt.Answer{}, fmt.Errorf("no prompter available for %q", p.Name)
	}
	ans, err := e.Asker.Ask(p)
	if err != nil {
		return prompt.Answer{}, fmt.Errorf("asking %s: %w", p.Name, err)
	}
	return ans, nil
}

// collect writes a value into the model and the role store.
func (e *Engine) collect(name string, value any) error {
	e.Model.Set(name, value)
	e.Log.Debug().Str("variable", name).Interface("value", value).Str("type", fmt.Sprintf("%T", value)).Msg("collected")
	if e.Store == nil {
		return nil
	}
	if err := e.Store.Update(e.Role, name, value); err != nil {
		return fmt.Errorf("saving %s: %w", name, err)
	}
	return nil
}
