// Package prompt asks the operator for values. Asker is the only capability
// the action engine depends on; the terminal UI, the line-based prompter and
// the scripted test double all implement it.
package prompt

import "errors"

// Kind selects how a question is presented.
type Kind int

const (
	Input Kind = iota
	Select
	MultiSelect
)

func (k Kind) String() string {
	switch k {
	case Select:
		return "select"
	case MultiSelect:
		return "multi-select"
	default:
		return "input"
	}
}

// Option is one selectable choice.
type Option struct {
	Label string
	Value string
}

// Prompt is a single question.
type Prompt struct {
	Name    string
	Label   string
	Kind    Kind
	Options []Option
}

// Answer holds the operator's reply. Value is set for Input and Select,
// Values for MultiSelect.
type Answer struct {
	Value  string
	Values []string
}

// ErrAborted is returned when the operator cancels a prompt.
var ErrAborted = errors.New("prompt aborted")

// ErrNoOptions is returned for a selection prompt without options.
var ErrNoOptions = errors.New("no options to choose from")

// Asker obtains an answer for a prompt.
type Asker interface {
	Ask(p Prompt) (Answer, error)
}

func labelOf(p Prompt) string {
	if p.Label != "" {
		return p.Label
	}
	return p.Name
}
