package actions

import "fmt"

// Question types.
const (
	TypeInput    = "input"
	TypeDropdown = "dropdown"
	TypePath     = "path"
)

// File is a parsed action file.
type File struct {
	Actions []Action `json:"actions"`
}

// Action is a closed union: exactly one field is set.
type Action struct {
	Define                *Define                `json:"define,omitempty"`
	Vars                  *Vars                  `json:"vars,omitempty"`
	Generate              *Generate              `json:"generate,omitempty"`
	Replace               *Replace               `json:"replace,omitempty"`
	PomUpdate             *PomUpdate             `json:"pom-update,omitempty"`
	InjectMavenDependency *InjectMavenDependency `json:"inject-maven-dependency,omitempty"`
}

// Kind returns the key of the variant that is set, or "" when none is.
func (a Action) Kind() string {
	switch {
	case a.Define != nil:
		return "define"
	case a.Vars != nil:
		return "vars"
	case a.Generate != nil:
		return "generate"
	case a.Replace != nil:
		return "replace"
	case a.PomUpdate != nil:
		return "pom-update"
	case a.InjectMavenDependency != nil:
		return "inject-maven-dependency"
	}
	return ""
}

// Validate checks that exactly one variant is set.
func (a Action) Validate() error {
	n := 0
	for _, set := range []bool{
		a.Define != nil, a.Vars != nil, a.Generate != nil,
		a.Replace != nil, a.PomUpdate != nil, a.InjectMavenDependency != nil,
	} {
		if set {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("%w: action must set exactly one variant, found %d", ErrInvalidActionSpec, n)
	}
	return nil
}

// Define asks a single free-text question.
type Define struct {
	Var DefineVar `json:"var"`
}

type DefineVar struct {
	Name string     `json:"name,omitempty"`
	From DefineFrom `json:"from"`
}

type DefineFrom struct {
	Question DefineQuestion `json:"question"`
}

type DefineQuestion struct {
	Name string `json:"name"`
	Text string `json:"text,omitempty"`
}

// VariableName is the model key the answer is stored under: the var name
// when present, otherwise the question name.
func (d Define) VariableName() string {
	if d.Var.Name != "" {
		return d.Var.Name
	}
	return d.Var.From.Question.Name
}

// Vars collects several variables.
type Vars struct {
	Questions []Question `json:"questions"`
}

type Question struct {
	Name       string      `json:"name"`
	Label      string      `json:"label,omitempty"`
	Type       string      `json:"type"`
	Options    *Options    `json:"options,omitempty"`
	Attributes *Attributes `json:"attributes,omitempty"`
}

// Multiple reports whether a dropdown accepts several selections.
func (q Question) Multiple() bool {
	return q.Attributes != nil && q.Attributes.Multiple
}

// Options lists static items or a command whose output yields the choices.
// JSONPath selects from the command's JSON output.
type Options struct {
	Items    []Item `json:"items,omitempty"`
	Exec     string `json:"exec,omitempty"`
	JSONPath string `json:"jsonpath,omitempty"`
}

// Item is a static dropdown choice. Value defaults to Label.
type Item struct {
	Label string `json:"label"`
	Value any    `json:"value,omitempty"`
}

type Attributes struct {
	Multiple bool `json:"multiple,omitempty"`
}

// Generate renders a file.
type Generate struct {
	To        string `json:"to"`
	Text      string `json:"text,omitempty"`
	From      string `json:"from,omitempty"`
	Overwrite bool   `json:"overwrite,omitempty"`
}

// Replace substitutes a regular expression in one file.
type Replace struct {
	Path            string `json:"path"`
	Regex           string `json:"regex"`
	FirstOccurrence bool   `json:"first-occurrence,omitempty"`
	Value           string `json:"value"`
}

// PomUpdate sets project metadata in pom.xml.
type PomUpdate struct {
	ProjectName        string `json:"project-name,omitempty"`
	ProjectVersion     string `json:"project-version,omitempty"`
	ProjectDescription string `json:"project-description,omitempty"`
}

// InjectMavenDependency merges a dependency fragment into pom.xml.
type InjectMavenDependency struct {
	Text string `json:"text"`
}
