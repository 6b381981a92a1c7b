package prompt

import "fmt"

// Scripted answers prompts from a fixed table keyed by prompt name and
// records every prompt it was asked.
type Scripted struct {
	Answers map[string]Answer
	Asked   []Prompt
}

// NewScripted returns a Scripted asker with the given answers.
func NewScripted(answers map[string]Answer) *Scripted {
	return &Scripted{Answers: answers}
}

func (s *Scripted) Ask(p Prompt) (Answer, error) {
	s.Asked = append(s.Asked, p)
	a, ok := s.Answers[p.Name]
	if !ok {
		return Answer{}, fmt.Errorf("no scripted answer for %q", p.Name)
	}
	return a, nil
}
