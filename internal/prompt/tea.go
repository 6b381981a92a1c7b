package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// TeaAsker renders each prompt as a small bubbletea program.
type TeaAsker struct {
	In  io.Reader
	Out io.Writer
}

func (a *TeaAsker) Ask(p Prompt) (Answer, error) {
	if p.Kind != Input && len(p.Options) == 0 {
		return Answer{}, ErrNoOptions
	}

	var opts []tea.ProgramOption
	if a.In != nil {
		opts = append(opts, tea.WithInput(a.In))
	}
	if a.Out != nil {
		opts = append(opts, tea.WithOutput(a.Out))
	}

	final, err := tea.NewProgram(newAskModel(p), opts...).Run()
	if err != nil {
		return Answer{}, fmt.Errorf("prompting for %s: %w", p.Name, err)
	}
	m := final.(askModel)
	if m.aborted {
		return Answer{}, ErrAborted
	}
	return m.answer(), nil
}

type askModel struct {
	prompt  Prompt
	input   textinput.Model
	cursor  int
	chosen  map[int]bool
	done    bool
	aborted bool
}

func newAskModel(p Prompt) askModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 512
	ti.Width = 60
	ti.Focus()
	return askModel{prompt: p, input: ti, chosen: map[int]bool{}}
}

func (m askModel) Init() tea.Cmd {
	if m.prompt.Kind == Input {
		return textinput.Blink
	}
	return nil
}

func (m askModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.prompt.Kind == Input {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	}

	if m.prompt.Kind == Input {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.prompt.Options)-1 {
			m.cursor++
		}
	case " ", "space", "x":
		if m.prompt.Kind == MultiSelect {
			m.chosen[m.cursor] = !m.chosen[m.cursor]
		}
	}
	return m, nil
}

func (m askModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	var b strings.Builder
	b.WriteString(labelStyle.Render(labelOf(m.prompt)))
	b.WriteString("\n")

	switch m.prompt.Kind {
	case Input:
		b.WriteString(m.input.View())
		b.WriteString("\n")
	default:
		for i, o := range m.prompt.Options {
			pointer := "  "
			if i == m.cursor {
				pointer = cursorStyle.Render("> ")
			}
			box := ""
			if m.prompt.Kind == MultiSelect {
				box = "[ ] "
				if m.chosen[i] {
					box = "[x] "
				}
			}
			fmt.Fprintf(&b, "%s%s%s\n", pointer, box, o.Label)
		}
		hint := "↑/↓ move, enter select, esc cancel"
		if m.prompt.Kind == MultiSelect {
			hint = "↑/↓ move, space toggle, enter confirm, esc cancel"
		}
		b.WriteString(hintStyle.Render(hint))
		b.WriteString("\n")
	}
	return b.String()
}

func (m askModel) answer() Answer {
	switch m.prompt.Kind {
	case Select:
		return Answer{Value: m.prompt.Options[m.cursor].Value}
	case MultiSelect:
		var values []string
		for i, o := range m.prompt.Options {
			if m.chosen[i] {
				values = append(values, o.Value)
			}
		}
		return Answer{Values: values}
	default:
		return Answer{Value: strings.TrimSpace(m.input.Value())}
	}
}
