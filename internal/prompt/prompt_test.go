package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var colors = []Option{
	{Label: "Blue", Value: "blue"},
	{Label: "Green", Value: "green"},
	{Label: "Red", Value: "red"},
}

func TestLineAsker_Input(t *testing.T) {
	var out bytes.Buffer
	a := NewLineAsker(strings.NewReader("  orders  \n"), &out)

	got, err := a.Ask(Prompt{Name: "entity", Label: "Entity name"})
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if got.Value != "orders" {
		t.Errorf("Value = %q, want %q", got.Value, "orders")
	}
	if !strings.Contains(out.String(), "Entity name: ") {
		t.Errorf("output = %q", out.String())
	}
}

func TestLineAsker_InputWithoutTrailingNewline(t *testing.T) {
	a := NewLineAsker(strings.NewReader("last"), &bytes.Buffer{})

	got, err := a.Ask(Prompt{Name: "x"})
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if got.Value != "last" {
		t.Errorf("Value = %q", got.Value)
	}
}

func TestLineAsker_Select(t *testing.T) {
	var out bytes.Buffer
	a := NewLineAsker(strings.NewReader("2\n"), &out)

	got, err := a.Ask(Prompt{Name: "color", Kind: Select, Options: colors})
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if got.Value != "green" {
		t.Errorf("Value = %q, want green", got.Value)
	}
	if !strings.Contains(out.String(), "  3) Red") {
		t.Errorf("menu not rendered: %q", out.String())
	}
}

func TestLineAsker_SelectOutOfRange(t *testing.T) {
	a := NewLineAsker(strings.NewReader("9\n"), &bytes.Buffer{})

	if _, err := a.Ask(Prompt{Name: "color", Kind: Select, Options: colors}); err == nil {
		t.Fatal("expected error for out-of-range selection")
	}
}

func TestLineAsker_MultiSelect(t *testing.T) {
	a := NewLineAsker(strings.NewReader("3, 1,3\n"), &bytes.Buffer{})

	got, err := a.Ask(Prompt{Name: "colors", Kind: MultiSelect, Options: colors})
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	want := []string{"red", "blue"}
	if strings.Join(got.Values, ",") != strings.Join(want, ",") {
		t.Errorf("Values = %v, want %v", got.Values, want)
	}
}

func TestLineAsker_MultiSelectEmpty(t *testing.T) {
	a := NewLineAsker(strings.NewReader("\n"), &bytes.Buffer{})

	got, err := a.Ask(Prompt{Name: "colors", Kind: MultiSelect, Options: colors})
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if len(got.Values) != 0 {
		t.Errorf("Values = %v, want none", got.Values)
	}
}

func TestLineAsker_NoOptions(t *testing.T) {
	a := NewLineAsker(strings.NewReader("1\n"), &bytes.Buffer{})

	_, err := a.Ask(Prompt{Name: "empty", Kind: Select})
	if !errors.Is(err, ErrNoOptions) {
		t.Errorf("error = %v, want ErrNoOptions", err)
	}
}

func TestScripted(t *testing.T) {
	s := NewScripted(map[string]Answer{"name": {Value: "demo"}})

	got, err := s.Ask(Prompt{Name: "name"})
	if err != nil || got.Value != "demo" {
		t.Fatalf("Ask() = %+v, %v", got, err)
	}
	if _, err := s.Ask(Prompt{Name: "missing"}); err == nil {
		t.Error("expected error for unscripted prompt")
	}
	if len(s.Asked) != 2 {
		t.Errorf("Asked = %d, want 2", len(s.Asked))
	}
}

func press(m askModel, keys ...tea.KeyMsg) askModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(askModel)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestAskModel_Select(t *testing.T) {
	m := press(newAskModel(Prompt{Name: "color", Kind: Select, Options: colors}), keyDown, keyDown, keyEnter)

	if !m.done {
		t.Fatal("expected model to be done")
	}
	if got := m.answer().Value; got != "red" {
		t.Errorf("answer = %q, want red", got)
	}
}

func TestAskModel_MultiSelect(t *testing.T) {
	m := press(newAskModel(Prompt{Name: "colors", Kind: MultiSelect, Options: colors}),
		keySpace, keyDown, keyDown, keySpace, keyEnter)

	got := m.answer().Values
	if strings.Join(got, ",") != "blue,red" {
		t.Errorf("answer = %v, want [blue red]", got)
	}
}

func TestAskModel_Input(t *testing.T) {
	m := press(newAskModel(Prompt{Name: "entity"}),
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Order")}, keyEnter)

	if got := m.answer().Value; got != "Order" {
		t.Errorf("answer = %q, want Order", got)
	}
}

func TestAskModel_Abort(t *testing.T) {
	m := press(newAskModel(Prompt{Name: "color", Kind: Select, Options: colors}), keyEsc)
	if !m.aborted {
		t.Error("expected aborted")
	}
}

func TestAskModel_View(t *testing.T) {
	m := newAskModel(Prompt{Name: "colors", Label: "Pick colors", Kind: MultiSelect, Options: colors})
	view := m.View()
	for _, want := range []string{"Pick colors", "[ ] Blue", "space toggle"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestTeaAsker_NoOptions(t *testing.T) {
	a := &TeaAsker{}
	if _, err := a.Ask(Prompt{Name: "x", Kind: MultiSelect}); !errors.Is(err, ErrNoOptions) {
		t.Errorf("error = %v, want ErrNoOptions", err)
	}
}
