package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineAsker prompts with numbered menus on a plain reader/writer pair. It is
// used when stdin is not a terminal.
type LineAsker struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLineAsker returns a LineAsker reading answers from r.
func NewLineAsker(r io.Reader, w io.Writer) *LineAsker {
	return &LineAsker{reader: bufio.NewReader(r), w: w}
}

func (a *LineAsker) Ask(p Prompt) (Answer, error) {
	switch p.Kind {
	case Select:
		idx, err := a.selectOne(labelOf(p), p.Options)
		if err != nil {
			return Answer{}, err
		}
		return Answer{Value: p.Options[idx].Value}, nil
	case MultiSelect:
		idxs, err := a.selectMany(labelOf(p), p.Options)
		if err != nil {
			return Answer{}, err
		}
		values := make([]string, len(idxs))
		for i, idx := range idxs {
			values[i] = p.Options[idx].Value
		}
		return Answer{Values: values}, nil
	default:
		fmt.Fprintf(a.w, "%s: ", labelOf(p))
		line, err := a.readLine()
		if err != nil {
			return Answer{}, fmt.Errorf("reading %s: %w", p.Name, err)
		}
		return Answer{Value: line}, nil
	}
}

func (a *LineAsker) readLine() (string, error) {
	line, err := a.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *LineAsker) list(label string, options []Option) {
	fmt.Fprintf(a.w, "\n%s\n", label)
	for i, o := range options {
		fmt.Fprintf(a.w, "  %d) %s\n", i+1, o.Label)
	}
}

// selectOne presents a numbered list and returns the selected index.
func (a *LineAsker) selectOne(label string, options []Option) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}
	a.list(label, options)
	fmt.Fprintf(a.w, "Enter number [1-%d]: ", len(options))

	line, err := a.readLine()
	if err != nil {
		return 0, fmt.Errorf("reading selection: %w", err)
	}
	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(options) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", line, len(options))
	}
	return num - 1, nil
}

// selectMany accepts a comma-separated list of numbers. An empty line selects
// nothing.
func (a *LineAsker) selectMany(label string, options []Option) ([]int, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}
	a.list(label, options)
	fmt.Fprintf(a.w, "Enter numbers separated by commas [1-%d]: ", len(options))

	line, err := a.readLine()
	if err != nil {
		return nil, fmt.Errorf("reading selection: %w", err)
	}
	if line == "" {
		return nil, nil
	}

	seen := map[int]bool{}
	var idxs []int
	for _, field := range strings.Split(line, ",") {
		field = strings.TrimSpace(field)
		num, err := strconv.Atoi(field)
		if err != nil || num < 1 || num > len(options) {
			return nil, fmt.Errorf("invalid selection %q: choose 1-%d", field, len(options))
		}
		if !seen[num] {
			seen[num] = true
			idxs = append(idxs, num-1)
		}
	}
	return idxs, nil
}
