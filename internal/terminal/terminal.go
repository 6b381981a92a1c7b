// Package terminal carries user-facing progress messages. It is the message
// sink handed to the generation pipeline, the artifact writer and the action
// engine; diagnostics for developers go through the logger instead.
package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Messenger prints progress messages for the operator.
type Messenger interface {
	Printf(format string, args ...any)
	Warnf(format string, args ...any)
	Successf(format string, args ...any)
}

// Writer is a Messenger backed by an io.Writer.
type Writer struct {
	w      io.Writer
	styled bool
}

// New returns a Messenger writing one line per message to w. Styling is
// applied only when styled is true.
func New(w io.Writer, styled bool) *Writer {
	return &Writer{w: w, styled: styled}
}

func (t *Writer) Printf(format string, args ...any) {
	fmt.Fprintln(t.w, fmt.Sprintf(format, args...))
}

func (t *Writer) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if t.styled {
		msg = warnStyle.Render(msg)
	}
	fmt.Fprintln(t.w, msg)
}

func (t *Writer) Successf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if t.styled {
		msg = successStyle.Render(msg)
	}
	fmt.Fprintln(t.w, msg)
}

// Noop returns a Messenger that drops every message.
func Noop() Messenger { return noop{} }

type noop struct{}

func (noop) Printf(string, ...any)   {}
func (noop) Warnf(string, ...any)    {}
func (noop) Successf(string, ...any) {}

// Recorder keeps messages in memory. Tests use it to assert on what the
// operator would have seen.
type Recorder struct {
	mu       sync.Mutex
	Lines    []string
	Warnings []string
}

func (r *Recorder) Printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

func (r *Recorder) Warnf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	r.Lines = append(r.Lines, msg)
	r.Warnings = append(r.Warnings, msg)
}

func (r *Recorder) Successf(format string, args ...any) {
	r.Printf(format, args...)
}

// Contains reports whether any recorded line contains substr.
func (r *Recorder) Contains(substr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.Lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}
