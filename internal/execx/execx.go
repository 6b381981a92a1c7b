// Package execx runs shell commands on behalf of action files and captures
// their output.
package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Output holds the captured result of a command.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes commands through the platform shell.
type Runner struct {
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env is appended to the inherited process environment.
	Env []string
}

// Run executes command with `sh -c` (`cmd /C` on Windows). A non-zero exit is
// reported through Output.ExitCode, not as an error.
func (r *Runner) Run(ctx context.Context, command string) (*Output, error) {
	if strings.TrimSpace(command) == "" {
		return nil, errors.New("empty command")
	}
	name, args := shell(command)
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("locating shell %s: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), r.Env...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err = cmd.Run()
	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %q: %w", command, err)
	}
	return output, nil
}

// Capture runs command and returns its stdout. A non-zero exit is an error
// carrying the trimmed stderr.
func (r *Runner) Capture(ctx context.Context, command string) (string, error) {
	out, err := r.Run(ctx, command)
	if err != nil {
		return "", err
	}
	if out.ExitCode != 0 {
		return "", fmt.Errorf("command %q exited with status %d: %s",
			command, out.ExitCode, strings.TrimSpace(out.Stderr))
	}
	return out.Stdout, nil
}

func shell(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}
