// Package execute spawns verification commands as child processes.
//
// The package provides [CommandExecutor], the production implementation of
// the gate's executor contract. Each command runs to completion with its
// stdio streams passed through untouched; the executor never buffers,
// parses, or reinterprets what the child prints. Environment overrides are
// merged into the child's environment at spawn time, leaving the gate's own
// process environment unmodified.
package execute

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"commitgate/internal/gate"
)

// CommandExecutor implements [gate.Executor] by spawning real processes.
//
// Dir, when non-empty, is the working directory for every spawned command.
// Use [NewExecutor] to get an instance wired to the gate's own stdio.
type CommandExecutor struct {
	// Dir is the working directory for spawned commands.
	// Empty means commands inherit the gate's working directory.
	Dir string

	// Stdin, Stdout, and Stderr are connected to the child process
	// unbuffered.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecutor creates a [CommandExecutor] connected to the gate's own stdio
// streams.
func NewExecutor() *CommandExecutor {
	return &CommandExecutor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Execute runs one step to completion.
//
// The child inherits the gate's environment with env merged on top; os/exec
// keeps the last duplicate of a key, so the overrides win. The returned
// error is exec's own: nil for a zero exit, an *exec.ExitError for a
// non-zero exit or abnormal termination, and a lookup error when the
// command cannot be started at all. Callers treat every non-nil error as
// the same single failure category.
func (e *CommandExecutor) Execute(ctx context.Context, step gate.Step, env gate.Overrides) error {
	if len(step.Command) == 0 {
		return fmt.Errorf("step %q has no command", step.Name)
	}

	cmd := exec.CommandContext(ctx, step.Command[0], step.Command[1:]...)
	cmd.Dir = e.Dir
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	cmd.Env = append(os.Environ(), env.Environ()...)

	return cmd.Run()
}
