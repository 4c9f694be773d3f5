// Package gate implements the pre-commit verification pipeline.
//
// A gate run executes a fixed, ordered list of verification commands
// (format check, build check, lint, test suite) against the workspace.
// Every step runs to completion regardless of earlier failures, and the
// aggregate status is a pure OR over per-step failures: one failed step
// fails the run no matter how many later steps succeed.
//
// Key types:
//   - [Step] is a single verification command (identifier plus argv)
//   - [Overrides] is the environment applied to every spawned step
//   - [Runner] executes steps sequentially and aggregates their outcomes
//   - [Report] holds per-step results and yields the final exit code
//
// For testing, use [MockExecutor] which implements [Executor] without
// spawning real processes.
package gate

import (
	"slices"
	"strings"
)

// Step is a single verification command in the gate pipeline.
//
// A step is a small record rather than a raw command line: Command holds the
// executable and its arguments already split, so spawning a step involves no
// shell and no re-parsing. Name identifies the step in progress and summary
// output and is conventionally the command line itself.
type Step struct {
	// Name is the human-readable identifier shown in progress and summary
	// lines. [NewStep] sets it to the space-joined command.
	Name string

	// Command is the executable followed by its arguments, handed to the
	// process spawner as-is.
	Command []string
}

// NewStep builds a [Step] whose Name is the space-joined command line.
func NewStep(command ...string) Step {
	return Step{
		Name:    strings.Join(command, " "),
		Command: command,
	}
}

// Overrides is a set of environment variables applied to every step in a run.
//
// Overrides travel explicitly with the run: the runner hands them to the
// [Executor] on each invocation and never mutates its own process
// environment. Treat a constructed Overrides value as read-only.
type Overrides map[string]string

// Environ renders the overrides as "KEY=VALUE" pairs in sorted order,
// suitable for appending to a child process environment. Returns nil when
// there are no overrides.
func (o Overrides) Environ() []string {
	if len(o) == 0 {
		return nil
	}
	pairs := make([]string, 0, len(o))
	for k, v := range o {
		pairs = append(pairs, k+"="+v)
	}
	slices.Sort(pairs)
	return pairs
}

// DenyWarnings returns the production override set: RUSTFLAGS instructing
// every rustc invocation in the run to treat warnings as errors.
func DenyWarnings() Overrides {
	return Overrides{"RUSTFLAGS": "-D warnings"}
}

// DefaultSteps returns the fixed verification pipeline for a Cargo
// workspace, in execution order:
//
//  1. cargo fmt -- --check   (formatting)
//  2. cargo check            (types and build)
//  3. cargo clippy           (lints)
//  4. cargo test             (test suite)
//
// The cargo argument is the binary to invoke, typically "cargo" resolved
// through PATH or the configured cargo.binary_path. The list itself is
// compiled in and not configurable at runtime.
func DefaultSteps(cargo string) []Step {
	return []Step{
		NewStep(cargo, "fmt", "--", "--check"),
		NewStep(cargo, "check"),
		NewStep(cargo, "clippy"),
		NewStep(cargo, "test"),
	}
}
