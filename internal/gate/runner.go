package gate

import (
	"context"
	"errors"
)

// ErrNoSteps is a sentinel error indicating a run was requested with an
// empty step list. The pipeline contract requires at least one step, so an
// empty list is a wiring mistake rather than a passing run.
var ErrNoSteps = errors.New("no steps to run")

// Executor is the interface for running a single step to completion.
//
// Execute spawns the step's command with the overrides merged into the
// child environment and blocks until the process terminates. A nil return
// means the step passed. Any non-nil error means the step failed, covering
// both a non-zero exit and a command that could not be started; the gate
// does not distinguish the two. The [execute.CommandExecutor] type
// implements this interface.
type Executor interface {
	Execute(ctx context.Context, step Step, env Overrides) error
}

// ProgressCallback is invoked before each step begins execution.
//
// The callback receives stepIndex (1-based), totalSteps count, and the step
// about to run. This enables progress reporting in the terminal. The
// callback is optional and can be set via [Runner.SetProgressCallback].
type ProgressCallback func(stepIndex, totalSteps int, step Step)

// Runner executes a gate pipeline: every step, in declared order, with no
// short-circuit on failure.
//
// Runner uses dependency injection for testability: an [Executor] spawns
// the actual processes. Use [NewRunner] to create an instance and
// [Runner.Run] to execute a step list.
type Runner struct {
	executor         Executor
	progressCallback ProgressCallback
}

// NewRunner creates a new Runner that spawns steps through the given
// executor.
func NewRunner(executor Executor) *Runner {
	return &Runner{executor: executor}
}

// SetProgressCallback configures an optional progress callback for step
// execution.
//
// The callback receives the step index (1-based), total step count, and the
// step itself immediately before each step starts. This is typically used
// to print the step banner in the terminal.
func (r *Runner) SetProgressCallback(cb ProgressCallback) {
	r.progressCallback = cb
}

// Run executes every step in declared order and returns the collected
// [Report].
//
// The overrides are handed to the executor on every invocation, first step
// included, so the whole run sees one uniform environment. A failing step
// never stops the run: its result is recorded and the next step starts.
// Each step runs to full termination before the next begins; there is no
// timeout, and cancellation happens only through whatever the executor
// honors from ctx.
//
// The returned error is [ErrNoSteps] for an empty step list and nil
// otherwise. Per-step failures are reported through [Report.Failed], not
// through the error return.
func (r *Runner) Run(ctx context.Context, steps []Step, env Overrides) (Report, error) {
	if len(steps) == 0 {
		return Report{}, ErrNoSteps
	}

	report := Report{Results: make([]Result, 0, len(steps))}
	for i, step := range steps {
		if r.progressCallback != nil {
			r.progressCallback(i+1, len(steps), step)
		}

		err := r.executor.Execute(ctx, step, env)
		report.Results = append(report.Results, Result{Step: step, Err: err})
	}

	return report, nil
}
