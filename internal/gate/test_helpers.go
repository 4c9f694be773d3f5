package gate

import (
	"context"
	"errors"
)

// MockExecutor is a mock implementation of [Executor] for testing.
//
// It records every execution in order without spawning processes. Failures
// are injected by step name via FailOn, or wholesale via OnExecute.
type MockExecutor struct {
	// RecordedSteps records all executed steps in order.
	RecordedSteps []Step
	// RecordedEnvs records the overrides passed to each execution, one
	// entry per recorded step.
	RecordedEnvs []Overrides
	// FailOn marks step names that should fail with a generic exit error.
	FailOn map[string]bool
	// OnExecute, when set, decides each step's outcome instead of FailOn.
	OnExecute func(step Step, env Overrides) error
}

func (m *MockExecutor) Execute(ctx context.Context, step Step, env Overrides) error {
	m.RecordedSteps = append(m.RecordedSteps, step)
	m.RecordedEnvs = append(m.RecordedEnvs, env)
	if m.OnExecute != nil {
		return m.OnExecute(step, env)
	}
	if m.FailOn[step.Name] {
		return errors.New("exit status 1")
	}
	return nil
}
