package cli

import (
	"context"
	"errors"

	"commitgate/internal/gate"
)

// MockGateRunner is a mock for testing.
type MockGateRunner struct {
	// RecordedSteps records the steps passed to Run, in order.
	RecordedSteps []gate.Step
	// RecordedEnv records the environment overrides passed to Run.
	RecordedEnv gate.Overrides
	// FailOn names the steps that should be reported as failed.
	FailOn map[string]bool
	// Err, when set, is returned instead of a report.
	Err error
}

func (m *MockGateRunner) Run(ctx context.Context, steps []gate.Step, env gate.Overrides) (gate.Report, error) {
	m.RecordedSteps = append(m.RecordedSteps, steps...)
	m.RecordedEnv = env

	if m.Err != nil {
		return gate.Report{}, m.Err
	}

	report := gate.Report{}
	for _, step := range steps {
		res := gate.Result{Step: step}
		if m.FailOn[step.Name] {
			res.Err = errors.New("exit status 1")
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}
