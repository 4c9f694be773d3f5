// Package cli wires commitgate's command-line interface.
//
// The [App] struct carries the dependencies the root command needs:
// loaded configuration, a [GateRunner], and the output printer. Commands
// receive an *App so tests can substitute mocks for any dependency.
//
// Key types:
//   - [App]: dependency container for commands
//   - [GateRunner]: interface over the verification pipeline
//   - [ExitError]: error carrying an exit code through cobra
//   - [ExecuteResult]: outcome of a CLI invocation
package cli

import (
	"context"

	"commitgate/internal/config"
	"commitgate/internal/execute"
	"commitgate/internal/gate"
	"commitgate/internal/output"
)

// GateRunner runs a sequence of verification steps and reports the
// outcome. The [gate.Runner] type implements this interface; tests
// substitute [MockGateRunner].
type GateRunner interface {
	Run(ctx context.Context, steps []gate.Step, env gate.Overrides) (gate.Report, error)
}

// App holds the wired dependencies for CLI commands.
type App struct {
	Config  *config.Config
	Runner  GateRunner
	Printer *output.Printer
}

// NewApp creates an App with production dependencies built from cfg.
func NewApp(cfg *config.Config) *App {
	executor := execute.NewExecutor()
	executor.Dir = cfg.Cargo.Dir

	printer := output.NewPrinter()
	printer.SetPlain(cfg.Output.Plain)

	runner := gate.NewRunner(executor)
	runner.SetProgressCallback(printer.StepStart)

	return &App{
		Config:  cfg,
		Runner:  runner,
		Printer: printer,
	}
}
