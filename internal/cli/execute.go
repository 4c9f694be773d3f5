package cli

import (
	"fmt"
	"os"

	"commitgate/internal/config"
)

// ExecuteResult carries the outcome of a CLI invocation.
type ExecuteResult struct {
	// ExitCode is the code the process should exit with.
	ExitCode int
	// Err is the error returned by the command, if any.
	Err error
}

// RunWithConfig builds the application from cfg and runs the root command
// with the given arguments. It never calls os.Exit, so callers and tests
// can inspect the returned result.
func RunWithConfig(cfg *config.Config, args []string) ExecuteResult {
	app := NewApp(cfg)

	rootCmd := NewRootCommand(app)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		if code, ok := IsExitError(err); ok {
			return ExecuteResult{ExitCode: code, Err: err}
		}
		return ExecuteResult{ExitCode: 1, Err: err}
	}
	return ExecuteResult{ExitCode: 0}
}

// Execute loads configuration, runs the CLI with os.Args, and exits the
// process with the resulting code. It is the entry point called by main.
func Execute() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := RunWithConfig(cfg, os.Args[1:])
	if result.Err != nil {
		// Failed checks already printed their summary; only surface
		// errors that never reached the pipeline.
		if _, ok := IsExitError(result.Err); !ok {
			fmt.Fprintf(os.Stderr, "Error: %v\n", result.Err)
		}
	}
	os.Exit(result.ExitCode)
}
