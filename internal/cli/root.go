package cli

import (
	"github.com/spf13/cobra"

	"commitgate/internal/gate"
)

// NewRootCommand creates the commitgate root command. Running it
// executes every pre-commit check and prints the summary.
func NewRootCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "commitgate",
		Short: "Run every pre-commit check for the Cargo workspace",
		Long: `Run the pre-commit verification pipeline for the Cargo workspace:
  1. cargo fmt -- --check - Verify formatting
  2. cargo check          - Type-check the workspace
  3. cargo clippy         - Lint
  4. cargo test           - Run the test suite

Every check runs even when an earlier one fails, so one run reports
all problems. Warnings count as errors via RUSTFLAGS. The exit code
is 0 only when every check passes.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			steps := gate.DefaultSteps(app.Config.Cargo.BinaryPath)

			report, err := app.Runner.Run(ctx, steps, gate.DenyWarnings())
			if err != nil {
				return err
			}

			app.Printer.Summary(report)
			if report.Failed() {
				return NewExitError(report.ExitCode())
			}
			return nil
		},
	}
}
