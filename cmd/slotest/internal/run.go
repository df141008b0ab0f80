package internal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ESloman/cslo/internal/harness"
	"github.com/spf13/cobra"
)

func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [directory]",
		Short: "Run every test script under a directory",
		Long: `Recursively discovers test scripts under the given directory (default taken
from configuration) and runs each through the interpreter. Scripts marked
with the expected-error sentinel, or listed in the expected_errors
configuration, must exit non-zero to pass.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("interpreter") {
				cfg.Interpreter, _ = cmd.Flags().GetString("interpreter")
			}
			if cmd.Flags().Changed("check-output") {
				cfg.CheckOutput, _ = cmd.Flags().GetBool("check-output")
			}
			if cmd.Flags().Changed("parallel") {
				cfg.Parallel, _ = cmd.Flags().GetBool("parallel")
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers, _ = cmd.Flags().GetInt("workers")
			}
			if filters, _ := cmd.Flags().GetStringArray("filter"); len(filters) > 0 {
				cfg.Filters = append(cfg.Filters, filters...)
			}
			reportPath, _ := cmd.Flags().GetString("report")

			dir := cfg.TestsDir
			if len(args) == 1 {
				dir = args[0]
			}

			logger := newLogger(cmd)

			filter, err := harness.NewCaseFilter(cfg.Filters)
			if err != nil {
				return err
			}

			executor := harness.NewCaseExecutor(
				harness.NewClassifier(cfg.Marker, cfg.ExpectedErrors),
				harness.NewInterpreter(cfg.Interpreter, logger),
				harness.NewGoldenChecker(cfg.ScriptExt, cfg.GoldenExt),
				logger,
			)
			runner := harness.NewRunner(executor, filter, cfg.ScriptExt, logger)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("running tests", "dir", dir)
			report, runErr := runner.RunAll(ctx, dir, harness.Options{
				CheckOutput: cfg.CheckOutput,
				Parallel:    cfg.Parallel,
				Workers:     cfg.Workers,
			})

			if reportPath != "" {
				if err := report.Save(reportPath); err != nil {
					logger.Error("could not save report", "path", reportPath, "error", err)
				}
			}

			if runErr != nil && !errors.Is(runErr, context.Canceled) {
				return runErr
			}

			out := cmd.OutOrStdout()
			if len(report.Failed) > 0 {
				fmt.Fprintln(out, "\nSome files failed to execute:")
				for _, failed := range report.Failed {
					fmt.Fprintf(out, "- %s\n", failed)
				}
			} else if runErr == nil {
				fmt.Fprintln(out, "All files executed successfully.")
			}

			if runErr != nil {
				return fmt.Errorf("execution interrupted: %s", report.Summary())
			}
			if len(report.Failed) > 0 {
				return fmt.Errorf("%d of %d tests failed", len(report.Failed), report.Total())
			}
			return nil
		},
	}

	cmd.Flags().String("interpreter", "", "Path to the cslo interpreter binary")
	cmd.Flags().Bool("check-output", false, "Compare captured stdout against golden .out files")
	cmd.Flags().Bool("parallel", false, "Run tests on a bounded worker pool")
	cmd.Flags().Int("workers", harness.DefaultWorkers, "Worker pool size for --parallel")
	cmd.Flags().StringArray("filter", nil, "CEL expression selecting cases (repeatable); variables: name, path, dir")
	cmd.Flags().String("report", "", "Write the run report as JSON to this file")

	return cmd
}
