package internal

import (
	"fmt"
	"os"

	"github.com/ESloman/cslo/internal/config"
	"github.com/ESloman/cslo/internal/harness"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slotest",
		Short: "slotest is the conformance test harness for the cslo interpreter.",
		Long: `slotest discovers .slo test scripts, runs each through the cslo interpreter,
and classifies the result as pass, expected failure, or unexpected failure.
Captured output can be compared against golden .out files, and runs can be
parallelized across a bounded worker pool.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to the slotest.yml configuration file")
	cmd.PersistentFlags().Bool("verbose", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewPublishCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: an explicit --config path
// must load, a slotest.yml in the working directory is picked up when
// present, and otherwise the defaults apply.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.InheritedFlags().GetString("config")
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat("slotest.yml"); err == nil {
		return config.Load("slotest.yml")
	}
	return config.Default(), nil
}

// newLogger builds the CLI logger honoring --verbose and --debug.
func newLogger(cmd *cobra.Command) harness.Logger {
	debug, _ := cmd.InheritedFlags().GetBool("debug")
	verbose, _ := cmd.InheritedFlags().GetBool("verbose")

	level := harness.LevelInfo
	if verbose {
		level = harness.LevelVerbose
	}
	if debug {
		level = harness.LevelDebug
	}
	return harness.NewStderrLogger(level)
}
