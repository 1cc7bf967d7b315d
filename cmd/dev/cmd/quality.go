package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/gophertribe/devtool/test"
	"github.com/spf13/cobra"
)

// Packages talking to real buses; their hardware tests carry the integration build tag.
var busPackages = []string{"./i2c/...", "./adapter/..."}

// Environment read by the integration tests to find the hardware.
const (
	envI2CBus  = "AW9523_I2C_BUS"
	envMCP2221 = "AW9523_MCP2221"
)

type goTestOpts struct {
	Tags     string
	Race     bool
	Run      string
	Verbose  bool
	Packages []string
}

func goTestArgs(opts goTestOpts) []string {
	args := []string{"test"}
	if opts.Tags != "" {
		args = append(args, "-tags", opts.Tags)
	}
	if opts.Race {
		args = append(args, "-race")
	}
	if opts.Verbose {
		args = append(args, "-v")
	}
	if opts.Run != "" {
		args = append(args, "-run", opts.Run)
	}
	// hardware state is not cached between runs
	if opts.Tags != "" {
		args = append(args, "-count=1")
	}
	if len(opts.Packages) == 0 {
		return append(args, "./...")
	}
	return append(args, opts.Packages...)
}

func goTest(opts goTestOpts, env ...string) error {
	args := goTestArgs(opts)
	slog.Info("running go", "args", args)
	gotest := exec.Command("go", args...)
	gotest.Env = append(os.Environ(), env...)
	gotest.Stdout = os.Stdout
	gotest.Stderr = os.Stderr
	return gotest.Run()
}

func TestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test [packages]",
		Short: "Run unit tests of the driver, bus backends and cli",
		RunE: func(cmd *cobra.Command, args []string) error {
			race, _ := cmd.Flags().GetBool("race")
			run, _ := cmd.Flags().GetString("run")
			verbose, _ := cmd.Flags().GetBool("verbose")
			err := goTest(goTestOpts{Race: race, Run: run, Verbose: verbose, Packages: args})
			if err != nil {
				return fmt.Errorf("failed to run tests: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().Bool("race", true, "enable the race detector")
	cmd.Flags().String("run", "", "only run tests matching the pattern")
	cmd.Flags().BoolP("verbose", "v", false, "verbose test output")
	return cmd
}

func LintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Run linting",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := test.Lint()
			if err != nil {
				return fmt.Errorf("failed to run linting: %w", err)
			}
			return nil
		},
	}
	return cmd
}

// integrationEnv passes the selected hardware to the tagged tests; empty values are left out
// so the matching tests skip.
func integrationEnv(bus string, mcp2221 string) []string {
	var env []string
	if bus != "" {
		env = append(env, envI2CBus+"="+bus)
	}
	if mcp2221 != "" {
		env = append(env, envMCP2221+"="+mcp2221)
	}
	return env
}

func IntegrationTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integration-test",
		Short: "Run the bus tests against an attached AW9523",
		Long: `Run the tests behind the integration build tag against real hardware.

Examples:
  dev integration-test --bus /dev/i2c-1
  dev integration-test --mcp2221 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bus, _ := cmd.Flags().GetString("bus")
			mcp2221, _ := cmd.Flags().GetString("mcp2221")
			env := integrationEnv(bus, mcp2221)
			if len(env) == 0 {
				return fmt.Errorf("no hardware selected: set --bus or --mcp2221")
			}
			err := goTest(goTestOpts{Tags: "integration", Verbose: true, Packages: busPackages}, env...)
			if err != nil {
				return fmt.Errorf("failed to run integration testing: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().String("bus", os.Getenv(envI2CBus), "periph bus name the expander is wired to")
	cmd.Flags().String("mcp2221", os.Getenv(envMCP2221), "index of the MCP2221 bridge the expander is wired to")
	return cmd
}
