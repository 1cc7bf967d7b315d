package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mklimuk/aw9523/cmd/dev/cmd"
	"github.com/mklimuk/aw9523/internal/logging"
)

var (
	debug   bool
	version string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dev",
		Short: "build/test/lint tool for the aw9523 driver",
		Long:  "Builds the aw9523 cli and runs the driver tests, including the hardware bus tests behind the integration tag",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup("dev", debug)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&version, "version", "latest", "Version for build")

	rootCmd.AddCommand(cmd.BuildCmd())
	rootCmd.AddCommand(cmd.ChangelogCmd())
	rootCmd.AddCommand(cmd.TestCmd())
	rootCmd.AddCommand(cmd.LintCmd())
	rootCmd.AddCommand(cmd.IntegrationTestCmd())

	err := rootCmd.Execute()
	if err != nil {
		slog.Error("unexpected error", "error", err)
		os.Exit(1)
	}
}
