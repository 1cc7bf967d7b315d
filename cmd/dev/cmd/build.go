package cmd

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gophertribe/devtool/build"
)

const (
	cliBinary  = "dist/aw9523"
	cliPackage = "./cmd/aw9523"
	buildImage = "gophertribe/gobuild:1.25-bookworm"
)

type buildTarget struct {
	OS     string
	Arch   string
	Native bool
}

// resolveTarget decides between a host go build and a docker build. The cross pair only
// applies to host builds, where cgo for the hid bridge needs a matching toolchain.
func resolveTarget(goos, goarch, crossOS, crossArch string) buildTarget {
	if goos != runtime.GOOS || goarch != runtime.GOARCH {
		return buildTarget{OS: goos, Arch: goarch}
	}
	if crossOS != "" && crossArch != "" {
		return buildTarget{OS: crossOS, Arch: crossArch, Native: true}
	}
	return buildTarget{OS: goos, Arch: goarch, Native: true}
}

// dockerBuildArgs re-runs the dev tool inside the build image.
func dockerBuildArgs(version, crossOS, crossArch string) []string {
	return []string{"build", "--version", version, "--cross-os", crossOS, "--cross-arch", crossArch}
}

func BuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build aw9523 cli",
		RunE: func(cmd *cobra.Command, args []string) error {
			version := cmd.Flag("version").Value.String()
			crossOS := cmd.Flag("cross-os").Value.String()
			crossArch := cmd.Flag("cross-arch").Value.String()
			target := resolveTarget(cmd.Flag("os").Value.String(), cmd.Flag("arch").Value.String(), crossOS, crossArch)
			slog.Debug("build target", "os", target.OS, "arch", target.Arch, "native", target.Native)

			if target.Native {
				return build.GoBuild(cliBinary, cliPackage, build.GoBuildOpts{
					Version:       version,
					InjectVersion: true,
					ConfigPackage: "main",
					EnableCgo:     true,
					Arch:          target.Arch,
					OS:            target.OS,
				})
			}

			noCache, err := cmd.Flags().GetBool("no-cache")
			if err != nil {
				return fmt.Errorf("could not get no-cache flag: %w", err)
			}
			return build.Docker(cmd.Context(), fmt.Sprintf("./dev-%s-%s", target.OS, target.Arch), dockerBuildArgs(version, crossOS, crossArch), build.DockerBuildOpts{
				NoCache: noCache,
				Image:   buildImage,
			})
		},
	}
	cmd.Flags().Bool("no-cache", false, "do not use cache when building the app")
	cmd.Flags().String("version", "latest", "version of the cli")
	cmd.Flags().String("os", runtime.GOOS, "os to build for")
	cmd.Flags().String("arch", runtime.GOARCH, "arch to build for")
	cmd.Flags().String("cross-os", "", "os to cross-compile for")
	cmd.Flags().String("cross-arch", "", "arch to cross-compile for")

	return cmd
}
