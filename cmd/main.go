package cmd

import (
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

func Cli() *cli.App {
	app := &cli.App{
		Name:        "rboot",
		Usage:       "R environment bootstrapper",
		Description: "Bootstrap a statistical-analysis research environment: verify the R runtime, patch the macOS compiler toolchain configuration, and install and snapshot project dependencies",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug mode",
				Action: func(c *cli.Context, debugMode bool) error {
					if debugMode {
						slog.Info("Debug mode enabled")
						pterm.DefaultLogger.Level = pterm.LogLevelDebug
					}
					return nil
				},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Run the full environment bootstrap",
				Flags: []cli.Flag{
					projectFlag(),
					packageFlag("Package(s) to install instead of the default set"),
					packageFileFlag("Path to file(s) listing packages to install"),
					biocPackageFlag("Bioconductor package(s) to install instead of the default set"),
					biocPackageFileFlag("Path to file(s) listing Bioconductor packages to install"),
					&cli.BoolFlag{
						Name:  "skip-toolchain",
						Usage: "Skip the compiler toolchain configuration patch",
					},
				},
				Action: initAction,
			},
			{
				Name:     "runtime",
				Usage:    "Inspect the R runtime",
				Category: "environment",
				Subcommands: []*cli.Command{
					{
						Name:   "check",
						Usage:  "Verify the R runtime is installed and report its version",
						Action: runtimeCheck,
					},
				},
			},
			{
				Name:     "toolchain",
				Usage:    "Manage the compiler toolchain configuration",
				Category: "environment",
				Subcommands: []*cli.Command{
					{
						Name:   "patch",
						Usage:  "Append clang toolchain flags to the R Makevars (macOS only)",
						Action: toolchainPatch,
					},
					{
						Name:   "status",
						Usage:  "Report whether the Makevars already carries the toolchain flags",
						Action: toolchainStatus,
					},
				},
			},
			{
				Name:     "packages",
				Usage:    "Install project packages and manage the lockfile",
				Category: "packages",
				Subcommands: []*cli.Command{
					{
						Name:  "install",
						Usage: "Install packages into the renv project library",
						Flags: []cli.Flag{
							projectFlag(),
							packageFlag("Package(s) to install"),
							packageFileFlag("Path to file(s) listing packages to install"),
							biocPackageFlag("Bioconductor package(s) to install"),
							biocPackageFileFlag("Path to file(s) listing Bioconductor packages to install"),
						},
						Action: packagesInstall,
					},
					{
						Name:  "snapshot",
						Usage: "Snapshot the resolved dependencies into the lockfile",
						Flags: []cli.Flag{
							projectFlag(),
						},
						Action: packagesSnapshot,
					},
				},
			},
		},
	}
	return app
}
