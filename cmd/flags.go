package cmd

import (
	"github.com/urfave/cli/v2"

	"rboot/tools/renv"
)

const categoryPackage = "Package installation: "

func projectFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "project",
		Aliases: []string{"C"},
		Usage:   "Path to the project directory",
		Value:   ".",
	}
}

func packageFlag(usage string) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:     "package",
		Aliases:  []string{"p"},
		Usage:    usage,
		Category: categoryPackage,
	}
}

func packageFileFlag(usage string) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:     "packages-file",
		Aliases:  []string{"f"},
		Usage:    usage,
		Category: categoryPackage,
	}
}

func biocPackageFlag(usage string) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:     "bioc-package",
		Aliases:  []string{"b"},
		Usage:    usage,
		Category: categoryPackage,
	}
}

func biocPackageFileFlag(usage string) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:     "bioc-packages-file",
		Usage:    usage,
		Category: categoryPackage,
	}
}

// packageListFromFlags builds a PackageList from a pair of flags, or nil
// when neither was given so callers can fall back to defaults.
func packageListFromFlags(cCtx *cli.Context, packagesFlag, filesFlag string) *renv.PackageList {
	packages := cCtx.StringSlice(packagesFlag)
	files := cCtx.StringSlice(filesFlag)
	if len(packages) == 0 && len(files) == 0 {
		return nil
	}

	return &renv.PackageList{
		Packages:         packages,
		PackageListFiles: files,
	}
}
