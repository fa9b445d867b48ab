package cmd

import (
	"github.com/urfave/cli/v2"

	"rboot/tools/r"
	"rboot/tools/renv"
)

func packagesInstall(cCtx *cli.Context) error {
	interp, err := r.Find()
	if err != nil {
		return err
	}

	m := renv.NewManager(interp, cCtx.String("project"))
	if err := m.EnsureInitialized(); err != nil {
		return err
	}

	if list := packageListFromFlags(cCtx, "package", "packages-file"); list != nil {
		if err := m.Install(list); err != nil {
			return err
		}
	}

	if list := packageListFromFlags(cCtx, "bioc-package", "bioc-packages-file"); list != nil {
		if err := m.EnsureBioconductor(); err != nil {
			return err
		}
		if err := m.InstallBioconductor(list); err != nil {
			return err
		}
	}

	return nil
}

func packagesSnapshot(cCtx *cli.Context) error {
	interp, err := r.Find()
	if err != nil {
		return err
	}

	return renv.NewManager(interp, cCtx.String("project")).Snapshot()
}
