package cmd

import (
	"github.com/urfave/cli/v2"

	"rboot/system"
	"rboot/tools/bootstrap"
)

func initAction(cCtx *cli.Context) error {
	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}

	cfg := bootstrap.DefaultConfig(cCtx.String("project"))
	if list := packageListFromFlags(cCtx, "package", "packages-file"); list != nil {
		cfg.Packages = list
	}
	if list := packageListFromFlags(cCtx, "bioc-package", "bioc-packages-file"); list != nil {
		cfg.BiocPackages = list
	}

	b, err := bootstrap.New(l, cfg)
	if err != nil {
		return err
	}
	if cCtx.Bool("skip-toolchain") {
		b.Toolchain = nil
	}

	return b.Run()
}
