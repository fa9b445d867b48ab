package cmd

import (
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"rboot/system"
	"rboot/toolchain"
)

func toolchainPatch(cCtx *cli.Context) error {
	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}
	if l.OS != "darwin" {
		slog.Info("Toolchain configuration patch only applies to macOS, nothing to do")

		return nil
	}

	return toolchain.NewPatcher(l.Home).Apply()
}

func toolchainStatus(cCtx *cli.Context) error {
	l, err := system.GetLocalSystem()
	if err != nil {
		return err
	}

	p := toolchain.NewPatcher(l.Home)
	applied, err := p.Applied()
	if err != nil {
		return err
	}

	if applied {
		pterm.Success.Println("Toolchain flags present in " + p.ConfigPath)
	} else {
		pterm.Info.Println("Toolchain flags not present in " + p.ConfigPath)
	}

	return nil
}
