package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"rboot/tools/r"
)

func runtimeCheck(cCtx *cli.Context) error {
	interp, err := r.Find()
	if err != nil {
		return err
	}

	version, err := interp.Version()
	if err != nil {
		return err
	}

	pterm.Success.Println("R " + version + " found at " + interp.Path)
	if r.OlderThan(version, r.MinimumVersion) {
		pterm.Warning.Println(fmt.Sprintf("R %s is older than the recommended minimum %s", version, r.MinimumVersion))
	}

	return nil
}
