package main

import (
	"log"
	"log/slog"
	"os"
	"rboot/cmd"
	"runtime"

	"github.com/pterm/pterm"
)

func main() {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		log.Fatal("rboot is only supported on Linux and macOS")
	}

	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))
	slog.SetDefault(logger)

	cli := cmd.Cli()
	if err := cli.Run(os.Args); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
