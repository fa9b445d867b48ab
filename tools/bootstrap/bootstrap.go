package bootstrap

import (
	"fmt"
	"log/slog"

	"rboot/system"
	"rboot/toolchain"
	"rboot/tools/r"
	"rboot/tools/renv"
)

// Runtime is the slice of the R interpreter the bootstrapper needs.
type Runtime interface {
	Version() (string, error)
}

// Toolchain applies the platform compiler configuration patch.
type Toolchain interface {
	Apply() error
}

type Bootstrapper struct {
	System    *system.LocalSystem
	Runtime   Runtime
	Toolchain Toolchain
	Installer renv.Installer
	Config    *Config
}

// New resolves the R runtime and wires the production collaborators. A
// missing runtime fails here, before any file or package operation.
func New(l *system.LocalSystem, cfg *Config) (*Bootstrapper, error) {
	interp, err := r.Find()
	if err != nil {
		return nil, err
	}

	return &Bootstrapper{
		System:    l,
		Runtime:   interp,
		Toolchain: toolchain.NewPatcher(l.Home),
		Installer: renv.NewManager(interp, cfg.ProjectDir),
		Config:    cfg,
	}, nil
}

// Run performs the bootstrap sequence. Every step is idempotent, so the
// whole command is safe to re-run; the first failing step aborts the
// rest.
func (b *Bootstrapper) Run() error {
	version, err := b.Runtime.Version()
	if err != nil {
		slog.Warn("Could not determine R version: " + err.Error())
	} else {
		slog.Info("Using R " + version)
		if r.OlderThan(version, r.MinimumVersion) {
			slog.Warn(fmt.Sprintf("R %s is older than the recommended minimum %s", version, r.MinimumVersion))
		}
	}

	if b.System.OS == "darwin" && b.Toolchain != nil {
		if err := b.Toolchain.Apply(); err != nil {
			return fmt.Errorf("failed to patch compiler toolchain configuration: %w", err)
		}
	} else {
		slog.Debug("Skipping toolchain configuration patch on " + b.System.OS)
	}

	if err := b.Installer.EnsureInitialized(); err != nil {
		return err
	}
	if err := b.Installer.Install(b.Config.Packages); err != nil {
		return err
	}
	if err := b.Installer.EnsureBioconductor(); err != nil {
		return err
	}
	if err := b.Installer.InstallBioconductor(b.Config.BiocPackages); err != nil {
		return err
	}
	if err := b.Installer.Snapshot(); err != nil {
		return err
	}

	slog.Info("Environment bootstrap complete")

	return nil
}
