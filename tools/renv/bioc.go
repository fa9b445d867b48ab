package renv

import (
	"fmt"
	"log/slog"
	"strings"

	"rboot/errors"
)

// EnsureBioconductor installs BiocManager through renv when it is not
// already available in the project library.
func (m *Manager) EnsureBioconductor() error {
	slog.Info("Ensuring BiocManager is installed")
	expr := "if (!requireNamespace(\"BiocManager\", quietly = TRUE)) renv::install(\"BiocManager\")"
	if err := m.rscript(expr); err != nil {
		return fmt.Errorf(errors.BiocManagerInstallErrorTpl, err)
	}

	return nil
}

func (m *Manager) InstallBioconductor(list *PackageList) error {
	packages, err := list.GetPackages()
	if err != nil {
		return fmt.Errorf("error occurred while parsing bioconductor packages to install: %w", err)
	}
	if len(packages) == 0 {
		slog.Debug("No bioconductor packages to install")

		return nil
	}

	slog.Info("Installing bioconductor packages: " + strings.Join(packages, ", "))
	expr := fmt.Sprintf(
		"BiocManager::install(%s, update = FALSE, ask = FALSE)",
		quoteVector(packages),
	)
	if err := m.rscript(expr); err != nil {
		return fmt.Errorf(errors.BiocPackageInstallErrorTpl, err)
	}

	return nil
}
