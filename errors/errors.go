package errors

import (
	"fmt"
	"strings"
)

// Delegated package-manager failures are wrapped with these so the
// underlying exit status surfaces unchanged.

var RenvInitErrorTpl = "failed to initialize renv: %w"
var PackageInstallErrorTpl = "failed to install packages: %w"
var BiocManagerInstallErrorTpl = "failed to install BiocManager: %w"
var BiocPackageInstallErrorTpl = "failed to install bioconductor packages: %w"
var SnapshotErrorTpl = "failed to snapshot dependencies: %w"

type MissingRuntimeError struct {
	Minimum string
}

func (e *MissingRuntimeError) Error() string {
	return fmt.Sprintf(
		"R runtime not found on PATH: install R >= %s from https://cran.r-project.org",
		e.Minimum,
	)
}

type SdkMissingError struct {
	Path string
}

func (e *SdkMissingError) Error() string {
	return fmt.Sprintf(
		"command line tools SDK not found at %s, run 'xcode-select --install' to install it",
		e.Path,
	)
}

type UnsupportedOSError struct {
	Vendor  string
	Version string
}

func (e *UnsupportedOSError) Error() string {
	return strings.TrimSpace(fmt.Sprintf("unsupported os %s %s", e.Vendor, e.Version))
}
