package toolchain

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"rboot/errors"
	"rboot/system/file"
)

const (
	// DefaultSdkPath is where xcode-select installs the Command Line
	// Tools SDK.
	DefaultSdkPath = "/Library/Developer/CommandLineTools/SDKs/MacOSX.sdk"

	// Marker guards the appended block: a Makevars containing it is
	// never patched again.
	Marker = "## rboot: clang toolchain flags"
)

// Patcher appends clang build flags pointing at the Command Line Tools
// SDK to the user's R Makevars. Required on macOS so R packages with
// compiled code find the system headers and libraries.
type Patcher struct {
	SdkPath    string
	ConfigDir  string
	ConfigPath string
}

func NewPatcher(home string) *Patcher {
	configDir := filepath.Join(home, ".R")

	return &Patcher{
		SdkPath:    DefaultSdkPath,
		ConfigDir:  configDir,
		ConfigPath: filepath.Join(configDir, "Makevars"),
	}
}

func (p *Patcher) block() string {
	return fmt.Sprintf(
		"\n%s\nCPPFLAGS += -isysroot %s\nCFLAGS += -isysroot %s\nCXXFLAGS += -isysroot %s\nLDFLAGS += -L%s/usr/lib\n",
		Marker, p.SdkPath, p.SdkPath, p.SdkPath, p.SdkPath,
	)
}

// Applied reports whether the Makevars already carries the patch block.
func (p *Patcher) Applied() (bool, error) {
	return file.ContainsString(p.ConfigPath, Marker)
}

// Apply patches the Makevars once. A missing SDK is a warning, not a
// failure: the rest of the bootstrap can proceed without it.
func (p *Patcher) Apply() error {
	sdkExists, err := file.IsPathExist(p.SdkPath)
	if err != nil {
		return fmt.Errorf("failed to check for SDK at '%s': %w", p.SdkPath, err)
	}
	if !sdkExists {
		sdkErr := &errors.SdkMissingError{Path: p.SdkPath}
		slog.Warn(sdkErr.Error())

		return nil
	}

	applied, err := p.Applied()
	if err != nil {
		return fmt.Errorf("failed to check '%s' for existing toolchain flags: %w", p.ConfigPath, err)
	}
	if applied {
		slog.Info("Toolchain flags already present in " + p.ConfigPath + ", skipping")

		return nil
	}

	if err := file.EnsureDir(p.ConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory '%s': %w", p.ConfigDir, err)
	}

	slog.Info("Appending clang toolchain flags to " + p.ConfigPath)
	if err := file.AppendString(p.ConfigPath, p.block()); err != nil {
		return fmt.Errorf("failed to append toolchain flags to '%s': %w", p.ConfigPath, err)
	}

	return nil
}
