package renv

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"rboot/errors"
	"rboot/system/command"
	"rboot/system/file"
	"rboot/tools/r"
)

const (
	LockfileName = "renv.lock"
	cranMirror   = "https://cloud.r-project.org"
)

// Installer is the package-manager client the bootstrapper drives. The
// production implementation shells out to Rscript; tests substitute a
// fake.
type Installer interface {
	EnsureInitialized() error
	Install(list *PackageList) error
	EnsureBioconductor() error
	InstallBioconductor(list *PackageList) error
	Snapshot() error
}

// Manager drives renv inside a project directory.
type Manager struct {
	Interpreter  *r.Interpreter
	ProjectDir   string
	LockfilePath string
}

func NewManager(interp *r.Interpreter, projectDir string) *Manager {
	return &Manager{
		Interpreter:  interp,
		ProjectDir:   projectDir,
		LockfilePath: filepath.Join(projectDir, LockfileName),
	}
}

func (m *Manager) rscript(expr string) error {
	args := []string{"--vanilla", "-e", expr}
	s := command.NewShellCommand(m.Interpreter.RscriptPath, args, m.ProjectDir, nil, true)

	return s.Run()
}

// Initialized reports whether the project already carries a lockfile.
func (m *Manager) Initialized() (bool, error) {
	exists, err := file.IsPathExist(m.LockfilePath)
	if err != nil {
		return false, fmt.Errorf("failed to check for lockfile at '%s': %w", m.LockfilePath, err)
	}

	return exists, nil
}

// EnsureInitialized bootstraps a bare renv project when no lockfile
// exists yet.
func (m *Manager) EnsureInitialized() error {
	initialized, err := m.Initialized()
	if err != nil {
		return err
	}
	if initialized {
		slog.Info("renv lockfile found at " + m.LockfilePath)

		return nil
	}

	slog.Info("Initializing bare renv project in " + m.ProjectDir)
	expr := fmt.Sprintf(
		"if (!requireNamespace(\"renv\", quietly = TRUE)) install.packages(\"renv\", repos = \"%s\"); renv::init(bare = TRUE)",
		cranMirror,
	)
	if err := m.rscript(expr); err != nil {
		return fmt.Errorf(errors.RenvInitErrorTpl, err)
	}

	return nil
}

func (m *Manager) Install(list *PackageList) error {
	packages, err := list.GetPackages()
	if err != nil {
		return fmt.Errorf("error occurred while parsing packages to install: %w", err)
	}
	if len(packages) == 0 {
		slog.Debug("No packages to install")

		return nil
	}

	slog.Info("Installing packages: " + strings.Join(packages, ", "))
	expr := fmt.Sprintf("renv::install(%s)", quoteVector(packages))
	if err := m.rscript(expr); err != nil {
		return fmt.Errorf(errors.PackageInstallErrorTpl, err)
	}

	return nil
}

// Snapshot records the resolved dependency graph in the lockfile,
// non-interactively.
func (m *Manager) Snapshot() error {
	slog.Info("Snapshotting dependencies to " + m.LockfilePath)
	if err := m.rscript("renv::snapshot(prompt = FALSE)"); err != nil {
		return fmt.Errorf(errors.SnapshotErrorTpl, err)
	}

	return nil
}

func quoteVector(packages []string) string {
	quoted := make([]string, len(packages))
	for i, pkg := range packages {
		quoted[i] = fmt.Sprintf("\"%s\"", pkg)
	}

	return "c(" + strings.Join(quoted, ", ") + ")"
}
