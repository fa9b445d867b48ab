package bootstrap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rbooterrors "rboot/errors"
	"rboot/rboottest"
	"rboot/system"
	"rboot/system/command"
	"rboot/tools/renv"
)

// fakeInstaller records the order of installer calls and can be told to
// fail on a named step.
type fakeInstaller struct {
	Calls  []string
	FailOn string

	Packages     *renv.PackageList
	BiocPackages *renv.PackageList
}

func (f *fakeInstaller) call(name string) error {
	f.Calls = append(f.Calls, name)
	if f.FailOn == name {
		return fmt.Errorf("%s failed", name)
	}
	return nil
}

func (f *fakeInstaller) EnsureInitialized() error {
	return f.call("EnsureInitialized")
}

func (f *fakeInstaller) Install(list *renv.PackageList) error {
	f.Packages = list
	return f.call("Install")
}

func (f *fakeInstaller) EnsureBioconductor() error {
	return f.call("EnsureBioconductor")
}

func (f *fakeInstaller) InstallBioconductor(list *renv.PackageList) error {
	f.BiocPackages = list
	return f.call("InstallBioconductor")
}

func (f *fakeInstaller) Snapshot() error {
	return f.call("Snapshot")
}

type fakeRuntime struct {
	version string
	err     error
}

func (f *fakeRuntime) Version() (string, error) {
	return f.version, f.err
}

type fakeToolchain struct {
	applies int
	err     error
}

func (f *fakeToolchain) Apply() error {
	f.applies++
	return f.err
}

var allInstallerCalls = []string{
	"EnsureInitialized",
	"Install",
	"EnsureBioconductor",
	"InstallBioconductor",
	"Snapshot",
}

func Test_New_missingRuntime(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	oldLookPath := command.LookPath
	t.Cleanup(func() {
		command.LookPath = oldLookPath
	})
	command.LookPath = func(bin string) (string, error) {
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", bin)
	}

	b, err := New(rboottest.NewDarwinSystem(), DefaultConfig("/project"))

	require.Error(err)
	assert.Nil(b)
	var missing *rbooterrors.MissingRuntimeError
	assert.ErrorAs(err, &missing)
}

func Test_New(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	oldLookPath := command.LookPath
	t.Cleanup(func() {
		command.LookPath = oldLookPath
	})
	command.LookPath = func(bin string) (string, error) {
		return "/usr/local/bin/" + bin, nil
	}

	l := rboottest.NewDarwinSystem()
	b, err := New(l, DefaultConfig("/project"))

	require.NoError(err)
	assert.Equal(l, b.System)
	assert.NotNil(b.Runtime)
	assert.NotNil(b.Toolchain)
	assert.NotNil(b.Installer)
}

func Test_Bootstrapper_Run(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	tests := []struct {
		name               string
		system             *system.LocalSystem
		runtime            *fakeRuntime
		toolchain          *fakeToolchain
		failOn             string
		wantToolchainApply int
		wantInstallerCalls []string
		wantErr            bool
		wantErrMessage     string
	}{
		{
			name:               "darwin full run",
			system:             rboottest.NewDarwinSystem(),
			runtime:            &fakeRuntime{version: "4.4.2"},
			toolchain:          &fakeToolchain{},
			wantToolchainApply: 1,
			wantInstallerCalls: allInstallerCalls,
			wantErr:            false,
		},
		{
			name:               "linux skips toolchain",
			system:             rboottest.NewUbuntuSystem(),
			runtime:            &fakeRuntime{version: "4.4.2"},
			toolchain:          &fakeToolchain{},
			wantToolchainApply: 0,
			wantInstallerCalls: allInstallerCalls,
			wantErr:            false,
		},
		{
			name:               "version probe failure is not fatal",
			system:             rboottest.NewUbuntuSystem(),
			runtime:            &fakeRuntime{err: fmt.Errorf("exit status 1")},
			toolchain:          &fakeToolchain{},
			wantToolchainApply: 0,
			wantInstallerCalls: allInstallerCalls,
			wantErr:            false,
		},
		{
			name:               "old version is not fatal",
			system:             rboottest.NewUbuntuSystem(),
			runtime:            &fakeRuntime{version: "3.6.3"},
			toolchain:          &fakeToolchain{},
			wantToolchainApply: 0,
			wantInstallerCalls: allInstallerCalls,
			wantErr:            false,
		},
		{
			name:               "toolchain failure aborts before install",
			system:             rboottest.NewDarwinSystem(),
			runtime:            &fakeRuntime{version: "4.4.2"},
			toolchain:          &fakeToolchain{err: fmt.Errorf("permission denied")},
			wantToolchainApply: 1,
			wantInstallerCalls: nil,
			wantErr:            true,
			wantErrMessage:     "failed to patch compiler toolchain configuration",
		},
		{
			name:               "install failure aborts remaining steps",
			system:             rboottest.NewUbuntuSystem(),
			runtime:            &fakeRuntime{version: "4.4.2"},
			toolchain:          &fakeToolchain{},
			failOn:             "Install",
			wantToolchainApply: 0,
			wantInstallerCalls: []string{"EnsureInitialized", "Install"},
			wantErr:            true,
			wantErrMessage:     "Install failed",
		},
		{
			name:               "snapshot failure",
			system:             rboottest.NewUbuntuSystem(),
			runtime:            &fakeRuntime{version: "4.4.2"},
			toolchain:          &fakeToolchain{},
			failOn:             "Snapshot",
			wantToolchainApply: 0,
			wantInstallerCalls: allInstallerCalls,
			wantErr:            true,
			wantErrMessage:     "Snapshot failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			installer := &fakeInstaller{FailOn: tt.failOn}
			cfg := DefaultConfig("/project")

			b := &Bootstrapper{
				System:    tt.system,
				Runtime:   tt.runtime,
				Toolchain: tt.toolchain,
				Installer: installer,
				Config:    cfg,
			}

			err := b.Run()
			if tt.wantErr {
				require.Error(err)
				assert.ErrorContains(err, tt.wantErrMessage)
			} else {
				require.NoError(err)
			}

			assert.Equal(tt.wantToolchainApply, tt.toolchain.applies)
			assert.Equal(tt.wantInstallerCalls, installer.Calls)

			if len(installer.Calls) >= 2 {
				assert.Equal(cfg.Packages, installer.Packages)
			}
			if len(installer.Calls) >= 4 {
				assert.Equal(cfg.BiocPackages, installer.BiocPackages)
			}
		})
	}
}

func Test_DefaultConfig(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig("/project")

	assert.Equal("/project", cfg.ProjectDir)
	assert.Equal(DefaultPackages, cfg.Packages.Packages)
	assert.Equal(DefaultBiocPackages, cfg.BiocPackages.Packages)
}
