package system

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zcalusic/sysinfo"
)

func withHooks(t *testing.T, osName, home string, si sysinfo.SysInfo, mac string) {
	oldGoos := goos
	oldSysInfo := sysInfo
	oldMacVersion := macVersion
	oldHomeDir := homeDir
	t.Cleanup(func() {
		goos = oldGoos
		sysInfo = oldSysInfo
		macVersion = oldMacVersion
		homeDir = oldHomeDir
	})

	goos = func() string { return osName }
	sysInfo = func() sysinfo.SysInfo { return si }
	macVersion = func() string { return mac }
	homeDir = func() (string, error) { return home, nil }
}

func TestGetLocalSystem(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	tests := []struct {
		name    string
		goos    string
		sysInfo sysinfo.SysInfo
		mac     string
		want    *LocalSystem
		wantErr bool
	}{
		{
			name: "linux",
			goos: "linux",
			sysInfo: sysinfo.SysInfo{
				OS: sysinfo.OS{
					Vendor:       "ubuntu",
					Version:      "22.04",
					Architecture: "amd64",
				},
			},
			want: &LocalSystem{
				OS:      "linux",
				Vendor:  "ubuntu",
				Version: "22.04",
				Arch:    "amd64",
				Home:    "/home/test",
			},
			wantErr: false,
		},
		{
			name: "darwin",
			goos: "darwin",
			mac:  "14.6",
			want: &LocalSystem{
				OS:      "darwin",
				Vendor:  "apple",
				Version: "14.6",
				Arch:    runtime.GOARCH,
				Home:    "/home/test",
			},
			wantErr: false,
		},
		{
			name:    "unsupported",
			goos:    "windows",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withHooks(t, tt.goos, "/home/test", tt.sysInfo, tt.mac)

			got, err := GetLocalSystem()
			if tt.wantErr {
				require.Error(err)
				assert.ErrorContains(err, "unsupported os")
			} else {
				require.NoError(err)
				assert.Equal(tt.want, got)
			}
		})
	}
}

func TestGetLocalSystem_homeDirError(t *testing.T) {
	require := require.New(t)

	oldHomeDir := homeDir
	t.Cleanup(func() {
		homeDir = oldHomeDir
	})
	homeDir = func() (string, error) {
		return "", fmt.Errorf("$HOME is not defined")
	}

	_, err := GetLocalSystem()

	require.Error(err)
	require.ErrorContains(err, "failed to resolve home directory")
}
