package system

import (
	"fmt"
	"runtime"
	"strings"

	"rboot/errors"
	"rboot/system/command"

	"github.com/mitchellh/go-homedir"
	"github.com/zcalusic/sysinfo"
)

// LocalSystem describes the execution environment. It is built once and
// passed into every component so nothing else reads ambient state.
type LocalSystem struct {
	OS      string
	Vendor  string
	Version string
	Arch    string
	Home    string
}

var goos = func() string {
	return runtime.GOOS
}

var sysInfo = func() sysinfo.SysInfo {
	var si sysinfo.SysInfo
	si.GetSysInfo()
	return si
}

var macVersion = func() string {
	out, err := command.Output("sw_vers", "-productVersion")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

var homeDir = func() (string, error) {
	return homedir.Dir()
}

func GetLocalSystem() (*LocalSystem, error) {
	home, err := homeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	switch goos() {
	case "darwin":
		return &LocalSystem{
			OS:      "darwin",
			Vendor:  "apple",
			Version: macVersion(),
			Arch:    runtime.GOARCH,
			Home:    home,
		}, nil
	case "linux":
		si := sysInfo()

		return &LocalSystem{
			OS:      "linux",
			Vendor:  si.OS.Vendor,
			Version: si.OS.Version,
			Arch:    si.OS.Architecture,
			Home:    home,
		}, nil
	default:
		return nil, &errors.UnsupportedOSError{Vendor: goos()}
	}
}
