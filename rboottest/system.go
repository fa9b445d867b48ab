package rboottest

import "rboot/system"

func NewDarwinSystem() *system.LocalSystem {
	return &system.LocalSystem{
		OS:      "darwin",
		Vendor:  "apple",
		Version: "14.6",
		Arch:    "arm64",
		Home:    "/Users/test",
	}
}

func NewUbuntuSystem() *system.LocalSystem {
	return &system.LocalSystem{
		OS:      "linux",
		Vendor:  "ubuntu",
		Version: "22.04",
		Arch:    "amd64",
		Home:    "/home/test",
	}
}
