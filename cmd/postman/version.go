package main

import (
	"fmt"
	"runtime/debug"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "devel"

// Version returns the module version when installed with go install,
// otherwise the build-time version.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}
