// Package version carries build metadata injected with -ldflags.
package version

import "runtime/debug"

var (
	// Version is overridden at build time: -X .../version.Version=v1.2.3
	Version = "dev"
	Commit  = ""
)

// String returns the version, falling back to the module version recorded
// by the Go toolchain when no ldflags were given.
func String() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}
