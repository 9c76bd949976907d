package common

import "strings"

// Version is set via ldflags at build time: -ldflags "-X github.com/Alia5/makestatus/internal/codegen/common.Version=x.y.z"
var Version = ""

// GetVersion returns the version string that was set at build time via ldflags.
// Returns "0.0.1-dev" if Version is empty (development builds only).
func GetVersion() string {
	if Version == "" {
		return "0.0.1-dev"
	}
	return strings.TrimPrefix(Version, "v")
}
