// Package version contains version information.
package version

import "runtime"

// Version information for utf8shim, set with -ldflags at build time.
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// GetVersion returns the bare version string
func GetVersion() string {
	return Version
}

// Platform returns the GOOS/GOARCH pair the binary was built for. It also
// decides which console strategy the binary defaults to.
func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// GetFullVersion returns version with build metadata
func GetFullVersion() string {
	return Version + " (build: " + BuildDate + ", commit: " + GitCommit + ", " + Platform() + ")"
}
