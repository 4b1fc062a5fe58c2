// Package version provides version information for the create-node-api CLI.
//
// Usage:
//
//	fmt.Println(version.GetVersionString())
package version

import (
	"fmt"
	"runtime"
)

// Version is the CLI version.
// This value is set with -ldflags during release builds.
var Version = "v1.0.0"

// Commit is the git commit hash.
// This value is set with -ldflags during release builds.
var Commit = "unknown"

// BuildTime is the build timestamp in RFC3339 format.
// This value is set with -ldflags during release builds.
var BuildTime = "unknown"

// GetVersionString returns the version line in the format:
// create-node-api version v1.0.0 (commit 4a9b2c1, built 2025-10-31T12:10:00Z)
func GetVersionString() string {
	return fmt.Sprintf("create-node-api version %s (commit %s, built %s)", Version, Commit, BuildTime)
}

// GetFullVersionInfo returns the version line followed by the Go runtime version.
func GetFullVersionInfo() string {
	return fmt.Sprintf("%s\ngo version %s (%s/%s)",
		GetVersionString(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
