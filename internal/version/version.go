// Package version provides version information for the forge CLI tool.
//
// Overview:
//   - Responsibility: CLI version metadata (version, commit, build time)
//   - Key Types: Version variables and formatting functions
//   - Concurrency Model: Immutable values, safe for concurrent use
//   - Error Semantics: No errors (all constants)
//   - Performance Notes: Zero-cost constants
package version

import (
	"fmt"
	"runtime"
)

// Version is the CLI version. Set via -ldflags during release builds.
var Version = "v0.2.0"

// Commit is the git commit hash. Set via -ldflags during release builds.
var Commit = "unknown"

// BuildTime is the build timestamp in RFC3339 format. Set via -ldflags
// during release builds.
var BuildTime = "unknown"

// GetVersionString returns the one-line version string, e.g.
// "forge version v0.2.0 (commit 4a9b2c1, built 2026-08-01T10:00:00Z)".
func GetVersionString() string {
	return fmt.Sprintf("forge version %s (commit %s, built %s)", Version, Commit, BuildTime)
}

// GetFullVersionInfo returns detailed multi-line version information
// including the Go runtime.
func GetFullVersionInfo() string {
	return fmt.Sprintf(`forge version %s (commit %s, built %s)
go version %s (%s/%s)`,
		Version, Commit, BuildTime,
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
