// Package version provides version information for the scour cleaning
// engine and its CLI.
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables set by ldflags
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains build information for the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
}

// Info returns the build information for the running binary.
func Info() BuildInfo {
	return BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: GoVersion,
	}
}

// String renders the build information one field per line.
func (b BuildInfo) String() string {
	return fmt.Sprintf("scour %s\n  build date: %s\n  git commit: %s\n  go version: %s\n",
		b.Version, b.BuildDate, b.GitCommit, b.GoVersion)
}
