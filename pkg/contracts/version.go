package contracts

import (
	"fmt"
	"runtime"
)

const (
	// Version is the current version of the application
	Version = "0.1.0"

	// DataFormatVersion is the version of the exported wide-table format
	DataFormatVersion = "v1"
)

var (
	// BuildTime is set during build using ldflags
	BuildTime = "unknown"

	// GitCommit is set during build using ldflags
	GitCommit = "unknown"
)

// VersionString returns a one-line version description for startup logs.
func VersionString() string {
	return fmt.Sprintf("ssicli %s (%s, %s/%s)", Version, GitCommit, runtime.GOOS, runtime.GOARCH)
}
