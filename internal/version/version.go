// Package version reports the shapegen build. The variables are overridden
// with -ldflags "-X shape-generator/internal/version.Version=...".
package version

import "fmt"

var (
	Version   = "0.1.0"
	BuildTime = "unknown" // UTC
	GitCommit = "unknown"
)

// String returns "<version> (commit <hash>, built <time>)" for --version
// output. The SCAD header uses Version alone so models stay reproducible.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
