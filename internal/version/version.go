package version

import (
	"fmt"
	"runtime"
)

// Tagline is used in help text
const Tagline = "Worktree listing and branch-safe removal for git"

// Build information injected at build time via ldflags
// Example: -ldflags="-X github.com/renato0307/galho/internal/version.Version=v1.0.0"
var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = runtime.Version()
	Version   = "dev"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("galho %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
