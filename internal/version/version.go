package version

import "fmt"

// Set at link time with -ldflags "-X mini_http/internal/version.Version=...".
var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

func String() string {
	return fmt.Sprintf("mini_http %s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Short is the bare version, or "dev" when unset.
func Short() string {
	if Version == "" {
		return "dev"
	}
	return Version
}
