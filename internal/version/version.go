package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/idaholab/moose-language-support/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/idaholab/moose-language-support/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/idaholab/moose-language-support/internal/version.Date={{.Date}}
)

// Short returns the version with the abbreviated commit, e.g. "1.2.0 (3f2a9c1)"
func Short() string {
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", Version, commit)
}
