package version

import "fmt"

// These are populated at build time via -ldflags
var (
	Version      string
	CommitsAhead string
	CommitHash   string
)

func GetVersionString() string {
	if Version != "" {
		if CommitsAhead != "" && CommitsAhead != "0" {
			return fmt.Sprintf("%s+%s (%s)", Version, CommitsAhead, CommitHash)
		}
		return fmt.Sprintf("%s (%s)", Version, CommitHash)
	}
	return fmt.Sprintf("devel (%s)", CommitHash)
}
