// Package version exposes the build metadata stamped into the binary.
package version

import "fmt"

// AppName is the binary name. The root command uses it too so the
// version line and the CLI help never drift apart.
const AppName = "cadence"

// Stamped via -ldflags "-X ..." at build time. There is no semver:
// a build is identified by the commit it was cut from.
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String renders the line shown by `cadence --version`.
func String() string {
	return fmt.Sprintf("%s dev (commit: %s, built: %s)", AppName, ShortCommit(), BuildTime)
}

// ShortCommit abbreviates a full hash to the usual 7 characters.
// Unstamped builds report "unknown" as-is.
func ShortCommit() string {
	const abbrev = 7
	if len(Commit) > abbrev {
		return Commit[:abbrev]
	}
	return Commit
}
