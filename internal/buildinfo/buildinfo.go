// Package buildinfo carries the identifiers stamped in at build time.
package buildinfo

// Set via -ldflags, e.g.
//
//	go build -ldflags "-X helios/internal/buildinfo.Version=v1.2.0"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the most specific identifier available, for the window
// title and startup log line.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}
