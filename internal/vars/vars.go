// Package vars holds build metadata injected at link time via -ldflags and
// the version command's output.
package vars

import "fmt"

// Version, Commit, and Date are overridden at build time with:
//
//	go build -ldflags "-X github.com/woozymasta/ddsenc/internal/vars.Version=v1.2.3 ..."
//
// The zero values below are what a `go run`/unreleased build reports.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Print writes the build metadata to stdout for the version command.
func Print() {
	fmt.Printf("ddsenc %s (commit %s, built %s)\n", Version, Commit, Date)
}

// String returns the one-line build metadata string.
func String() string {
	return fmt.Sprintf("ddsenc %s (commit %s, built %s)", Version, Commit, Date)
}
