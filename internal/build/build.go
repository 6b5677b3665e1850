// Package build holds build-time information.
package build

// Version and Commit default to development values and are set with
// -ldflags "-X go.trai.ch/swap/internal/build.Version=...".
var (
	Version = "dev"
	Commit  = "none"
)
