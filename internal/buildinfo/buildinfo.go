// Package buildinfo reports the version stamped into the binary.
package buildinfo

import "runtime/debug"

// Set at build time via -ldflags "-X isopipe/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and
// -version: the release version, else a short commit, else "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if c := commit(); c != "" {
		if len(c) > 12 {
			c = c[:12]
		}
		return c
	}
	return "dev"
}

// commit prefers the -ldflags value and falls back to the VCS stamp the
// go tool embeds in module builds.
func commit() string {
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
