// Package version reports the genelection build version.
//
// Release builds stamp Version and Commit with -ldflags. Binaries built with
// `go install module@version` carry no ldflags; for those the module version
// and VCS revision embedded by the toolchain are used instead.
package version

import "runtime/debug"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is the git commit SHA, set at build time via -ldflags.
var Commit = ""

const shortCommitLen = 12

// FullVersion returns "vX.Y.Z (commit <shortsha>)", "vX.Y.Z", or "dev".
func FullVersion() string {
	info, _ := debug.ReadBuildInfo()
	return resolve(Version, Commit, info)
}

func resolve(version, commit string, info *debug.BuildInfo) string {
	if info != nil {
		if mv := info.Main.Version; version == "dev" && mv != "" && mv != "(devel)" {
			version = mv
		}
		if commit == "" {
			commit = vcsCommit(info)
		}
	}

	if commit != "" {
		return version + " (commit " + commit + ")"
	}
	return version
}

// vcsCommit returns the short revision recorded by the toolchain, with a
// "-dirty" suffix when the working tree had uncommitted changes.
func vcsCommit(info *debug.BuildInfo) string {
	var rev, modified string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}
	if rev == "" {
		return ""
	}
	if len(rev) > shortCommitLen {
		rev = rev[:shortCommitLen]
	}
	if modified == "true" {
		rev += "-dirty"
	}
	return rev
}
