// Package version reports the build version of the binary.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"

	"golang.org/x/mod/semver"
)

// Set with -ldflags "-X github.com/inkfolio/inkfolio/internal/shared/version.Version=v1.2.3".
var (
	Version = "dev"
	Commit  = ""
)

// Normalize ensures version string has "v" prefix for semver compatibility.
func Normalize(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

// IsRelease reports whether v is a valid semver without a prerelease suffix.
func IsRelease(v string) bool {
	v = Normalize(v)
	return semver.IsValid(v) && semver.Prerelease(v) == ""
}

// String renders the version line printed by `inkfolio version`.
func String() string {
	commit := Commit
	if commit == "" {
		commit = vcsRevision()
	}

	kind := "release"
	if !IsRelease(Version) {
		kind = "development build"
	}

	if commit == "" {
		return fmt.Sprintf("inkfolio %s (%s)", Version, kind)
	}
	return fmt.Sprintf("inkfolio %s (%s, commit %s)", Version, kind, commit)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 12 {
			return s.Value[:12]
		}
	}
	return ""
}
