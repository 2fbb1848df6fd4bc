// Package buildinfo reports the version string returned by the "version"
// command.
package buildinfo

import (
	"runtime/debug"
	"strings"
	"sync"

	"golang.org/x/mod/semver"
)

var (
	version     string
	readVersion sync.Once

	// Injected with ldflags at build:
	//
	//	-ldflags "-X github.com/dmitrijs2005/ssmgrtrojan/internal/buildinfo.tag=1.4.0"
	tag string
)

// Version returns the semantic version of the build without the leading "v",
// e.g. "1.4.0" or "0.0.0-devel+1a2b3c4" for untagged builds.
func Version() string {
	readVersion.Do(func() {
		version = resolve(tag, revision())
	})
	return version
}

func resolve(tag, revision string) string {
	suffix := ""
	if len(revision) >= 7 {
		suffix = "+" + revision[:7]
	}

	v := "v" + strings.TrimPrefix(tag, "v")
	if tag == "" || !semver.IsValid(v) {
		return "0.0.0-devel" + suffix
	}
	if semver.Build(v) == "" {
		v += suffix
	}
	return strings.TrimPrefix(v, "v")
}

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			return setting.Value
		}
	}
	return ""
}
