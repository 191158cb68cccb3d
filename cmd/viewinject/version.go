package main

import (
	"runtime/debug"
)

// version is set with -ldflags "-X main.version=..." for release builds
var version = "0.1.0"

// Version returns the version string.
//
// When installed via `go install ...@version`, returns the module version.
// Development builds return "devel-{version}+{revision}" when VCS data is
// available.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var vcsRev string
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			vcsRev = s.Value[:7]
			break
		}
	}

	if vcsRev != "" {
		return "devel-" + version + "+" + vcsRev
	}
	return "devel-" + version
}
