package mp4meta

import "runtime/debug"

// Version is the semantic version of the mp4meta library.
const Version = "0.2.0"

// VersionInfo describes the build.
type VersionInfo struct {
	Version   string
	GitCommit string // Set via -ldflags, or from the embedded VCS stamp
	BuildTime string
	GoVersion string
}

// Variables populated at build time via -ldflags:
//
//	go build -ldflags="-X github.com/simonhull/mp4meta.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/mp4meta.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)

// GetVersionInfo returns the library version and build details. Fields not
// set via -ldflags fall back to the build info embedded by the go tool.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: "unknown",
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.GitCommit == "unknown":
			info.GitCommit = s.Value
		case s.Key == "vcs.time" && info.BuildTime == "unknown":
			info.BuildTime = s.Value
		}
	}
	return info
}
