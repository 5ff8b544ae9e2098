package version

import (
	"fmt"
	"runtime/debug"
)

// Overridden at build time:
//
//	go build -ldflags "-X github.com/alexiusacademia/gopurlin/internal/version.Version=0.3.1 \
//	  -X github.com/alexiusacademia/gopurlin/internal/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   = "0.3.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	Author = "Alexius Academia"
	Year   = "2025"
)

const unknown = "unknown"

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// Get returns the build information. Fields left unset by -ldflags fall back
// to the VCS stamp the go command embeds in the binary.
func Get() Info {
	info := Info{Version: Version, Commit: GitCommit, BuildTime: BuildTime}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown {
				info.Commit = s.Value[:min(len(s.Value), 12)]
			}
		case "vcs.time":
			if info.BuildTime == unknown {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

func (i Info) String() string {
	commit := i.Commit
	if i.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("gopurlin v%s (commit %s, built %s)", i.Version, commit, i.BuildTime)
}
