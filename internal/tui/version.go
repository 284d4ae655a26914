package tui

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/akyairhashvil/pomo/internal/tui.AppVersion=...".
var (
	AppVersion = "dev"
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

// VersionLabel describes the running build. Values not stamped at link
// time are filled from the module build info when available.
func VersionLabel() string {
	version, commit, built := AppVersion, GitCommit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "unknown" && len(s.Value) >= 7 {
					commit = s.Value[:7]
				}
			case "vcs.time":
				if built == "unknown" {
					built = s.Value
				}
			}
		}
	}
	label := version
	if commit != "unknown" || built != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", version, commit, built)
	}
	return label
}
