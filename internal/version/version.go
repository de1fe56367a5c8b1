// Where: cli/internal/version/version.go
// What: Version information retrieval.
// Why: Surface the VCS revision the binary was built from.
package version

import "runtime/debug"

// GetVersion returns the version string derived from build info: the short
// VCS revision, suffixed with "(dirty)" for a modified tree, or "dev" when
// no build info is available.
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	revision := "dev"
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if len(setting.Value) > 7 {
				revision = setting.Value[:7]
			} else if setting.Value != "" {
				revision = setting.Value
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if revision != "dev" && dirty {
		return revision + " (dirty)"
	}
	return revision
}
