package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// Set with -ldflags "-X .../internal/handler.Version=..."
var (
	Version   = ""
	BuildTime = ""
	GitCommit = ""
)

// HandleVersion returns version information about the application
// @Summary Build information
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion() http.HandlerFunc {
	info := buildVersionInfo()
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

// buildVersionInfo prefers linker flags, then the VERSION variable, then the
// VCS stamp the go tool embeds in the binary.
func buildVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   firstNonEmpty(Version, os.Getenv("VERSION"), "dev"),
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.GitCommit = firstNonEmpty(info.GitCommit, s.Value)
		case "vcs.time":
			info.BuildTime = firstNonEmpty(info.BuildTime, s.Value)
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
