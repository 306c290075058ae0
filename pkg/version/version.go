package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

const devVersion = "0.0.0-dev"

// Valores padrão (sobrescritos por ldflags ou por build info)
var (
	Version   = devVersion
	Commit    = ""
	BuildTime = ""
)

// buildInfo is what the Go toolchain records about the VCS state.
type buildInfo struct {
	version   string
	commit    string
	buildTime string
}

// fromBuildInfo lê vcs.revision, vcs.time, vcs.modified e vcs.tag.
func fromBuildInfo(bi *debug.BuildInfo) buildInfo {
	var info buildInfo
	if bi == nil {
		return info
	}

	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	if rev := settings["vcs.revision"]; len(rev) >= 7 {
		info.commit = rev[:7]
	}
	if t := settings["vcs.time"]; t != "" {
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			info.buildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
		}
	}

	// module version when installed with go install, otherwise a tag
	v := bi.Main.Version
	if v == "" || v == "(devel)" {
		v = settings["vcs.tag"]
	}
	if v != "" {
		info.version = strings.TrimPrefix(v, "v")
		if strings.EqualFold(settings["vcs.modified"], "true") {
			info.version += "-dirty"
		}
	}
	return info
}

// populate fills whatever ldflags left unset.
func populate(info buildInfo) {
	if Version == "" || Version == devVersion {
		if info.version != "" {
			Version = info.version
		}
	}
	if Commit == "" {
		Commit = info.commit
	}
	if BuildTime == "" {
		BuildTime = info.buildTime
	}
}

func init() {
	if bi, ok := debug.ReadBuildInfo(); ok {
		populate(fromBuildInfo(bi))
	}
}

// FormatVersion retorna a versão formatada com commit e build time.
// Ex.: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = devVersion
	}

	switch {
	case Commit == "" && BuildTime == "":
		return fmt.Sprintf("%s (development)", ver)
	case Commit == "":
		return fmt.Sprintf("%s (built at: %s)", ver, BuildTime)
	case BuildTime == "":
		return fmt.Sprintf("%s (commit: %s)", ver, Commit)
	}
	return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, Commit, BuildTime)
}
