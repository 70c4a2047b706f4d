package version

import (
	"runtime/debug"
	"strings"
)

// String reports the module version for tagged builds. Development and
// pseudo-version builds report "(devel)", followed by the short VCS
// revision when the build recorded one.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(devel)"
	}
	return describe(info)
}

func describe(info *debug.BuildInfo) string {
	version := info.Main.Version
	if version != "" && version != "(devel)" && !strings.Contains(version, "+dirty") && !isPseudoVersion(version) {
		return version
	}

	rev, dirty := revision(info)
	if rev == "" {
		return "(devel)"
	}
	if dirty {
		rev += "-dirty"
	}
	return "(devel " + rev + ")"
}

func revision(info *debug.BuildInfo) (string, bool) {
	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	return rev, dirty
}

// isPseudoVersion recognizes v0.0.0-20240101000000-abcdef123456 style
// versions, which carry no release meaning.
func isPseudoVersion(version string) bool {
	version, _, _ = strings.Cut(version, "+")

	parts := strings.Split(version, "-")
	if len(parts) < 3 {
		return false
	}

	ts := parts[len(parts)-2]
	hash := parts[len(parts)-1]
	if len(ts) != 14 || !allDigits(ts) {
		return false
	}
	return len(hash) >= 12 && allHex(hash)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func allHex(s string) bool {
	for _, r := range strings.ToLower(s) {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
