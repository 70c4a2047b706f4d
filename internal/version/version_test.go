package version

import (
	"runtime/debug"
	"testing"
)

func TestDescribe(t *testing.T) {
	cases := []struct {
		name     string
		version  string
		settings []debug.BuildSetting
		want     string
	}{
		{name: "tagged", version: "v1.2.3", want: "v1.2.3"},
		{name: "devel", version: "(devel)", want: "(devel)"},
		{name: "empty", version: "", want: "(devel)"},
		{name: "dirty", version: "v1.2.3+dirty", want: "(devel)"},
		{name: "pseudo", version: "v0.0.0-20240101000000-abcdef123456", want: "(devel)"},
		{
			name:    "revision",
			version: "(devel)",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			},
			want: "(devel 0123456789ab)",
		},
		{
			name:    "modifiedRevision",
			version: "(devel)",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.modified", Value: "true"},
			},
			want: "(devel abc123-dirty)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := &debug.BuildInfo{Settings: tc.settings}
			info.Main.Version = tc.version
			if got := describe(info); got != tc.want {
				t.Fatalf("describe() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIsPseudoVersion(t *testing.T) {
	cases := map[string]bool{
		"v0.0.0-20240101000000-abcdef123456":         true,
		"v1.2.4-pre-20240101000000-ABCDEF123456+inc": true,
		"v1.2.3":                   false,
		"v1.2.3-rc.1":              false,
		"v0.0.0-2024-abcdef123456": false,
	}
	for in, want := range cases {
		if got := isPseudoVersion(in); got != want {
			t.Fatalf("isPseudoVersion(%q) = %v, want %v", in, got, want)
		}
	}
}
