package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{"", zerolog.WarnLevel, false},
		{"debug", zerolog.DebugLevel, true},
		{" INFO ", zerolog.InfoLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.WarnLevel, false},
	}
	for _, tc := range cases {
		got, ok := ParseLevel(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v, %v", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNewHonorsLevelOverride(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogNoColor, "1")

	var buf bytes.Buffer
	log := New(&buf)
	log.Debug().Str("mode", "relative").Msg("rendered")

	out := buf.String()
	if !strings.Contains(out, "rendered") || !strings.Contains(out, "mode=relative") {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestDefaultLevelDropsDebug(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	var buf bytes.Buffer
	log := New(&buf)
	log.Debug().Msg("hidden")
	log.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected log output: %q", out)
	}
}
