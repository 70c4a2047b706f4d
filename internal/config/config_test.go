package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/brandonbloom/dtfmt/internal/attrs"
	"github.com/brandonbloom/dtfmt/internal/locale"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Type != "local" || len(cfg.Attributes) != 0 {
		t.Fatalf("unexpected default: %+v", cfg)
	}
}

func TestLoadParsesAttributes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `locale = "de-DE"
time_zone = "Europe/Berlin"
type = "relative"

[attributes]
month = "long"
day = "bogus"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Locale != "de-DE" || cfg.TimeZone != "Europe/Berlin" || cfg.Type != "relative" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if got := attrs.Resolve(cfg.Attributes); got.Month != "long" || got.Day != "" {
		t.Fatalf("unexpected resolved attributes: %+v", got)
	}
}

func TestLoadRejectsBadZone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`time_zone = "Nowhere/Special"`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, locale.ErrInvalidTimeZone) {
		t.Fatalf("expected ErrInvalidTimeZone, got %v", err)
	}
}

func TestLoadRejectsUnknownAttribute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[attributes]\nera = \"long\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnknownAttribute) {
		t.Fatalf("expected ErrUnknownAttribute, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Locale = "fr-FR"
	cfg.Attributes[attrs.Weekday] = "long"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Locale != "fr-FR" || got.Attributes[attrs.Weekday] != "long" {
		t.Fatalf("unexpected round trip: %+v", got)
	}
}

func TestResolveLocale(t *testing.T) {
	t.Setenv("DTFMT_LANG", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "de_DE.UTF-8")

	if got := (Config{}).ResolveLocale(); got != "de-DE" {
		t.Fatalf("from LANG: %q", got)
	}
	if got := (Config{Locale: "fr-FR"}).ResolveLocale(); got != "fr-FR" {
		t.Fatalf("from config: %q", got)
	}
	t.Setenv("DTFMT_LANG", "sv-SE")
	if got := (Config{}).ResolveLocale(); got != "sv-SE" {
		t.Fatalf("from DTFMT_LANG: %q", got)
	}
	if got := (Config{Locale: "fr-FR"}).ResolveLocale(); got != "fr-FR" {
		t.Fatalf("config should beat DTFMT_LANG: %q", got)
	}
	t.Setenv("DTFMT_LANG", "")
	t.Setenv("LANG", "C")
	if got := (Config{}).ResolveLocale(); got != locale.DefaultTag {
		t.Fatalf("fallback: %q", got)
	}
}

func TestPathPrefersEnv(t *testing.T) {
	t.Setenv("DTFMT_CONFIG", "/tmp/custom.toml")
	if got, err := Path(); err != nil || got != "/tmp/custom.toml" {
		t.Fatalf("Path() = %q, %v", got, err)
	}
	t.Setenv("DTFMT_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got, err := Path(); err != nil || got != "/xdg/dtfmt/config.toml" {
		t.Fatalf("Path() = %q, %v", got, err)
	}
}
