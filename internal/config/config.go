package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/brandonbloom/dtfmt/internal/attrs"
	"github.com/brandonbloom/dtfmt/internal/locale"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	envConfig = "DTFMT_CONFIG"
	envLang   = "DTFMT_LANG"
)

// Config captures the user editable defaults stored in config.toml.
type Config struct {
	Locale     string    `toml:"locale,omitempty"`
	TimeZone   string    `toml:"time_zone,omitempty"`
	Type       string    `toml:"type"`
	Attributes attrs.Set `toml:"attributes,omitempty"`
}

var (
	// ErrUnknownAttribute indicates the attributes table names something
	// outside the formatting vocabulary.
	ErrUnknownAttribute = errors.New("config.attributes contains an unknown attribute")
)

// Default returns the baseline configuration.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Type == "" {
		c.Type = "local"
	}
	if c.Attributes == nil {
		c.Attributes = attrs.Set{}
	}
}

// Validate ensures the configuration can be applied. Attribute values are
// not checked: unrecognized values are dropped at resolution time.
func (c Config) Validate() error {
	if _, err := locale.LoadZone(c.TimeZone); err != nil {
		return fmt.Errorf("config.time_zone: %w", err)
	}
	for name := range c.Attributes {
		if attrs.Allowed(name) == nil {
			return fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
		}
	}
	return nil
}

// ResolveLocale picks the active locale tag.
// Priority: config (or --locale) > DTFMT_LANG > LC_ALL > LANG > locale.DefaultTag.
func (c Config) ResolveLocale() string {
	if c.Locale != "" {
		return c.Locale
	}
	if v := os.Getenv(envLang); v != "" {
		return v
	}
	for _, key := range []string{"LC_ALL", "LANG"} {
		if v := os.Getenv(key); v != "" && v != "C" && v != "POSIX" {
			return normalizeLocale(v)
		}
	}
	return locale.DefaultTag
}

// normalizeLocale converts a POSIX locale such as "de_DE.UTF-8" to "de-DE".
func normalizeLocale(posix string) string {
	if i := strings.IndexAny(posix, ".@"); i >= 0 {
		posix = posix[:i]
	}
	return strings.ReplaceAll(posix, "_", "-")
}

// Path returns the config file location.
// Priority: DTFMT_CONFIG > $XDG_CONFIG_HOME/dtfmt > ~/.config/dtfmt.
func Path() (string, error) {
	if p := os.Getenv(envConfig); p != "" {
		return p, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dtfmt", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate config: %w", err)
	}
	return filepath.Join(home, ".config", "dtfmt", "config.toml"), nil
}

// Load reads configuration from disk. Missing files return a default config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes configuration to disk, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
