package cli

import (
	"fmt"
	"strings"

	"github.com/brandonbloom/dtfmt/internal/attrs"
	"github.com/brandonbloom/dtfmt/internal/config"
	"github.com/brandonbloom/dtfmt/internal/datetime"
	"github.com/brandonbloom/dtfmt/internal/locale"
	"github.com/brandonbloom/dtfmt/internal/logging"
	"github.com/brandonbloom/dtfmt/internal/parse"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// formatOptions holds the flags shared by every command that renders.
type formatOptions struct {
	configPath string
	locale     string
	timeZone   string
	mode       string
	attributes map[string]*string
}

func newFormatOptions() *formatOptions {
	return &formatOptions{attributes: map[string]*string{}}
}

func (o *formatOptions) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "config file (default $DTFMT_CONFIG or ~/.config/dtfmt/config.toml)")
	flags.StringVar(&o.locale, "locale", "", "BCP 47 locale for local formatting (default from config or $LANG)")
	flags.StringVar(&o.timeZone, "time-zone", "", "IANA time zone for rendering and parsing (default local)")
	flags.StringVarP(&o.mode, "type", "t", "", "local, relative, or anything else for the raw instant")
	for _, name := range attrs.Names() {
		value := new(string)
		o.attributes[name] = value
		flags.StringVar(value, flagName(name), "", fmt.Sprintf("%s style (%s)", name, strings.Join(attrs.Allowed(name), "|")))
	}
}

// flagName converts an attribute name such as timeZoneName to time-zone-name.
func flagName(attr string) string {
	var b strings.Builder
	for _, r := range attr {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

type settings struct {
	Config     config.Config
	Locale     string
	Mode       string
	Attributes attrs.Set
	Formatter  *locale.Formatter
	Parser     *parse.Parser
	Clock      clockwork.Clock
	Dispatcher *datetime.Dispatcher
	Log        zerolog.Logger
}

// load merges config file values with any flags set on cmd.
func (o *formatOptions) load(cmd *cobra.Command) (*settings, error) {
	log := logging.New(cmd.ErrOrStderr())

	path := o.configPath
	if path == "" {
		var err error
		if path, err = config.Path(); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Msg("loaded config")

	flags := cmd.Flags()
	if flags.Changed("locale") {
		cfg.Locale = o.locale
	}
	if flags.Changed("time-zone") {
		cfg.TimeZone = o.timeZone
	}
	if flags.Changed("type") {
		cfg.Type = o.mode
	}
	set := cfg.Attributes.Clone()
	for name, value := range o.attributes {
		if flags.Changed(flagName(name)) {
			set[name] = *value
		}
	}

	tag := cfg.ResolveLocale()
	formatter, err := locale.New(tag, cfg.TimeZone)
	if err != nil {
		return nil, err
	}
	if matched := formatter.Tag().String(); matched != tag {
		log.Debug().Str("requested", tag).Str("matched", matched).Msg("locale fallback")
	}

	clock := currentClock()
	return &settings{
		Config:     cfg,
		Locale:     formatter.Tag().String(),
		Mode:       cfg.Type,
		Attributes: set,
		Formatter:  formatter,
		Parser:     parse.New(formatter.Location()),
		Clock:      clock,
		Dispatcher: datetime.NewDispatcher(formatter, clock),
		Log:        log,
	}, nil
}

func (s *settings) newElement(opts ...datetime.ElementOption) *datetime.Element {
	base := []datetime.ElementOption{
		datetime.WithType(s.Mode),
		datetime.WithAttributes(s.Attributes),
		datetime.WithLogger(s.Log),
	}
	return datetime.NewElement(s.Dispatcher, s.Parser, append(base, opts...)...)
}
