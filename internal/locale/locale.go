// Package locale renders instants the way a locale-aware date formatter
// does: a set of Options picks the fields, and the active locale decides
// names, field order, separators and the hour cycle.
package locale

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goodsign/monday"
	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// DefaultTag is used when a requested locale cannot be matched.
const DefaultTag = "en-US"

var (
	// ErrInvalidTimeZone indicates the zone name is not a known IANA location.
	ErrInvalidTimeZone = errors.New("invalid time zone")
	// ErrInvalidTime indicates the instant to format is not a valid time value.
	ErrInvalidTime = errors.New("invalid time value")
)

//go:embed locales.toml
var localeData []byte

type localeTable struct {
	Locales []localeEntry `toml:"locale"`
}

type localeEntry struct {
	Tag         string            `toml:"tag"`
	Names       string            `toml:"names"`
	Order       string            `toml:"order"`
	Hour12      bool              `toml:"hour12"`
	AM          string            `toml:"am"`
	PM          string            `toml:"pm"`
	PadNumeric  bool              `toml:"pad_numeric"`
	Weekday     string            `toml:"weekday"`
	DateTime    string            `toml:"date_time"`
	WeekdayTime string            `toml:"weekday_time"`
	HourOnly    string            `toml:"hour_only"`
	ZoneDate    string            `toml:"zone_date"`
	Numeric     map[string]string `toml:"numeric"`
	Text        map[string]string `toml:"text"`
}

var (
	tableOnce sync.Once
	entries   []localeEntry
	tags      []language.Tag
	matcher   language.Matcher
)

func loadTable() {
	tableOnce.Do(func() {
		var table localeTable
		if err := toml.Unmarshal(localeData, &table); err != nil {
			panic(fmt.Sprintf("locale table: %v", err))
		}
		entries = table.Locales
		tags = make([]language.Tag, len(entries))
		for i, entry := range entries {
			tags[i] = language.MustParse(entry.Tag)
		}
		matcher = language.NewMatcher(tags)
	})
}

// Supported lists the locales with dedicated patterns, default first.
func Supported() []language.Tag {
	loadTable()
	out := make([]language.Tag, len(tags))
	copy(out, tags)
	return out
}

// Match returns the supported locale closest to tag. Unparsable or
// unrelated tags resolve to DefaultTag.
func Match(tag string) language.Tag {
	loadTable()
	return tags[matchIndex(tag)]
}

func matchIndex(tag string) int {
	requested, err := language.Parse(tag)
	if err != nil {
		return 0
	}
	_, index, conf := matcher.Match(requested)
	if conf == language.No {
		return 0
	}
	return index
}

// Formatter renders instants for one locale in one time zone.
type Formatter struct {
	entry *localeEntry
	tag   language.Tag
	loc   *time.Location
}

// New returns a formatter for the locale best matching tag. An empty zone
// selects the local time zone.
func New(tag, zone string) (*Formatter, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return nil, err
	}
	loadTable()
	i := matchIndex(tag)
	return &Formatter{entry: &entries[i], tag: tags[i], loc: loc}, nil
}

// LoadZone resolves an IANA zone name; "" means time.Local.
func LoadZone(zone string) (*time.Location, error) {
	if zone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTimeZone, zone, err)
	}
	return loc, nil
}

// Tag reports the matched locale.
func (f *Formatter) Tag() language.Tag { return f.tag }

// Location reports the zone instants are rendered in.
func (f *Formatter) Location() *time.Location { return f.loc }

// Format renders t according to opts. With no date or time field set, the
// numeric year, month and day are shown.
func (f *Formatter) Format(t time.Time, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", fmt.Errorf("format: %w", err)
	}
	t = t.In(f.loc)

	if !opts.hasDate() && !opts.hasTime() {
		opts.Year, opts.Month, opts.Day = Numeric, Numeric, Numeric
	}

	date := f.formatDate(t, opts)
	clock := f.formatTime(t, opts)

	if opts.TimeZoneName != "" {
		zone := zoneName(t, opts.TimeZoneName)
		switch {
		case clock != "":
			clock += " " + zone
		case date != "":
			date = expand(f.entry.ZoneDate, "date", date, "zone", zone)
		default:
			date = zone
		}
	}

	switch {
	case date != "" && clock != "":
		if opts.Day == "" && opts.Month == "" && opts.Year == "" && f.entry.WeekdayTime != "" {
			return expand(f.entry.WeekdayTime, "weekday", date, "time", clock), nil
		}
		return expand(f.entry.DateTime, "date", date, "time", clock), nil
	case clock != "":
		return clock, nil
	default:
		return date, nil
	}
}

func (f *Formatter) formatDate(t time.Time, opts Options) string {
	entry := f.entry
	names := monday.Locale(entry.Names)
	numericMonth := opts.Month == Numeric
	pad := numericMonth && entry.PadNumeric

	fields := map[byte]string{}
	key := ""
	if opts.Year != "" {
		key += "y"
		if opts.Year == TwoDigit {
			fields['y'] = fmt.Sprintf("%02d", t.Year()%100)
		} else {
			fields['y'] = fmt.Sprintf("%d", t.Year())
		}
	}
	if opts.Month != "" {
		key += "m"
		switch opts.Month {
		case Numeric:
			fields['m'] = number(int(t.Month()), pad)
		case Short:
			fields['m'] = monday.Format(t, "Jan", names)
		default:
			fields['m'] = monday.Format(t, "January", names)
		}
	}
	if opts.Day != "" {
		key += "d"
		fields['d'] = number(t.Day(), pad || opts.Day == TwoDigit)
	}

	date := ""
	if key != "" {
		patterns := entry.Text
		if numericMonth || opts.Month == "" {
			patterns = entry.Numeric
		}
		if pattern, ok := patterns[key]; ok {
			date = expand(pattern, "year", fields['y'], "month", fields['m'], "day", fields['d'])
		} else {
			date = joinOrdered(entry.Order, fields)
		}
	}

	if opts.Weekday != "" {
		weekday := monday.Format(t, "Monday", names)
		if opts.Weekday == Short {
			weekday = monday.Format(t, "Mon", names)
		}
		if date == "" {
			return weekday
		}
		date = expand(entry.Weekday, "weekday", weekday, "date", date)
	}
	return date
}

func (f *Formatter) formatTime(t time.Time, opts Options) string {
	var parts []string
	if opts.Hour != "" {
		hour := t.Hour()
		pad := opts.Hour == TwoDigit
		if f.entry.Hour12 {
			hour %= 12
			if hour == 0 {
				hour = 12
			}
		} else if opts.Minute != "" {
			pad = true
		}
		parts = append(parts, number(hour, pad))
	}
	if opts.Minute != "" {
		parts = append(parts, number(t.Minute(), len(parts) > 0 || opts.Minute == TwoDigit))
	}
	if opts.Second != "" {
		parts = append(parts, number(t.Second(), len(parts) > 0 || opts.Second == TwoDigit))
	}
	if len(parts) == 0 {
		return ""
	}

	clock := strings.Join(parts, ":")
	if len(parts) == 1 && opts.Hour != "" && !f.entry.Hour12 && f.entry.HourOnly != "" {
		return expand(f.entry.HourOnly, "hour", clock)
	}
	if opts.Hour != "" && f.entry.Hour12 {
		period := f.entry.AM
		if t.Hour() >= 12 {
			period = f.entry.PM
		}
		clock += " " + period
	}
	return clock
}

func zoneName(t time.Time, style string) string {
	if style == Long {
		if t.Location() == time.UTC {
			return "Coordinated Universal Time"
		}
		if name := t.Location().String(); name != "" && name != "Local" {
			return name
		}
	}
	abbrev, _ := t.Zone()
	return abbrev
}

func joinOrdered(order string, fields map[byte]string) string {
	out := ""
	for i := 0; i < len(order); i++ {
		v, ok := fields[order[i]]
		if !ok {
			continue
		}
		if out != "" {
			out += " "
		}
		out += v
	}
	return out
}

func number(n int, pad bool) string {
	if pad {
		return fmt.Sprintf("%02d", n)
	}
	return fmt.Sprintf("%d", n)
}

func expand(pattern string, pairs ...string) string {
	for i := 0; i+1 < len(pairs); i += 2 {
		pattern = strings.ReplaceAll(pattern, "{"+pairs[i]+"}", pairs[i+1])
	}
	return pattern
}
