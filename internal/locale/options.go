package locale

import (
	"errors"
	"fmt"
)

// Option values understood by the formatter.
const (
	Short    = "short"
	Long     = "long"
	Numeric  = "numeric"
	TwoDigit = "2-digit"
)

// ErrInvalidOption indicates an Options field holds a value outside its vocabulary.
var ErrInvalidOption = errors.New("invalid format option")

// Options selects which components of an instant are rendered and how.
// An empty field is omitted.
type Options struct {
	Weekday      string `json:"weekday,omitempty" toml:"weekday,omitempty"`
	Day          string `json:"day,omitempty" toml:"day,omitempty"`
	Month        string `json:"month,omitempty" toml:"month,omitempty"`
	Year         string `json:"year,omitempty" toml:"year,omitempty"`
	Hour         string `json:"hour,omitempty" toml:"hour,omitempty"`
	Minute       string `json:"minute,omitempty" toml:"minute,omitempty"`
	Second       string `json:"second,omitempty" toml:"second,omitempty"`
	TimeZoneName string `json:"timeZoneName,omitempty" toml:"timeZoneName,omitempty"`
}

// IsZero reports whether no option is set.
func (o Options) IsZero() bool {
	return o == Options{}
}

func (o Options) hasDate() bool {
	return o.Weekday != "" || o.Day != "" || o.Month != "" || o.Year != ""
}

func (o Options) hasTime() bool {
	return o.Hour != "" || o.Minute != "" || o.Second != ""
}

// Validate rejects values the formatter cannot render.
func (o Options) Validate() error {
	checks := []struct {
		name, value string
		text        bool
	}{
		{"weekday", o.Weekday, true},
		{"day", o.Day, false},
		{"month", o.Month, true},
		{"year", o.Year, false},
		{"hour", o.Hour, false},
		{"minute", o.Minute, false},
		{"second", o.Second, false},
		{"timeZoneName", o.TimeZoneName, true},
	}
	for _, c := range checks {
		if c.value == "" {
			continue
		}
		if c.text && (c.value == Short || c.value == Long) {
			continue
		}
		if !c.text && (c.value == Numeric || c.value == TwoDigit) {
			continue
		}
		return fmt.Errorf("%w: %s=%q", ErrInvalidOption, c.name, c.value)
	}
	return nil
}
